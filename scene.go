package tweenjump

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is a unit of game content driven by a host-controlled lifecycle.
// OnLoad queues the assets the scene needs; once they are loaded into the
// Stage, OnCreate builds the node tree and starts animations.
type Scene interface {
	Key() string
	OnLoad(l *Loader)
	OnCreate(s *Stage) error
}

// Updater is implemented by scenes that need a per-frame hook after the
// animator has advanced.
type Updater interface {
	OnUpdate(s *Stage, dt float64) error
}

// Boot runs a scene's load and create phases against stage. Asset failures
// are not fatal: the affected keys render with a placeholder texture and the
// failures are logged in debug mode.
func Boot(ctx context.Context, scene Scene, loader *Loader, stage *Stage) error {
	scene.OnLoad(loader)
	textures, err := loader.Load(ctx)
	if err != nil {
		debugf("scene %q: asset load: %v", scene.Key(), err)
	}
	for key, img := range textures {
		stage.SetTexture(key, img)
	}
	if err := scene.OnCreate(stage); err != nil {
		return fmt.Errorf("create scene %q: %w", scene.Key(), err)
	}
	return nil
}

// Stage owns the node tree, the animator and the textures of a running scene.
// It exposes the object-creation and scheduling capabilities scenes build on.
type Stage struct {
	root     *Node
	animator *Animator
	textures map[string]*ebiten.Image
	store    EntityStore

	// ClearColor fills the screen before the tree is drawn. A zero value
	// leaves the screen untouched.
	ClearColor Color
}

// NewStage creates an empty stage with a root container.
func NewStage() *Stage {
	return &Stage{
		root:     NewContainer("root"),
		animator: NewAnimator(),
		textures: make(map[string]*ebiten.Image),
	}
}

// Root returns the stage's root container node.
func (s *Stage) Root() *Node {
	return s.root
}

// Animator returns the stage's tween scheduler.
func (s *Stage) Animator() *Animator {
	return s.animator
}

// SetTexture registers img under key for AddImage.
func (s *Stage) SetTexture(key string, img *ebiten.Image) {
	s.textures[key] = img
}

// Texture returns the image registered under key.
func (s *Stage) Texture(key string) (*ebiten.Image, bool) {
	img, ok := s.textures[key]
	return img, ok
}

// AddImage creates a sprite showing the texture registered under key,
// centered at (x, y), and adds it to the root. Unknown keys get the
// placeholder texture.
func (s *Stage) AddImage(x, y float64, key string) *Node {
	img, ok := s.textures[key]
	if !ok {
		debugf("texture %q missing, using placeholder", key)
		img = placeholderTexture()
	}
	n := NewSprite(key, img)
	n.X, n.Y = x, y
	s.root.AddChild(n)
	return n
}

// AddRect creates a solid-color sprite of size w by h centered at (x, y)
// and adds it to the root.
func (s *Stage) AddRect(x, y, w, h float64, c Color) *Node {
	n := NewSprite("rect", nil)
	n.X, n.Y = x, y
	n.Color = c
	n.SetDisplaySize(w, h)
	s.root.AddChild(n)
	return n
}

// TweenHigherToLower validates d and schedules it on the stage's animator.
// When an EntityStore is set, motion events are forwarded to it in addition
// to d.OnEvent.
func (s *Stage) TweenHigherToLower(d MotionDescriptor) error {
	if s.store != nil {
		store, user := s.store, d.OnEvent
		d.OnEvent = func(ev MotionEvent) {
			store.EmitMotionEvent(ev)
			if user != nil {
				user(ev)
			}
		}
	}
	return TweenHigherToLower(s.animator, d)
}

// Update runs node OnUpdate hooks and advances the animator by dt seconds.
func (s *Stage) Update(dt float64) {
	updateNodes(s.root, dt)
	s.animator.Update(float32(dt))
}

func updateNodes(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, c := range n.children {
		updateNodes(c, dt)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Stage) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and tween, asset and motion activity is logged to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	globalDebug = enabled
}
