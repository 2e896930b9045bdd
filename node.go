package tweenjump

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter; the stage is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a retained-mode renderable: a textured (or solid-color) quad with a
// position, size and a list of children drawn after it.
//
// X and Y locate the node's origin point. OriginX/OriginY are normalized
// (0.5, 0.5 is the center of the frame), matching how images placed with
// [Stage.AddImage] are centered on their coordinates.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	OriginX  float64
	OriginY  float64

	// Appearance
	Alpha   float64
	Color   Color
	Visible bool

	// Texture and its unscaled frame size. A nil texture draws WhitePixel
	// tinted by Color.
	texture        *ebiten.Image
	frameW, frameH float64

	// Metadata
	UserData any

	// OnUpdate is called once per Stage.Update with the frame delta in seconds.
	OnUpdate func(dt float64)

	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.frameW = 1
	n.frameH = 1
}

// NewContainer creates a node with no visual output, used to group children.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	n.frameW, n.frameH = 0, 0
	return n
}

// NewSprite creates a node that draws img with its origin at the center.
// A nil img yields a 1x1 solid-color sprite; size it with SetDisplaySize.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, OriginX: 0.5, OriginY: 0.5}
	nodeDefaults(n)
	n.SetTexture(img)
	return n
}

// SetTexture replaces the node's texture and resets its frame size to the
// image bounds. The current scale is kept.
func (n *Node) SetTexture(img *ebiten.Image) {
	n.texture = img
	if img == nil {
		n.frameW, n.frameH = 1, 1
		return
	}
	b := img.Bounds()
	n.frameW, n.frameH = float64(b.Dx()), float64(b.Dy())
}

// Texture returns the node's image, or nil for solid-color sprites.
func (n *Node) Texture() *ebiten.Image {
	return n.texture
}

// FrameSize returns the unscaled size of the node's frame.
func (n *Node) FrameSize() (w, h float64) {
	return n.frameW, n.frameH
}

// SetFrameSize overrides the unscaled frame size. Used by hosts that do not
// decode textures (the terminal preview) so display sizes stay meaningful.
func (n *Node) SetFrameSize(w, h float64) {
	n.frameW, n.frameH = w, h
}

// DisplayWidth returns the frame width multiplied by ScaleX.
func (n *Node) DisplayWidth() float64 {
	return n.frameW * n.ScaleX
}

// DisplayHeight returns the frame height multiplied by ScaleY.
func (n *Node) DisplayHeight() float64 {
	return n.frameH * n.ScaleY
}

// SetDisplaySize scales the node so that its frame covers w by h world units.
// Frames with a zero dimension are left unscaled on that axis.
func (n *Node) SetDisplaySize(w, h float64) {
	if n.frameW != 0 {
		n.ScaleX = w / n.frameW
	}
	if n.frameH != 0 {
		n.ScaleY = h / n.frameH
	}
}

// Bounds returns the unrotated world-space rectangle covered by the node,
// ignoring parent transforms.
func (n *Node) Bounds() Rect {
	w, h := n.DisplayWidth(), n.DisplayHeight()
	return Rect{
		X:      n.X - n.OriginX*w,
		Y:      n.Y - n.OriginY*h,
		Width:  w,
		Height: h,
	}
}

// field returns a pointer to the float64 backing p, or nil for unknown
// properties.
func (n *Node) field(p Property) *float64 {
	switch p {
	case PropertyX:
		return &n.X
	case PropertyY:
		return &n.Y
	case PropertyAlpha:
		return &n.Alpha
	case PropertyRotation:
		return &n.Rotation
	case PropertyScaleX:
		return &n.ScaleX
	case PropertyScaleY:
		return &n.ScaleY
	}
	return nil
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("tweenjump: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("tweenjump: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("tweenjump: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Tweens targeting a disposed
// node stop on their next tick without completing.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.texture = nil
	n.UserData = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
