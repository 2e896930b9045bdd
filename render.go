package tweenjump

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw fills the screen with ClearColor (if set) and renders the node tree
// depth-first. Children inherit their parent's transform and alpha.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	drawNode(screen, s.root, ebiten.GeoM{}, 1)
}

func drawNode(screen *ebiten.Image, n *Node, parent ebiten.GeoM, parentAlpha float64) {
	if !n.Visible {
		return
	}
	local := nodeGeoM(n)
	local.Concat(parent)
	alpha := parentAlpha * n.Alpha

	if n.frameW > 0 && n.frameH > 0 && alpha > 0 {
		var op ebiten.DrawImageOptions
		img := n.texture
		if img == nil {
			img = WhitePixel
		}
		// Origin offset is applied in frame space, before scale and rotation.
		op.GeoM.Translate(-n.OriginX*n.frameW, -n.OriginY*n.frameH)
		op.GeoM.Concat(local)
		c := n.Color
		op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
		op.ColorScale.ScaleAlpha(float32(alpha))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, &op)
	}

	for _, c := range n.children {
		drawNode(screen, c, local, alpha)
	}
}

// nodeGeoM returns the node's local transform: scale, rotate, then translate
// to (X, Y).
func nodeGeoM(n *Node) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(n.ScaleX, n.ScaleY)
	if n.Rotation != 0 {
		g.Rotate(n.Rotation)
	}
	g.Translate(n.X, n.Y)
	return g
}

var placeholder *ebiten.Image

const placeholderSize = 32

// placeholderTexture returns a magenta and black checkerboard shown in place
// of textures that failed to load.
func placeholderTexture() *ebiten.Image {
	if placeholder != nil {
		return placeholder
	}
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(color.RGBA{0, 0, 0, 255})
	half := placeholderSize / 2
	magenta := ebiten.NewImage(half, half)
	magenta.Fill(color.RGBA{255, 0, 255, 255})
	var op ebiten.DrawImageOptions
	img.DrawImage(magenta, &op)
	op.GeoM.Translate(float64(half), float64(half))
	img.DrawImage(magenta, &op)
	placeholder = img
	return img
}
