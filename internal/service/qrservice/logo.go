package qrservice

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// The mark covers a fifth of the code's width. QR error correction
// absorbs that much occlusion at the levels the collaborator renders.
const logoFraction = 5

func overlayLogo(qrPNG []byte) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(qrPNG))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, src, bounds.Min, draw.Src)

	d := bounds.Dx() / logoFraction
	cx := bounds.Min.X + bounds.Dx()/2
	cy := bounds.Min.Y + bounds.Dy()/2
	target := image.Rect(cx-d/2, cy-d/2, cx+d/2, cy+d/2)

	logo := drawMark(d)
	mask := &circleMask{r: d / 2}
	draw.DrawMask(out, target, logo, image.Point{}, mask, image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// circleMask is an alpha mask that is opaque inside the inscribed
// circle of its square bounds.
type circleMask struct {
	r int
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m *circleMask) Bounds() image.Rectangle { return image.Rect(0, 0, 2*m.r, 2*m.r) }

func (m *circleMask) At(x, y int) color.Color {
	dx, dy := x-m.r, y-m.r
	if dx*dx+dy*dy <= m.r*m.r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// drawMark renders the brand mark: a mint disc with a white ring.
func drawMark(d int) image.Image {
	mint := color.RGBA{R: 0x16, G: 0xA3, B: 0x7F, A: 0xFF}
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	c := d / 2
	ring := d * 3 / 8
	core := d / 4

	img := image.NewRGBA(image.Rect(0, 0, d, d))
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx, dy := x-c, y-c
			r2 := dx*dx + dy*dy
			switch {
			case r2 <= core*core:
				img.SetRGBA(x, y, mint)
			case r2 <= ring*ring:
				img.SetRGBA(x, y, white)
			default:
				img.SetRGBA(x, y, mint)
			}
		}
	}
	return img
}
