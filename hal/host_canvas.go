//go:build !tinygo

package hal

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Character cell geometry of the simulated panel, in canvas pixels.
const (
	cellW    = 7
	cellH    = 12
	cellGap  = 1
	margin   = 6
	baseline = 9
)

var (
	colorText    = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	colorUnlit   = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorBezel   = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xff}
	lcdFont      = &proggy.TinySZ8pt7b
	canvasWidth  = 2*margin + lcdCols*(cellW+cellGap) - cellGap
	canvasHeight = 2*margin + lcdRows*(cellH+cellGap) - cellGap
)

// lcdCanvas is a drivers.Displayer over an RGBA image, used to draw the
// simulated panel with tinyfont.
type lcdCanvas struct {
	img *image.RGBA
}

func newLCDCanvas() *lcdCanvas {
	return &lcdCanvas{img: image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))}
}

func (c *lcdCanvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *lcdCanvas) SetPixel(x, y int16, col color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(int(x), int(y), col)
}

func (c *lcdCanvas) Display() error { return nil }

func (c *lcdCanvas) fill(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.img.SetRGBA(x, y, col)
		}
	}
}

// draw paints the whole frame: bezel, backlit cells and glyphs.
func (c *lcdCanvas) draw(f lcdFrame) {
	c.fill(c.img.Bounds(), colorBezel)

	bg := colorUnlit
	if f.backlight {
		bg = color.RGBA{R: f.r, G: f.g, B: f.b, A: 0xff}
	}

	for row := 0; row < lcdRows; row++ {
		for col := 0; col < lcdCols; col++ {
			cell := cellRect(col, row)
			ch := f.cells[row][col]
			if ch == 0xFF {
				c.fill(cell, colorText)
				continue
			}
			c.fill(cell, bg)
			if r := lcdRune(ch); r != ' ' {
				tinyfont.DrawChar(c, lcdFont, int16(cell.Min.X), int16(cell.Min.Y+baseline), r, colorText)
			}
		}
	}
	_ = c.Display()
}

func cellRect(col, row int) image.Rectangle {
	x := margin + col*(cellW+cellGap)
	y := margin + row*(cellH+cellGap)
	return image.Rect(x, y, x+cellW, y+cellH)
}
