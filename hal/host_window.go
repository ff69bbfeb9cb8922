//go:build !tinygo && cgo

package hal

import (
	"enlarger/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const windowScale = 5

// RunWindow opens a desktop window showing the simulated panel. Keys and the
// mouse wheel drive the buttons and encoder. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step, canvas: newLCDCanvas()}
	ebiten.SetWindowTitle("Enlarger Timer (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(canvasWidth*windowScale, canvasHeight*windowScale)
	ebiten.SetTPS(100)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h      *hostHAL
	step   func() error
	canvas *lcdCanvas
	img    *ebiten.Image
	wheel  float64
}

func (g *hostGame) Update() error {
	g.pollInput()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) pollInput() {
	taps := []struct {
		key ebiten.Key
		id  ButtonID
	}{
		{ebiten.KeyM, ButtonMode},
		{ebiten.KeyS, ButtonSet},
		{ebiten.KeyF, ButtonFocus},
		{ebiten.KeyR, ButtonRun},
		{ebiten.KeySpace, ButtonRun},
	}
	for _, t := range taps {
		if inpututil.IsKeyJustPressed(t.key) {
			g.h.buttons.get(t.id).Tap()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.h.encoder.Turn(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.h.encoder.Turn(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		g.h.encoder.Reset()
	}

	// Trackpads report fractional wheel steps; turn one detent per whole step.
	_, dy := ebiten.Wheel()
	g.wheel += dy
	for g.wheel >= 1 {
		g.h.encoder.Turn(1)
		g.wheel--
	}
	for g.wheel <= -1 {
		g.h.encoder.Turn(-1)
		g.wheel++
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(canvasWidth, canvasHeight)
	}
	g.canvas.draw(g.h.lcd.snapshot())
	g.img.WritePixels(g.canvas.img.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return canvasWidth, canvasHeight
}
