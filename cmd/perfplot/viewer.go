package main

import (
	"bytes"
	"fmt"
	"image/color"
	png "image/png"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"perfplot/src/chartgen"
	"perfplot/src/perflog"
)

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// showWindow displays the rendered chart and blocks until the window is
// closed by the user.
func showWindow(series *perflog.Series, pngBytes []byte, hints bool) error {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return fmt.Errorf("decode chart image: %w", err)
	}
	if hints {
		if smp, _, merr := series.Max(); merr == nil {
			img = chartgen.DrawHint(img, fmt.Sprintf("Hint: callout marks the maximum value %d at x=%d.", smp.Y, smp.X))
		}
	}

	a := app.NewWithID("com.perfplot.viewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("perfplot")
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	w.SetContent(ci)
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())+40))
	w.ShowAndRun()
	return nil
}
