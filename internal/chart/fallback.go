package chart

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// renderFallback draws the minimal manual chart: per row a thin wick line
// spanning low→high and a thicker body line spanning open→close colored by
// direction, plus an optional volume bar subplot. It exists for robustness
// against the primary renderer's font and layout quirks and never panics on
// font problems: when no usable font face is available, text is skipped.
func (r *Renderer) renderFallback(f *Frame, o Options, title string) (image.Image, error) {
	style := StyleByName(o.Style)
	scale := float64(r.dpi()) / 96.0
	wIn, hIn := o.Width, o.Height
	if wIn <= 0 {
		wIn = 12
	}
	if hIn <= 0 {
		hIn = 8
	}
	wpx := int(wIn * float64(r.dpi()))
	hpx := int(hIn * float64(r.dpi()))
	dc := gg.NewContext(wpx, hpx)

	dc.SetColor(style.Background)
	dc.Clear()

	hasFont := false
	if r.Fonts != nil && r.Fonts.Path != "" {
		if err := dc.LoadFontFace(r.Fonts.Path, 13*scale); err == nil {
			hasFont = true
		}
	}

	left := 80 * scale
	right := 24 * scale
	top := 56 * scale
	bottom := 72 * scale

	withVolume := o.Volume && f.HasVolume
	plotW := float64(wpx) - left - right
	totalH := float64(hpx) - top - bottom
	priceH := totalH
	volH := 0.0
	if withVolume {
		priceH = totalH * 0.72
		volH = totalH * 0.22
	}

	minP, maxP := f.Rows[0].Low, f.Rows[0].High
	maxV := 0.0
	for _, row := range f.Rows {
		if row.Low < minP {
			minP = row.Low
		}
		if row.High > maxP {
			maxP = row.High
		}
		if row.Volume > maxV {
			maxV = row.Volume
		}
	}
	if maxP == minP {
		maxP = minP + 1
	}
	if maxV == 0 {
		maxV = 1
	}

	n := len(f.Rows)
	xAt := func(i int) float64 { return left + (float64(i)+0.5)*plotW/float64(n) }
	yAt := func(v float64) float64 { return top + (maxP-v)/(maxP-minP)*priceH }

	// horizontal gridlines
	dc.SetColor(style.Grid)
	dc.SetLineWidth(1 * scale)
	for g := 0; g <= 5; g++ {
		y := top + float64(g)*priceH/5
		dc.DrawLine(left, y, left+plotW, y)
		dc.Stroke()
	}

	for i, row := range f.Rows {
		x := xAt(i)
		dc.SetColor(style.Wick)
		dc.SetLineWidth(0.8 * scale)
		dc.DrawLine(x, yAt(row.Low), x, yAt(row.High))
		dc.Stroke()

		if row.Close >= row.Open {
			dc.SetColor(style.Up)
		} else {
			dc.SetColor(style.Down)
		}
		dc.SetLineWidth(3 * scale)
		y0, y1 := yAt(row.Open), yAt(row.Close)
		if y0 == y1 {
			y1 = y0 + 0.5*scale
		}
		dc.DrawLine(x, y0, x, y1)
		dc.Stroke()
	}

	if withVolume {
		volTop := top + priceH + totalH*0.06
		barW := plotW / float64(n) * 0.8
		dc.SetColor(style.VolumeBar)
		for i, row := range f.Rows {
			bh := row.Volume / maxV * volH
			dc.DrawRectangle(xAt(i)-barW/2, volTop+volH-bh, barW, bh)
			dc.Fill()
		}
	}

	if hasFont {
		dc.SetColor(style.Text)
		dc.DrawStringAnchored(title, left+plotW/2, top/2, 0.5, 0.5)

		// price scale
		for g := 0; g <= 5; g++ {
			v := maxP - float64(g)*(maxP-minP)/5
			dc.DrawStringAnchored(fmt.Sprintf("%.2f", v), left-8*scale, top+float64(g)*priceH/5, 1, 0.5)
		}

		// one date label per tenth of the series
		step := n / 10
		if step < 1 {
			step = 1
		}
		yLabel := float64(hpx) - bottom/2
		for i := 0; i < n; i += step {
			dc.DrawStringAnchored(f.Rows[i].Date.Format("2006-01-02"), xAt(i), yLabel, 0.5, 0.5)
		}
	}

	return dc.Image(), nil
}
