package chart

import (
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ohlcBars renders one price bar per row at integer x positions, as filled
// candle bodies or as open/close ticks. Integer indexing keeps non-trading
// days from leaving gaps, matching the original charts.
type ohlcBars struct {
	rows  []FrameRow
	style Style
	ohlc  bool // tick marks instead of filled bodies
}

func (b *ohlcBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	hw := halfWidth(c, len(b.rows))

	wickSty := draw.LineStyle{Color: b.style.Wick, Width: vg.Points(0.8)}
	for i, r := range b.rows {
		x := trX(float64(i))
		if !c.ContainsX(x) {
			continue
		}
		c.StrokeLine2(wickSty, x, trY(r.Low), x, trY(r.High))

		fill := b.style.Up
		if r.Close < r.Open {
			fill = b.style.Down
		}
		if b.ohlc {
			tickSty := draw.LineStyle{Color: fill, Width: vg.Points(1.6)}
			c.StrokeLine2(tickSty, x-hw, trY(r.Open), x, trY(r.Open))
			c.StrokeLine2(tickSty, x, trY(r.Close), x+hw, trY(r.Close))
			continue
		}
		yo, yc := trY(r.Open), trY(r.Close)
		if yo == yc {
			// doji, draw a flat body
			c.StrokeLine2(draw.LineStyle{Color: fill, Width: vg.Points(1.2)}, x-hw, yo, x+hw, yo)
			continue
		}
		c.FillPolygon(fill, []vg.Point{
			{X: x - hw, Y: yo},
			{X: x + hw, Y: yo},
			{X: x + hw, Y: yc},
			{X: x - hw, Y: yc},
		})
	}
}

func (b *ohlcBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -0.5, float64(len(b.rows))-0.5
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, r := range b.rows {
		ymin = math.Min(ymin, r.Low)
		ymax = math.Max(ymax, r.High)
	}
	return xmin, xmax, ymin, ymax
}

// volumeBars renders a bar per row from zero to the day's volume.
type volumeBars struct {
	rows  []FrameRow
	style Style
}

func (v *volumeBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	hw := halfWidth(c, len(v.rows))
	y0 := trY(0)
	for i, r := range v.rows {
		x := trX(float64(i))
		if !c.ContainsX(x) {
			continue
		}
		c.FillPolygon(v.style.VolumeBar, []vg.Point{
			{X: x - hw, Y: y0},
			{X: x + hw, Y: y0},
			{X: x + hw, Y: trY(r.Volume)},
			{X: x - hw, Y: trY(r.Volume)},
		})
	}
}

func (v *volumeBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -0.5, float64(len(v.rows))-0.5
	ymin, ymax = 0, 0
	for _, r := range v.rows {
		ymax = math.Max(ymax, r.Volume)
	}
	if ymax == 0 {
		ymax = 1
	}
	return xmin, xmax, ymin, ymax
}

// renkoBars renders renko bricks: one filled square per brick, x = brick
// sequence number.
type renkoBars struct {
	bricks []renkoBrick
	brick  float64
	style  Style
}

func (rb *renkoBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, br := range rb.bricks {
		x0, x1 := trX(float64(i)-0.45), trX(float64(i)+0.45)
		y0, y1 := trY(br.Bottom), trY(br.Bottom+rb.brick)
		if !c.ContainsX(x0) && !c.ContainsX(x1) {
			continue
		}
		fill := rb.style.Up
		if !br.Up {
			fill = rb.style.Down
		}
		c.FillPolygon(fill, []vg.Point{
			{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
		})
	}
}

func (rb *renkoBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -0.5, float64(len(rb.bricks))-0.5
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, br := range rb.bricks {
		ymin = math.Min(ymin, br.Bottom)
		ymax = math.Max(ymax, br.Bottom+rb.brick)
	}
	return xmin, xmax, ymin, ymax
}

// pnfMarks renders point-and-figure columns: X glyphs for rising columns,
// O glyphs for falling ones.
type pnfMarks struct {
	cols  []pnfColumn
	box   float64
	style Style
}

func (pm *pnfMarks) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, col := range pm.cols {
		x := trX(float64(i))
		if !c.ContainsX(x) {
			continue
		}
		for j := 0; j < col.Count; j++ {
			yc := trY(col.Bottom + (float64(j)+0.5)*pm.box)
			r := vg.Length(math.Abs(float64(trY(pm.box)-trY(0)))) * 0.38
			if r <= 0 {
				r = vg.Points(2)
			}
			if col.Up {
				sty := draw.LineStyle{Color: pm.style.Up, Width: vg.Points(1.2)}
				c.StrokeLine2(sty, x-r, yc-r, x+r, yc+r)
				c.StrokeLine2(sty, x-r, yc+r, x+r, yc-r)
			} else {
				c.SetLineStyle(draw.LineStyle{Color: pm.style.Down, Width: vg.Points(1.2)})
				var p vg.Path
				p.Arc(vg.Point{X: x, Y: yc}, r, 0, 2*math.Pi)
				p.Close()
				c.Stroke(p)
			}
		}
	}
}

func (pm *pnfMarks) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -0.5, float64(len(pm.cols))-0.5
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, col := range pm.cols {
		ymin = math.Min(ymin, col.Bottom)
		ymax = math.Max(ymax, col.Bottom+float64(col.Count)*pm.box)
	}
	return xmin, xmax, ymin, ymax
}

// dateTicks labels integer x positions with their trading dates, roughly one
// label per tenth of the series.
type dateTicks struct {
	dates []time.Time
}

func (d dateTicks) Ticks(min, max float64) []plot.Tick {
	if len(d.dates) == 0 {
		return nil
	}
	step := len(d.dates) / 10
	if step < 1 {
		step = 1
	}
	var ticks []plot.Tick
	for i := 0; i < len(d.dates); i += step {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: d.dates[i].Format("2006-01-02")})
	}
	return ticks
}

func halfWidth(c draw.Canvas, n int) vg.Length {
	if n < 1 {
		n = 1
	}
	hw := (c.Max.X - c.Min.X) / vg.Length(n) * 0.35
	if hw < vg.Points(0.5) {
		hw = vg.Points(0.5)
	}
	return hw
}
