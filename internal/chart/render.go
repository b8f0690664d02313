package chart

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Chart types accepted by Render.
const (
	TypeCandle = "candle"
	TypeOHLC   = "ohlc"
	TypeLine   = "line"
	TypeRenko  = "renko"
	TypePNF    = "pnf"
)

// ChartTypes lists the supported chart types.
func ChartTypes() []string {
	return []string{TypeCandle, TypeOHLC, TypeLine, TypeRenko, TypePNF}
}

// DefaultDPI is the raster resolution of saved charts.
const DefaultDPI = 300

// Options configure one render call.
type Options struct {
	Type   string // candle|ohlc|line|renko|pnf, default candle
	Style  string // preset name, default yahoo
	Volume bool   // volume subplot
	Title  string // derived from frame metadata when empty
	Width  float64
	Height float64 // both in inches; 12x8 when zero
}

func (o Options) chartType() string {
	if o.Type == "" {
		return TypeCandle
	}
	return o.Type
}

func (o Options) size() (w, h vg.Length) {
	wi, hi := o.Width, o.Height
	if wi <= 0 {
		wi = 12
	}
	if hi <= 0 {
		hi = 8
	}
	return vg.Length(wi) * vg.Inch, vg.Length(hi) * vg.Inch
}

// DelegateError wraps a failure inside the primary charting delegate. The
// render path switches to the fallback renderer only on this type.
type DelegateError struct {
	ChartType string
	Err       error
}

func (e *DelegateError) Error() string {
	return fmt.Sprintf("chart delegate (%s): %v", e.ChartType, e.Err)
}

func (e *DelegateError) Unwrap() error { return e.Err }

// Renderer renders frames. Fonts is the one-time host font discovery result;
// the zero-value Renderer renders with default fonts at DefaultDPI.
type Renderer struct {
	Fonts *FontConfig
	DPI   int
}

func (r *Renderer) dpi() int {
	if r.DPI <= 0 {
		return DefaultDPI
	}
	return r.DPI
}

// Render produces a chart artifact for the frame. The primary renderer
// delegates layout to the plotting library; if it fails with a
// *DelegateError the minimal manual renderer takes over, producing a
// simpler but information-equivalent chart.
func (r *Renderer) Render(f *Frame, o Options) (*Artifact, error) {
	if f == nil || len(f.Rows) == 0 {
		return nil, fmt.Errorf("render: empty frame")
	}
	ct := o.chartType()
	if !validChartType(ct) {
		return nil, fmt.Errorf("render: unsupported chart type %q (use %v)", ct, ChartTypes())
	}
	title := o.Title
	if title == "" {
		title = DefaultTitle(f)
	}

	img, err := r.renderPrimary(f, o, title)
	if err != nil {
		var de *DelegateError
		if !errors.As(err, &de) {
			return nil, err
		}
		slog.Warn("primary renderer failed, using fallback", "chart_type", ct, "error", de.Err)
		img, err = r.renderFallback(f, o, title)
		if err != nil {
			return nil, fmt.Errorf("fallback render: %w", err)
		}
	}
	return &Artifact{Image: img, Title: title}, nil
}

// DefaultTitle derives a chart title from the frame's name and date range.
func DefaultTitle(f *Frame) string {
	if len(f.Rows) == 0 {
		return "K线图"
	}
	name := f.Name
	if name == "" {
		return "K线图"
	}
	return fmt.Sprintf("%s K线图 (%s 至 %s)",
		name, f.Start().Format("2006-01-02"), f.End().Format("2006-01-02"))
}

func validChartType(ct string) bool {
	switch ct {
	case TypeCandle, TypeOHLC, TypeLine, TypeRenko, TypePNF:
		return true
	}
	return false
}

// renderPrimary draws with gonum/plot. The library panics on some font and
// layout edge cases; those are recovered into a *DelegateError so the caller
// can select the fallback.
func (r *Renderer) renderPrimary(f *Frame, o Options, title string) (img image.Image, err error) {
	ct := o.chartType()
	defer func() {
		if p := recover(); p != nil {
			img = nil
			err = &DelegateError{ChartType: ct, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	style := StyleByName(o.Style)
	w, h := o.size()
	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.dpi()))
	dc := draw.New(canvas)

	withVolume := o.Volume && f.HasVolume && ct != TypeRenko && ct != TypePNF

	priceC := dc
	if withVolume {
		// price pane on the top three quarters, volume below
		priceC = draw.Crop(dc, 0, 0, h/4, 0)
	}

	p, perr := r.newStyledPlot(f, style, ct)
	if perr != nil {
		return nil, &DelegateError{ChartType: ct, Err: perr}
	}
	p.Title.Text = title
	p.Draw(priceC)

	if withVolume {
		vp, perr := r.newVolumePlot(f, style)
		if perr != nil {
			return nil, &DelegateError{ChartType: ct, Err: perr}
		}
		vc := draw.Crop(dc, 0, 0, 0, -h*3/4)
		vp.Draw(vc)
	}

	return canvas.Image(), nil
}

func (r *Renderer) newStyledPlot(f *Frame, style Style, ct string) (*plot.Plot, error) {
	p := plot.New()
	r.applyStyle(p, style)

	switch ct {
	case TypeLine:
		xys := make(plotter.XYs, len(f.Rows))
		for i, row := range f.Rows {
			xys[i] = plotter.XY{X: float64(i), Y: row.Close}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = style.Line
		line.Width = vg.Points(1.2)
		p.Add(line)
		p.X.Tick.Marker = dateTicks{dates: dates(f)}
	case TypeCandle:
		p.Add(&ohlcBars{rows: f.Rows, style: style})
		p.X.Tick.Marker = dateTicks{dates: dates(f)}
	case TypeOHLC:
		p.Add(&ohlcBars{rows: f.Rows, style: style, ohlc: true})
		p.X.Tick.Marker = dateTicks{dates: dates(f)}
	case TypeRenko:
		brick := atrBrickSize(f.Rows)
		p.Add(&renkoBars{bricks: buildRenko(f.Rows, brick), brick: brick, style: style})
	case TypePNF:
		box := atrBrickSize(f.Rows)
		p.Add(&pnfMarks{cols: buildPointFigure(f.Rows, box, 3), box: box, style: style})
	}
	p.Y.Label.Text = "价格"
	return p, nil
}

func (r *Renderer) newVolumePlot(f *Frame, style Style) (*plot.Plot, error) {
	p := plot.New()
	r.applyStyle(p, style)
	p.Add(&volumeBars{rows: f.Rows, style: style})
	p.X.Tick.Marker = dateTicks{dates: dates(f)}
	p.Y.Label.Text = "成交量"
	return p, nil
}

// applyStyle sets palette and fonts on a plot.
func (r *Renderer) applyStyle(p *plot.Plot, style Style) {
	p.BackgroundColor = style.Background
	p.Title.TextStyle.Color = style.Text
	p.X.Color = style.Text
	p.Y.Color = style.Text
	p.X.Label.TextStyle.Color = style.Text
	p.Y.Label.TextStyle.Color = style.Text
	p.X.Tick.Color = style.Text
	p.Y.Tick.Color = style.Text
	p.X.Tick.Label.Color = style.Text
	p.Y.Tick.Label.Color = style.Text
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YTop

	grid := plotter.NewGrid()
	grid.Vertical.Color = style.Grid
	grid.Horizontal.Color = style.Grid
	p.Add(grid)

	if r.Fonts != nil && r.Fonts.Typeface != "" {
		tf := r.Fonts.Typeface
		p.Title.TextStyle.Font.Typeface = tf
		p.X.Label.TextStyle.Font.Typeface = tf
		p.Y.Label.TextStyle.Font.Typeface = tf
		p.X.Tick.Label.Font.Typeface = tf
		p.Y.Tick.Label.Font.Typeface = tf
	}
}

func dates(f *Frame) []time.Time {
	out := make([]time.Time, len(f.Rows))
	for i, r := range f.Rows {
		out[i] = r.Date
	}
	return out
}
