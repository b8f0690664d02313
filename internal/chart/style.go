package chart

import (
	"image/color"
	"strings"
)

// Style is a named preset controlling the palette of a rendered chart.
type Style struct {
	Name       string
	Up         color.Color // rising bodies
	Down       color.Color // falling bodies
	Wick       color.Color
	Line       color.Color // close line for line charts
	VolumeBar  color.Color
	Background color.Color
	Grid       color.Color
	Text       color.Color
}

var (
	styleYahoo = Style{
		Name:       "yahoo",
		Up:         color.RGBA{R: 0x00, G: 0xb0, B: 0x60, A: 0xff},
		Down:       color.RGBA{R: 0xfe, G: 0x32, B: 0x32, A: 0xff},
		Wick:       color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
		Line:       color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		VolumeBar:  color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xb0},
		Background: color.White,
		Grid:       color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff},
		Text:       color.Black,
	}
	styleCharles = Style{
		Name:       "charles",
		Up:         color.RGBA{R: 0x3c, G: 0x8c, B: 0x3c, A: 0xff},
		Down:       color.RGBA{R: 0xc8, G: 0x3c, B: 0x3c, A: 0xff},
		Wick:       color.Black,
		Line:       color.Black,
		VolumeBar:  color.RGBA{R: 0x78, G: 0x78, B: 0x78, A: 0xb0},
		Background: color.White,
		Grid:       color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
		Text:       color.Black,
	}
	styleMike = Style{
		Name:       "mike",
		Up:         color.RGBA{R: 0x26, G: 0xa6, B: 0x9a, A: 0xff},
		Down:       color.RGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff},
		Wick:       color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff},
		Line:       color.RGBA{R: 0x26, G: 0xa6, B: 0x9a, A: 0xff},
		VolumeBar:  color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xb0},
		Background: color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff},
		Grid:       color.RGBA{R: 0x32, G: 0x32, B: 0x32, A: 0xff},
		Text:       color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	}
	styleNightclouds = Style{
		Name:       "nightclouds",
		Up:         color.RGBA{R: 0x59, G: 0xa1, B: 0x4f, A: 0xff},
		Down:       color.RGBA{R: 0xe4, G: 0x57, B: 0x56, A: 0xff},
		Wick:       color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff},
		Line:       color.RGBA{R: 0x86, G: 0xb4, B: 0xe4, A: 0xff},
		VolumeBar:  color.RGBA{R: 0x86, G: 0xb4, B: 0xe4, A: 0xb0},
		Background: color.RGBA{R: 0x23, G: 0x2b, B: 0x3b, A: 0xff},
		Grid:       color.RGBA{R: 0x3c, G: 0x46, B: 0x5a, A: 0xff},
		Text:       color.RGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff},
	}
	styleSAS = Style{
		Name:       "sas",
		Up:         color.RGBA{R: 0x00, G: 0x64, B: 0xb4, A: 0xff},
		Down:       color.RGBA{R: 0xb4, G: 0x1e, B: 0x1e, A: 0xff},
		Wick:       color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff},
		Line:       color.RGBA{R: 0x00, G: 0x64, B: 0xb4, A: 0xff},
		VolumeBar:  color.RGBA{R: 0x96, G: 0x96, B: 0x96, A: 0xb0},
		Background: color.RGBA{R: 0xf5, G: 0xf5, B: 0xf0, A: 0xff},
		Grid:       color.RGBA{R: 0xdc, G: 0xdc, B: 0xd2, A: 0xff},
		Text:       color.Black,
	}
	styleCheckers = Style{
		Name:       "checkers",
		Up:         color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		Down:       color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		Wick:       color.Black,
		Line:       color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		VolumeBar:  color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xb0},
		Background: color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
		Grid:       color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff},
		Text:       color.Black,
	}
)

var styles = map[string]Style{
	"yahoo":       styleYahoo,
	"charles":     styleCharles,
	"mike":        styleMike,
	"nightclouds": styleNightclouds,
	"sas":         styleSAS,
	"checkers":    styleCheckers,
}

// StyleByName returns the named preset; unknown names fall back to yahoo.
func StyleByName(name string) Style {
	if s, ok := styles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}
	return styleYahoo
}

// StyleNames lists the available presets.
func StyleNames() []string {
	return []string{"yahoo", "charles", "mike", "nightclouds", "sas", "checkers"}
}
