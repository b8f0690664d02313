package chart

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/opentype"
	gfont "gonum.org/v1/plot/font"
)

// cjkTypeface is the typeface name a discovered CJK-capable font is
// registered under in the plot font cache.
const cjkTypeface gfont.Typeface = "StockchartCJK"

// cjkKeywords match font file names that cover CJK glyphs, so stock names
// render without missing-glyph boxes.
var cjkKeywords = []string{
	"notosanscjk", "notosanssc", "notosanstc", "sourcehansans",
	"pingfang", "hiragino", "stheiti", "heiti",
	"msyh", "simhei", "simsun", "simkai", "simfang",
	"wenquanyi", "wqy", "uming", "ukai",
}

// FontConfig carries the result of one-time host font discovery. It is
// passed explicitly to the renderer so render calls stay independently
// testable; the zero value means "default fonts only".
type FontConfig struct {
	Typeface gfont.Typeface // empty when no CJK font was found
	Path     string         // font file path, for the fallback renderer
}

var fontOnce sync.Once
var fontCfg FontConfig

// LoadFontConfig discovers a CJK-capable font among the host's fonts and
// registers it with the plot font cache. Discovery runs once per process;
// any failure degrades to the default font set instead of erroring.
func LoadFontConfig() *FontConfig {
	fontOnce.Do(func() { fontCfg = discoverFonts() })
	cfg := fontCfg
	return &cfg
}

func discoverFonts() FontConfig {
	for _, path := range findfont.List() {
		base := strings.ToLower(filepath.Base(path))
		if !matchesCJK(base) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		face, err := opentype.Parse(data)
		if err != nil {
			// .ttc collections and broken files are skipped
			continue
		}
		gfont.DefaultCache.Add(gfont.Collection{
			{Font: gfont.Font{Typeface: cjkTypeface}, Face: face},
		})
		slog.Info("chart font selected", "path", path)
		return FontConfig{Typeface: cjkTypeface, Path: path}
	}
	slog.Info("no CJK font found, using default fonts")
	return FontConfig{}
}

func matchesCJK(base string) bool {
	for _, kw := range cjkKeywords {
		if strings.Contains(base, kw) {
			return true
		}
	}
	return false
}
