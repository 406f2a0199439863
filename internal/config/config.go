package config

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/nce-learn/icons/internal/paths"
)

// DefaultBackground is the accent color every icon is filled with.
const DefaultBackground = "#3b82f6"

// DefaultForeground is the label color.
const DefaultForeground = "#ffffff"

// DefaultLabel is the text drawn in the middle of every icon.
const DefaultLabel = "NCE"

// DefaultFontScale is the label font size as a fraction of the icon edge.
const DefaultFontScale = 0.3

// DefaultSizes lists the icon edge lengths generated on each run, in order.
var DefaultSizes = []int{72, 96, 128, 144, 152, 192, 384, 512}

// DefaultFontPaths lists scalable fonts tried in order before falling back
// to the built-in bitmap face. The first entry is the macOS system font.
var DefaultFontPaths = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	`C:\Windows\Fonts\arialbd.ttf`,
}

// Options holds the fixed generation settings.
type Options struct {
	OutputDir  string
	Sizes      []int
	Background string // "#rrggbb" or "#rgb"
	Foreground string
	Label      string
	FontScale  float64
	FontPaths  []string
}

// Default returns the settings used by the genicons binary. Each call
// returns fresh slices, so callers may modify the result freely.
func Default() Options {
	return Options{
		OutputDir:  paths.OutputDirName,
		Sizes:      append([]int(nil), DefaultSizes...),
		Background: DefaultBackground,
		Foreground: DefaultForeground,
		Label:      DefaultLabel,
		FontScale:  DefaultFontScale,
		FontPaths:  append([]string(nil), DefaultFontPaths...),
	}
}

// FontPixels returns the label font size for an icon of the given edge,
// rounded down.
func (o Options) FontPixels(size int) int {
	return int(float64(size) * o.FontScale)
}

// Colors parses the background and label colors.
func (o Options) Colors() (bg, fg color.RGBA, err error) {
	if bg, err = ParseHexColor(o.Background); err != nil {
		return bg, fg, fmt.Errorf("background: %w", err)
	}
	if fg, err = ParseHexColor(o.Foreground); err != nil {
		return bg, fg, fmt.Errorf("foreground: %w", err)
	}
	return bg, fg, nil
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	// colorful.Hex ignores trailing digits and accepts short 6-digit
	// forms, so the length is checked first.
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("color %q: expected #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
