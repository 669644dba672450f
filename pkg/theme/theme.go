// Package theme maps design elements to concrete visual styles.
//
// A theme bundles the figure-wide colors (background, foreground, grid,
// legend chrome) with a series color palette and a font family. Styling is
// resolved through a [Resolver], which walks the override chain from the
// series outward and always lands on a usable value: theme resolution has no
// error channel, a missing entry falls back to a neutral style instead of
// aborting a redraw.
//
// # Usage
//
//	t, err := theme.Lookup("dark")
//	r := theme.NewResolver(t)
//	stroke := r.SeriesStroke(0, series.Stroke) // override wins when non-nil
package theme

import (
	"sort"
	"sync"

	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/style"
)

// Styling defaults. Sizes are in pixels, font sizes in points.
const (
	// DefaultFontFamily is the fallback font family.
	DefaultFontFamily = "sans-serif"

	// TitleFontSize is the figure title size.
	TitleFontSize = 20.0

	// AxisTitleFontSize is the axis title size.
	AxisTitleFontSize = 16.0

	// TickLabelFontSize is the tick label size.
	TickLabelFontSize = 12.0

	// LegendFontSize is the legend entry label size.
	LegendFontSize = 13.0

	// LegendShapeWidth and LegendShapeHeight size the sample swatch drawn
	// next to each legend label.
	LegendShapeWidth  = 25.0
	LegendShapeHeight = 14.0

	// LegendShapeSpacing separates a swatch from its label.
	LegendShapeSpacing = 10.0

	// LegendPadding is the inner padding of the legend box.
	LegendPadding = 8.0

	// LegendHSpace and LegendVSpace separate legend entries.
	LegendHSpace = 16.0
	LegendVSpace = 10.0

	// LegendMargin separates the legend box from the plot area.
	LegendMargin = 12.0

	// DefaultLineWidth is the series line width.
	DefaultLineWidth = 1.5

	// DefaultMarkerSize is the scatter marker extent.
	DefaultMarkerSize = 10.0
)

// Theme holds the color and font choices of one visual style. The zero value
// is unusable; start from a built-in or a TOML file.
type Theme struct {
	// Name identifies the theme in lookups. Lowercase, hyphenated.
	Name string `toml:"name"`

	Background style.Color `toml:"background"`
	Foreground style.Color `toml:"foreground"`

	// Grid colors both major and minor grid lines; minor lines halve the
	// alpha.
	Grid style.Color `toml:"grid"`

	// LegendFill and LegendBorder style the legend box.
	LegendFill   style.Color `toml:"legend_fill"`
	LegendBorder style.Color `toml:"legend_border"`

	// Palette supplies series colors, cycling by series index.
	Palette []style.Color `toml:"palette"`

	// FontFamily is the family for all text. Empty resolves to
	// DefaultFontFamily.
	FontFamily string `toml:"font_family"`
}

// IsDark reports whether the theme background is dark (luminance < 0.5).
func (t *Theme) IsDark() bool {
	return luminance(t.Background) < 0.5
}

func luminance(c style.Color) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

// StandardPalette is the default ten-color series palette.
var StandardPalette = []style.Color{
	style.FromHex("#1f77b4"), // blue
	style.FromHex("#ff7f0e"), // orange
	style.FromHex("#2ca02c"), // green
	style.FromHex("#d62728"), // red
	style.FromHex("#9467bd"), // purple
	style.FromHex("#8c564b"), // brown
	style.FromHex("#e377c2"), // pink
	style.FromHex("#7f7f7f"), // gray
	style.FromHex("#bcbd22"), // olive
	style.FromHex("#17becf"), // cyan
}

// PastelPalette is a lighter variant of the standard palette.
var PastelPalette = []style.Color{
	style.FromHex("#aec7e8"),
	style.FromHex("#ffbb78"),
	style.FromHex("#98df8a"),
	style.FromHex("#ff9896"),
	style.FromHex("#c5b0d5"),
	style.FromHex("#c49c94"),
	style.FromHex("#f7b6d2"),
	style.FromHex("#c7c7c7"),
	style.FromHex("#dbdb8d"),
	style.FromHex("#9edae5"),
}

// Light is the default built-in theme.
var Light = &Theme{
	Name:         "light",
	Background:   style.FromHex("#ffffff"),
	Foreground:   style.FromHex("#000000"),
	Grid:         style.FromHex("#808080").WithAlpha(153),
	LegendFill:   style.FromHex("#ffffff").WithAlpha(128),
	LegendBorder: style.FromHex("#000000"),
	Palette:      StandardPalette,
}

// Dark is the built-in dark theme.
var Dark = &Theme{
	Name:         "dark",
	Background:   style.FromHex("#1e1e2e"),
	Foreground:   style.FromHex("#ffffff"),
	Grid:         style.FromHex("#c0c0c0").WithAlpha(153),
	LegendFill:   style.FromHex("#1e1e2e").WithAlpha(128),
	LegendBorder: style.FromHex("#ffffff"),
	Palette:      StandardPalette,
}

// =============================================================================
// Registry
// =============================================================================

var (
	registryMu sync.RWMutex
	registry   = map[string]*Theme{
		"light": Light,
		"dark":  Dark,
	}
)

// Lookup resolves a theme by name. Empty selects "light". Unknown names
// return a NOT_FOUND error; malformed names an INVALID_THEME error.
func Lookup(name string) (*Theme, error) {
	if name == "" {
		return Light, nil
	}
	if err := errors.ValidateThemeName(name); err != nil {
		return nil, err
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "theme %q not registered", name)
	}
	return t, nil
}

// Register adds or replaces a theme in the registry.
func Register(t *Theme) error {
	if err := errors.ValidateThemeName(t.Name); err != nil {
		return err
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t.Name] = t
	return nil
}

// Names returns the registered theme names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
