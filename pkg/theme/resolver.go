package theme

import "github.com/matzehuels/figment/pkg/style"

// neutral is the last-resort style when a theme carries no usable entry.
var neutral = style.Stroke{Color: style.RGB(128, 128, 128), Width: 1.0}

// Resolver answers style queries for one theme. Every method walks the given
// override chain innermost-first (series before plot before figure) and falls
// back to the theme, then to a neutral style. Resolution never fails.
type Resolver struct {
	theme *Theme
}

// NewResolver creates a resolver. A nil theme resolves to Light.
func NewResolver(t *Theme) *Resolver {
	if t == nil {
		t = Light
	}
	return &Resolver{theme: t}
}

// Theme returns the resolved theme.
func (r *Resolver) Theme() *Theme { return r.theme }

// SeriesColor returns the palette color for a series index, cycling when the
// index exceeds the palette.
func (r *Resolver) SeriesColor(idx int) style.Color {
	p := r.theme.Palette
	if len(p) == 0 {
		return neutral.Color
	}
	if idx < 0 {
		idx = 0
	}
	return p[idx%len(p)]
}

// SeriesStroke resolves the stroke of a series: the first non-nil override
// wins, otherwise the palette color at the default line width.
func (r *Resolver) SeriesStroke(idx int, overrides ...*style.Stroke) style.Stroke {
	for _, o := range overrides {
		if o != nil {
			s := *o
			if s.Width == 0 {
				s.Width = DefaultLineWidth
			}
			return s
		}
	}
	return style.Stroke{Color: r.SeriesColor(idx), Width: DefaultLineWidth}
}

// SeriesFill resolves the fill of a series: the first non-nil override wins,
// otherwise the palette color.
func (r *Resolver) SeriesFill(idx int, overrides ...*style.Fill) style.Fill {
	for _, o := range overrides {
		if o != nil {
			return *o
		}
	}
	return style.Fill{Color: r.SeriesColor(idx)}
}

// GridStroke resolves the grid line stroke. Minor grids halve the alpha.
func (r *Resolver) GridStroke(minor bool) style.Stroke {
	c := r.theme.Grid
	if c == (style.Color{}) {
		c = neutral.Color
	}
	if minor {
		c = c.WithAlpha(c.A / 2)
	}
	return style.Stroke{Color: c, Width: 1.0}
}

// AxisStroke resolves the axis line and tick mark stroke.
func (r *Resolver) AxisStroke() style.Stroke {
	return style.Stroke{Color: r.foreground(), Width: 1.0}
}

// LegendFill resolves the legend box fill.
func (r *Resolver) LegendFill() style.Fill {
	return style.Fill{Color: r.theme.LegendFill}
}

// LegendBorder resolves the legend box border stroke.
func (r *Resolver) LegendBorder() style.Stroke {
	c := r.theme.LegendBorder
	if c == (style.Color{}) {
		c = neutral.Color
	}
	return style.Stroke{Color: c, Width: 1.0}
}

// Background resolves the canvas fill.
func (r *Resolver) Background() style.Fill {
	return style.Fill{Color: r.theme.Background}
}

// TextColor resolves the color of titles, labels, and legend text.
func (r *Resolver) TextColor() style.Color { return r.foreground() }

func (r *Resolver) foreground() style.Color {
	if r.theme.Foreground == (style.Color{}) {
		return neutral.Color
	}
	return r.theme.Foreground
}

// Fonts. The family comes from the theme, sizes from the package defaults.

// TitleFont resolves the figure and plot title font.
func (r *Resolver) TitleFont() style.Font {
	return style.Font{Family: r.family(), Size: TitleFontSize, Weight: style.WeightBold}
}

// AxisTitleFont resolves the axis title font.
func (r *Resolver) AxisTitleFont() style.Font {
	return style.Font{Family: r.family(), Size: AxisTitleFontSize}
}

// TickLabelFont resolves the tick label font.
func (r *Resolver) TickLabelFont() style.Font {
	return style.Font{Family: r.family(), Size: TickLabelFontSize}
}

// LegendFont resolves the legend entry font.
func (r *Resolver) LegendFont() style.Font {
	return style.Font{Family: r.family(), Size: LegendFontSize}
}

// AnnotationFont resolves the default annotation label font. Annotations may
// override with their own font.
func (r *Resolver) AnnotationFont(override *style.Font) style.Font {
	if override != nil {
		f := *override
		if f.Family == "" {
			f.Family = r.family()
		}
		if f.Size == 0 {
			f.Size = TickLabelFontSize
		}
		return f
	}
	return style.Font{Family: r.family(), Size: TickLabelFontSize}
}

func (r *Resolver) family() string {
	if r.theme.FontFamily == "" {
		return DefaultFontFamily
	}
	return r.theme.FontFamily
}
