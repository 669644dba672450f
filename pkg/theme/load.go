package theme

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/style"
)

// Parse decodes a TOML theme definition. Colors use hex notation ("#1e1e2e").
// Fields left out inherit from the Light theme so partial definitions stay
// renderable.
func Parse(data []byte) (*Theme, error) {
	t := Theme{}
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme")
	}
	if t.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "theme is missing a name")
	}
	if err := errors.ValidateThemeName(t.Name); err != nil {
		return nil, err
	}
	applyDefaults(&t)
	return &t, nil
}

// Load reads and parses a TOML theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read theme file %s", path)
	}
	return Parse(data)
}

func applyDefaults(t *Theme) {
	zero := style.Color{}
	if t.Background == zero {
		t.Background = Light.Background
	}
	if t.Foreground == zero {
		t.Foreground = Light.Foreground
	}
	if t.Grid == zero {
		t.Grid = Light.Grid
	}
	if t.LegendFill == zero {
		t.LegendFill = Light.LegendFill
	}
	if t.LegendBorder == zero {
		t.LegendBorder = Light.LegendBorder
	}
	if len(t.Palette) == 0 {
		t.Palette = StandardPalette
	}
}
