package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to json", "", []string{"json"}},
		{"single format", "json", []string{"json"}},
		{"multiple values", "json,json", []string{"json", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		design      string
		format      string
		formatCount int
		want        string
	}{
		{"derived from design", "", "fig.toml", "json", 1, "fig.json"},
		{"explicit single output", "out.json", "fig.toml", "json", 1, "out.json"},
		{"explicit base for multiple", "out.json", "fig.toml", "json", 2, "out.json"},
		{"design in directory", "", "designs/fig.toml", "json", 1, "designs/fig.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.output, tt.design, tt.format, tt.formatCount)
			if got != tt.want {
				t.Errorf("outputPath(%q, %q, %q, %d) = %q, want %q",
					tt.output, tt.design, tt.format, tt.formatCount, got, tt.want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	design := filepath.Join(dir, "fig.toml")
	data := filepath.Join(dir, "points.json")
	out := filepath.Join(dir, "fig.json")

	designDoc := `
[[rows]]
  [[rows.plots]]
    [[rows.plots.series]]
    type = "line"
    x = "x"
    y = "y"
`
	dataDoc := `{"columns": [
		{"name": "x", "values": [0, 1, 2]},
		{"name": "y", "values": [0, 1, 4]}
	]}`
	if err := os.WriteFile(design, []byte(designDoc), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(data, []byte(dataDoc), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", design, "--data", data, "--output", out, "--no-cache"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(raw), `"primitives"`) {
		t.Error("output does not look like a frame encoding")
	}
}

func TestRenderCommandMissingData(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", "fig.toml"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "--data") {
		t.Errorf("error = %v, want --data required", err)
	}
}
