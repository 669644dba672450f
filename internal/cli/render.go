package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figment/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	data    string   // data file path (columnar JSON)
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats
	theme   string   // theme override
	width   float64  // canvas width override in pixels
	height  float64  // canvas height override in pixels
	noCache bool     // disable the frame cache
	refresh bool     // bypass and overwrite cached entries
}

// renderCommand creates the render command for rendering figure designs.
//
// The design file (TOML or JSON) is bound against the data file, laid out,
// drawn, and encoded into the requested formats. Results are cached by
// content hash, so re-rendering unchanged inputs is instant.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <design>",
		Short: "Render a figure design against a data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.data == "" {
				return fmt.Errorf("--data is required")
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "data file (columnar JSON)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default) (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme override (see 'figment themes')")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width override")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height override")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the frame cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runRender executes the pipeline and writes the requested artifacts.
func (c *CLI) runRender(cmd *cobra.Command, design string, opts *renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Rendering %s", design))
	spin.Start()

	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		DesignPath: design,
		DataPath:   opts.data,
		Theme:      opts.theme,
		Width:      opts.width,
		Height:     opts.height,
		Formats:    opts.formats,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	})
	if err != nil {
		spin.StopWithError(fmt.Sprintf("Render failed: %v", err))
		return err
	}
	spin.StopWithSuccess(fmt.Sprintf("Rendered %s", design))
	printStats(result.Stats.SeriesCount, result.Stats.PrimitiveCount, result.CacheInfo.FrameHit)

	for _, format := range opts.formats {
		path := outputPath(opts.output, design, format, len(opts.formats))
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// outputPath derives the output file path for one format. An explicit
// output wins for a single format and becomes the base path for several;
// otherwise the design file name provides the base.
func outputPath(output, design, format string, formatCount int) string {
	if output != "" && formatCount == 1 {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(design, filepath.Ext(design))
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base + "." + format
}
