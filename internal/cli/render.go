package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dfscope/pkg/errors"
	"github.com/matzehuels/dfscope/pkg/pipeline"
	"github.com/matzehuels/dfscope/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output image path (default: <input>.<format>)
	format  string // output format: "png" or "svg"
	engine  string // render engine: "graphviz" (in-process) or "dot" (binary)
	labels  bool   // annotate edges with kind names
	dot     string // also write the DOT document to this path
	open    bool   // open the rendered image in the system viewer
	serve   string // serve a preview page on this address instead of writing
	noCache bool   // disable the artifact cache
	refresh bool   // bypass cached artifacts
}

// renderCommand creates the render command for generating images.
//
// Rendering is best effort: when no Graphviz engine is usable the
// command still prints the classification summary, writes the DOT
// document and reports the degradation without failing the run.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render the classified graph as a PNG or SVG image",
		Long: `Render the classified graph as a PNG or SVG image.

Edges are colored by their classification: tree edges black, back edges
red, forward edges blue and cross edges gray (configurable via the
[palette] section of the config file).

Examples:
  dfscope render graph.txt                    # graph.png next to the input
  dfscope render graph.txt -f svg -o out.svg
  dfscope render graph.txt --engine dot       # shell out to the dot binary
  dfscope render graph.txt --open             # open in the system viewer
  dfscope render graph.txt --serve :8080      # browser preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "render engine: graphviz (default), dot")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "annotate edges with their kind names")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "also write the DOT document to this path")
	cmd.Flags().BoolVar(&opts.open, "open", false, "open the rendered image in the system viewer")
	cmd.Flags().StringVar(&opts.serve, "serve", "", "serve an HTML preview on this address (e.g. :8080)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached artifacts")

	return cmd
}

// runRender executes the pipeline and writes or serves the outputs.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache, opts.engine)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	format := opts.format
	if format == "" {
		format = cfg.Format
	}
	pipeOpts := pipeline.Options{
		Input:   input,
		Format:  render.Format(format),
		Labels:  opts.labels || cfg.Labels,
		Palette: cfg.Palette,
		Refresh: opts.refresh,
		Logger:  loggerFromContext(ctx),
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()
	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil && errors.IsFatal(err) {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if opts.dot != "" {
		if werr := os.WriteFile(opts.dot, []byte(result.DOT), 0o644); werr != nil {
			return fmt.Errorf("write DOT %s: %w", opts.dot, werr)
		}
	}

	// Non-fatal render failure: the classification stands, so report the
	// degradation, make sure the DOT survives and stop cleanly.
	if err != nil {
		printWarning("%s", errors.UserMessage(err))
		dotPath := opts.dot
		if dotPath == "" {
			dotPath = basePath(opts.output, input) + ".dot"
			if werr := os.WriteFile(dotPath, []byte(result.DOT), 0o644); werr != nil {
				return fmt.Errorf("write DOT %s: %w", dotPath, werr)
			}
		}
		printInfo("DOT document written instead")
		printFile(dotPath)
		printStats(result.Stats.VertexCount, result.Stats.EdgeCount, false)
		return nil
	}

	if opts.serve != "" {
		return c.servePreview(ctx, opts.serve, result, pipeOpts.Format)
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = basePath("", input) + "." + format
	}
	if err := os.WriteFile(outputPath, result.Artifact, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Render complete")
	printFile(outputPath)
	if opts.dot != "" {
		printFile(opts.dot)
	}
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)

	if opts.open {
		if err := render.OpenViewer(outputPath); err != nil {
			printWarning("%s", errors.UserMessage(err))
			return nil
		}
		printDetail("Opened in system viewer")
	}

	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output has
// an image extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if render.ValidFormats[render.Format(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
