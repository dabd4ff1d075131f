package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordweb/internal/config"
	"github.com/matzehuels/wordweb/pkg/materialize"
	"github.com/matzehuels/wordweb/pkg/pipeline"
	"github.com/matzehuels/wordweb/pkg/source"
)

// buildOpts holds the command-line flags for the build command.
// Zero values leave the configured setting in place.
type buildOpts struct {
	input       string // text file to read
	formats     string // comma-separated output formats
	outputDir   string // directory for artifacts
	labelPolicy string // strict or fallback
	rankDir     string // Graphviz layout direction
	detailed    bool   // show IDs and degrees in node labels
	noCache     bool   // disable caching
	refresh     bool   // bypass cached annotations and artifacts
}

// apply overlays the flags that were set onto cfg.
func (o *buildOpts) apply(cmd *cobra.Command, cfg *config.Config) error {
	if o.input != "" {
		cfg.Input.Path = o.input
	}
	if f := parseFormats(o.formats); f != nil {
		if err := pipeline.ValidateFormats(f); err != nil {
			return err
		}
		cfg.Output.Formats = f
	}
	if o.outputDir != "" {
		cfg.Output.Dir = o.outputDir
	}
	if o.labelPolicy != "" {
		if _, err := materialize.ParseLabelPolicy(o.labelPolicy); err != nil {
			return err
		}
		cfg.Output.LabelPolicy = o.labelPolicy
	}
	if o.rankDir != "" {
		cfg.Output.RankDir = o.rankDir
	}
	if cmd.Flags().Changed("detailed") {
		cfg.Output.Detailed = o.detailed
	}
	return nil
}

// buildCommand creates the build command that runs the whole pipeline and
// writes the rendered artifacts.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [text-file]",
		Short: "Build the word graph and write it in the configured formats",
		Long: `Build the word graph from a text file.

The text is split into sentences, annotated with subject/relation/object
triples, deduplicated, and drawn as a graph. Subject nodes are shaded from
white to red by how many links they carry relative to the busiest subject.

If the text file cannot be read, the graph is built from empty text and a
warning is logged.

Examples:
  wordweb build                          # reads Textfile.txt
  wordweb build story.txt -f svg,json    # writes story.svg and story.json
  wordweb build story.txt -f dot -o out  # writes out/story.dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, &cfg); err != nil {
				return err
			}
			return c.runBuild(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): json, dot, svg, png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for output files")
	cmd.Flags().StringVar(&opts.labelPolicy, "label-policy", "", "labels without a delimiter: strict, fallback")
	cmd.Flags().StringVar(&opts.rankDir, "rankdir", "", "layout direction: LR, TB, RL, BT")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node IDs and degrees")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached annotations and artifacts")

	return cmd
}

// runBuild executes the pipeline and writes one file per format.
func (c *CLI) runBuild(ctx context.Context, cfg config.Config, opts buildOpts) error {
	runner, err := c.newRunner(cfg, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts, err := pipelineOptions(cfg, c.Logger)
	if err != nil {
		return err
	}
	popts.Refresh = opts.refresh

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building graph from %s...", popts.InputPath))
	spinner.Start()
	defer trackStages(spinner)()

	prog := newProgress(loggerFromContext(ctx))
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Built graph with %d nodes and %d edges", result.Stats.Nodes, result.Stats.Edges))

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   popts.Formats,
		dir:       cfg.Output.Dir,
		input:     popts.InputPath,
		result:    result,
	})
}

// artifactWriteParams bundles what writeArtifacts needs.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	dir       string
	input     string
	result    *pipeline.Result
}

// writeArtifacts writes each artifact as <dir>/<input stem>.<format> and
// prints a summary.
func writeArtifacts(p artifactWriteParams) error {
	base := outputBase(p.input)
	if p.dir != "" {
		if err := os.MkdirAll(p.dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(p.dir, base+"."+format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	r := p.result
	if r.Materialize.Empty {
		printWarning("No triples found, the graph is empty")
	} else {
		printSuccess("Built word graph")
	}
	for _, path := range paths {
		printFile(path)
	}
	printStats(r.Stats, r.CacheInfo.AnnotationHit)
	if r.Materialize.RolledBack > 0 {
		printDetail("%d edges rolled back", r.Materialize.RolledBack)
	}
	if len(paths) > 0 && !r.Materialize.Empty {
		printNewline()
		printNextStep("Explore interactively", appName+" view "+p.input)
	}
	return nil
}

// outputBase derives the artifact file name from the input path.
func outputBase(input string) string {
	if input == "" {
		input = source.DefaultPath
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
