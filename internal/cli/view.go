package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordweb/internal/config"
	"github.com/matzehuels/wordweb/pkg/graph"
)

// viewOpts holds the command-line flags for the view command.
type viewOpts struct {
	input     string // text file to read
	graphFile string // previously exported graph JSON
	noCache   bool   // disable caching
}

// viewCommand creates the interactive viewer command.
func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view [text-file]",
		Short: "Explore the word graph interactively",
		Long: `Explore the word graph in the terminal.

The viewer starts with the whole graph in view. Key 1 narrows the view and
key 2 widens it again: steps are 10% down to 20%, then 1% down to 1%.
Other keys can be bound in the [view] section of the config file.

Examples:
  wordweb view                         # reads Textfile.txt
  wordweb view story.txt
  wordweb view --graph story.json      # graph exported by 'build -f json'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if opts.input != "" {
				cfg.Input.Path = opts.input
			}
			return c.runView(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.graphFile, "graph", "g", "", "open an exported graph JSON instead of a text file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runView builds or loads the graph and runs the viewer until quit.
func (c *CLI) runView(ctx context.Context, cfg config.Config, opts viewOpts) error {
	keys, err := cfg.Keymap()
	if err != nil {
		return err
	}

	g, err := c.loadViewGraph(ctx, cfg, opts)
	if err != nil {
		return err
	}
	c.Logger.Debug("opening viewer", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	p := tea.NewProgram(NewViewerModel(g, keys), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

func (c *CLI) loadViewGraph(ctx context.Context, cfg config.Config, opts viewOpts) (*graph.Graph, error) {
	if opts.graphFile != "" {
		g, err := graph.ReadGraphFile(opts.graphFile)
		if err != nil {
			return nil, fmt.Errorf("load graph %s: %w", opts.graphFile, err)
		}
		return g, nil
	}

	runner, err := c.newRunner(cfg, opts.noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts, err := pipelineOptions(cfg, c.Logger)
	if err != nil {
		return nil, err
	}
	popts.Formats = nil

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building graph from %s...", popts.InputPath))
	spinner.Start()
	defer trackStages(spinner)()
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Build failed")
		return nil, err
	}
	spinner.Stop()
	return result.Graph, nil
}
