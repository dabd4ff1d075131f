package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordweb/internal/config"
	"github.com/matzehuels/wordweb/pkg/annotate"
	"github.com/matzehuels/wordweb/pkg/annotate/tsv"
	"github.com/matzehuels/wordweb/pkg/index"
	"github.com/matzehuels/wordweb/pkg/triple"
)

// triplesCommand creates the command that lists extracted triples.
func (c *CLI) triplesCommand() *cobra.Command {
	var (
		asTSV   bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "triples [text-file]",
		Short: "List the triples extracted from a text",
		Long: `List the subject/relation/object triples extracted from a text.

With --tsv the triples are printed in the format read by the tsv annotator,
so a hand-corrected copy can be fed back with annotator.kind = "tsv".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Input.Path = args[0]
			}
			return c.runTriples(cmd.Context(), cmd.OutOrStdout(), cfg, asTSV, noCache)
		},
	}

	cmd.Flags().BoolVar(&asTSV, "tsv", false, "print tab-separated triples")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runTriples(ctx context.Context, w io.Writer, cfg config.Config, asTSV, noCache bool) error {
	runner, err := c.newRunner(cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts, err := pipelineOptions(cfg, c.Logger)
	if err != nil {
		return err
	}
	popts.Formats = nil

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}

	if asTSV {
		_, err := io.WriteString(w, tsv.Format(annotate.Triples(result.Sentences)))
		return err
	}

	fmt.Fprintln(w, triplesTable(result.Sentences))
	printIndexStats(result.Index.Stats(), result.CacheInfo.AnnotationHit)
	return nil
}

// triplesTable renders one row per triple, numbered by sentence.
func triplesTable(sentences []annotate.Sentence) string {
	var rows [][]string
	for i, s := range sentences {
		for _, t := range s.Triples {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				joinLabels(t.Subject),
				joinLabels(t.Relation),
				joinLabels(t.Object),
			})
		}
	}
	if len(rows) == 0 {
		return StyleDim.Render("No triples found")
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Subject", "Relation", "Object").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return listHeaderStyle
			case col == 0:
				return StyleDim
			case col == 2:
				return StyleHighlight
			}
			return StyleValue
		}).
		Render()
}

func printIndexStats(st index.Stats, cached bool) {
	printKeyValue("Triples", strconv.Itoa(st.Triples))
	printKeyValue("Subjects", strconv.Itoa(st.Subjects))
	printKeyValue("Predicates", strconv.Itoa(st.Predicates))
	printKeyValue("Objects", strconv.Itoa(st.Objects))
	if st.Duplicates > 0 {
		printKeyValue("Duplicates", strconv.Itoa(st.Duplicates))
	}
	if st.Skipped > 0 {
		printKeyValue("Skipped", strconv.Itoa(st.Skipped))
	}
	if cached {
		printDetail("annotations served from cache")
	}
}

func joinLabels(ls []triple.Label) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}
