package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordweb/internal/config"
	"github.com/matzehuels/wordweb/pkg/annotate"
	"github.com/matzehuels/wordweb/pkg/annotate/openai"
	"github.com/matzehuels/wordweb/pkg/annotate/rules"
	"github.com/matzehuels/wordweb/pkg/annotate/tsv"
	"github.com/matzehuels/wordweb/pkg/buildinfo"
	"github.com/matzehuels/wordweb/pkg/cache"
	"github.com/matzehuels/wordweb/pkg/errors"
	"github.com/matzehuels/wordweb/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "wordweb"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is set by the persistent --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "WordWeb turns the facts stated in a text into a colored word graph",
		Long:         `WordWeb extracts subject, relation and object triples from a text file, merges duplicates, and draws them as a graph whose node colors reflect how much each subject links to. The graph can be exported or explored interactively with a two-key zoom.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		registerLogHooks(c.Logger)
		return nil
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default: ./"+config.FileName+")")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.triplesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Factories
// =============================================================================

// loadConfig reads the config selected by --config.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}
	return cfg, nil
}

// newAnnotator builds the annotator named by annotator.kind.
func (c *CLI) newAnnotator(cfg config.Config) (annotate.Annotator, error) {
	switch cfg.Annotator.Kind {
	case config.AnnotatorRules:
		return rules.New(rules.Options{ExtraVerbs: cfg.Annotator.ExtraVerbs}), nil
	case config.AnnotatorTSV:
		return tsv.New(), nil
	case config.AnnotatorOpenAI:
		return openai.New(openai.Options{
			APIKey:      cfg.APIKey(),
			BaseURL:     cfg.Annotator.BaseURL,
			Model:       cfg.Annotator.Model,
			Temperature: cfg.Annotator.Temperature,
			Logger:      c.Logger,
		})
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown annotator kind %q", cfg.Annotator.Kind)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(cfg config.Config, noCache bool) (*pipeline.Runner, error) {
	a, err := c.newAnnotator(cfg)
	if err != nil {
		return nil, err
	}
	ch, err := c.newCache(cfg, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if ns := cfg.Cache.Namespace; ns != "" {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), ns)
	}
	return pipeline.NewRunner(a, ch, keyer, c.Logger), nil
}

// newCache opens the file cache, falling back to no caching when the cache
// directory cannot be determined.
func (c *CLI) newCache(cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache || !cfg.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// pipelineOptions maps the config onto pipeline options.
func pipelineOptions(cfg config.Config, logger *log.Logger) (pipeline.Options, error) {
	policy, err := cfg.LabelPolicy()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{
		InputPath:   cfg.Input.Path,
		LabelPolicy: policy,
		Formats:     cfg.Output.Formats,
		Detailed:    cfg.Output.Detailed,
		RankDir:     cfg.Output.RankDir,
		Logger:      logger,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
// An empty string yields nil so the configured formats apply.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
