// Package config loads wordweb settings from a TOML file.
//
// Lookup order when no explicit path is given:
//
//  1. ./wordweb.toml
//  2. $XDG_CONFIG_HOME/wordweb/config.toml (or ~/.config/wordweb/config.toml)
//
// A missing file yields [Default]. Keys absent from the file keep their
// default values. Unknown keys and invalid values fail with INVALID_CONFIG.
//
//	[input]
//	path = "Textfile.txt"
//
//	[annotator]
//	kind = "openai"
//	model = "gpt-4o-mini"
//	api_key_env = "OPENAI_API_KEY"
//
//	[view]
//	zoom_in = ["2", "+"]
//	zoom_out = ["1", "-"]
//
//	[output]
//	dir = "out"
//	formats = ["json", "svg"]
//	label_policy = "fallback"
//
//	[cache]
//	enabled = true
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordweb/pkg/errors"
	"github.com/matzehuels/wordweb/pkg/materialize"
	"github.com/matzehuels/wordweb/pkg/pipeline"
	"github.com/matzehuels/wordweb/pkg/source"
	"github.com/matzehuels/wordweb/pkg/view"
)

const (
	// FileName is the project-local config file.
	FileName = "wordweb.toml"

	appName = "wordweb"
)

// Annotator kinds.
const (
	AnnotatorRules  = "rules"
	AnnotatorTSV    = "tsv"
	AnnotatorOpenAI = "openai"
)

// AnnotatorKinds lists the supported annotator kinds.
var AnnotatorKinds = []string{AnnotatorRules, AnnotatorTSV, AnnotatorOpenAI}

// Config is the full configuration.
type Config struct {
	Input     InputConfig     `toml:"input"`
	Annotator AnnotatorConfig `toml:"annotator"`
	View      ViewConfig      `toml:"view"`
	Output    OutputConfig    `toml:"output"`
	Cache     CacheConfig     `toml:"cache"`

	// Path is the file the config was loaded from, or "" for defaults.
	Path string `toml:"-"`
}

// InputConfig selects the text source.
type InputConfig struct {
	Path string `toml:"path"`
}

// AnnotatorConfig selects and configures the annotator.
type AnnotatorConfig struct {
	Kind        string   `toml:"kind"`
	Model       string   `toml:"model"`
	BaseURL     string   `toml:"base_url"`
	APIKeyEnv   string   `toml:"api_key_env"`
	Temperature float64  `toml:"temperature"`
	ExtraVerbs  []string `toml:"extra_verbs"`
}

// ViewConfig holds the interactive viewer key bindings.
type ViewConfig struct {
	ZoomIn  []string `toml:"zoom_in"`
	ZoomOut []string `toml:"zoom_out"`
}

// OutputConfig controls artifact generation.
type OutputConfig struct {
	Dir         string   `toml:"dir"`
	Formats     []string `toml:"formats"`
	LabelPolicy string   `toml:"label_policy"`
	Detailed    bool     `toml:"detailed"`
	RankDir     string   `toml:"rankdir"`
}

// CacheConfig controls the annotation cache.
type CacheConfig struct {
	Enabled   bool   `toml:"enabled"`
	Dir       string `toml:"dir"`
	Namespace string `toml:"namespace"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{Path: source.DefaultPath},
		Annotator: AnnotatorConfig{
			Kind:      AnnotatorRules,
			APIKeyEnv: "OPENAI_API_KEY",
		},
		View: ViewConfig{
			ZoomIn:  slices.Clone(view.DefaultZoomInKeys),
			ZoomOut: slices.Clone(view.DefaultZoomOutKeys),
		},
		Output: OutputConfig{
			Dir:         ".",
			Formats:     []string{pipeline.FormatJSON},
			LabelPolicy: materialize.LabelStrict.String(),
			RankDir:     "LR",
		},
		Cache: CacheConfig{Enabled: true},
	}
}

// Load reads the config at path. An empty path searches the default
// locations and returns [Default] when none exists.
func Load(path string) (Config, error) {
	if path == "" {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes TOML on top of the defaults and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if !slices.Contains(AnnotatorKinds, c.Annotator.Kind) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown annotator kind %q (supported: %s)",
			c.Annotator.Kind, strings.Join(AnnotatorKinds, ", "))
	}
	if c.Annotator.Temperature < 0 || c.Annotator.Temperature > 2 {
		return errors.New(errors.ErrCodeInvalidConfig, "annotator temperature must be in [0, 2]")
	}
	if _, err := c.LabelPolicy(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.label_policy")
	}
	if err := pipeline.ValidateFormats(c.Output.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.formats")
	}
	if _, err := c.Keymap(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "view")
	}
	return nil
}

// LabelPolicy parses output.label_policy.
func (c Config) LabelPolicy() (materialize.LabelPolicy, error) {
	return materialize.ParseLabelPolicy(c.Output.LabelPolicy)
}

// Keymap builds the viewer key bindings.
func (c Config) Keymap() (view.Keymap, error) {
	return view.NewKeymap(c.View.ZoomIn, c.View.ZoomOut)
}

// APIKey reads the annotator API key from the configured environment variable.
func (c Config) APIKey() string {
	if c.Annotator.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Annotator.APIKeyEnv)
}

// CacheDir returns cache.dir, or the XDG cache directory (~/.cache/wordweb/).
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func searchPaths() []string {
	paths := []string{FileName}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return append(paths, filepath.Join(dir, appName, "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return paths
}
