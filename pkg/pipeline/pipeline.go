// Package pipeline runs the text-to-graph pipeline for wordweb.
//
// This package implements the complete read → annotate → ingest →
// materialize → render pipeline used by every CLI command. Centralizing it
// keeps caching, hooks and logging consistent across entry points.
//
// # Architecture
//
// The pipeline consists of five stages:
//
//  1. Read: Load the text file (a failure yields empty text, not an error)
//  2. Annotate: Extract triples with the configured annotator (cached)
//  3. Ingest: Deduplicate triples into a frozen [index.Index]
//  4. Materialize: Populate a [graph.Graph] with colored nodes and edges
//  5. Render: Export the graph as JSON, DOT, SVG, PNG or PDF (cached)
//
// # Usage
//
//	runner := pipeline.NewRunner(rules.New(rules.Options{}), cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    InputPath: "Textfile.txt",
//	    Formats:   []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Each run gets a UUID that tags its log lines and observability events.
//
// [index.Index]: github.com/matzehuels/wordweb/pkg/index.Index
// [graph.Graph]: github.com/matzehuels/wordweb/pkg/graph.Graph
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordweb/pkg/annotate"
	"github.com/matzehuels/wordweb/pkg/errors"
	"github.com/matzehuels/wordweb/pkg/graph"
	"github.com/matzehuels/wordweb/pkg/index"
	"github.com/matzehuels/wordweb/pkg/materialize"
	"github.com/matzehuels/wordweb/pkg/source"
)

// DefaultGraphName names the materialized graph.
const DefaultGraphName = "wordweb"

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatJSON, FormatDOT, FormatSVG, FormatPNG, FormatPDF}

// Options configures a pipeline run.
type Options struct {
	// InputPath is the text file to read. Defaults to [source.DefaultPath].
	InputPath string `json:"input_path,omitempty"`

	// Text, when non-empty, is used instead of reading InputPath.
	Text string `json:"-"`

	// GraphName names the materialized graph.
	GraphName string `json:"graph_name,omitempty"`

	// LabelPolicy selects how labels without a delimiter are handled.
	LabelPolicy materialize.LabelPolicy `json:"-"`

	// Formats to render. Empty means no artifacts.
	Formats []string `json:"formats,omitempty"`

	// Detailed adds IDs and degrees to rendered node labels.
	Detailed bool `json:"detailed,omitempty"`

	// RankDir is the Graphviz layout direction.
	RankDir string `json:"rankdir,omitempty"`

	// PNGScale is the resolution multiplier for PNG output.
	PNGScale float64 `json:"png_scale,omitempty"`

	// Refresh bypasses cached annotations and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and hook events.
	RunID string

	// Sentences are the annotated sentences.
	Sentences []annotate.Sentence

	// Index is the frozen triple index.
	Index *index.Index

	// Graph is the materialized graph.
	Graph *graph.Graph

	// Materialize reports what materialization did.
	Materialize materialize.Result

	// GraphHash is the content hash of the serialized graph.
	GraphHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Bytes     int
	Sentences int
	Triples   int
	Subjects  int
	Nodes     int
	Edges     int

	ReadTime        time.Duration
	AnnotateTime    time.Duration
	IngestTime      time.Duration
	MaterializeTime time.Duration
	RenderTime      time.Duration
}

// CacheInfo tracks cache hits for each cached stage.
type CacheInfo struct {
	AnnotationHit bool
	RenderHit     bool
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.InputPath == "" {
		o.InputPath = source.DefaultPath
	}
	if o.GraphName == "" {
		o.GraphName = DefaultGraphName
	}
	if o.RankDir == "" {
		o.RankDir = "LR"
	}
	if o.PNGScale <= 0 {
		o.PNGScale = 2.0
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
