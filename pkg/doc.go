// Package pkg provides the core libraries for WordWeb word graphs.
//
// # Overview
//
// WordWeb reads a text, extracts the facts it states as
// subject/relation/object triples, merges repeated facts, and draws the
// result as a directed graph. Subject nodes are shaded from white to red by
// how many links they carry relative to the busiest subject in the text. The
// pkg directory is organized into these areas:
//
//  1. [triple], [index] - Triple model and the deduplicating
//     Subject → Predicate → Object index
//  2. [annotate] - Sentence splitting and the triple extractors (rules, tsv,
//     openai)
//  3. [scale], [materialize], [graph] - Color intensity, graph population and
//     the graph model with JSON serialization
//  4. [render] - DOT, SVG, PNG and PDF export via Graphviz
//  5. [view] - The two-key zoom state machine of the interactive viewer
//  6. [pipeline] - Orchestration (read → annotate → ingest → materialize → render)
//  7. [cache], [observability], [errors], [source], [buildinfo] - Supporting
//     infrastructure
//
// # Architecture
//
// The typical data flow through WordWeb:
//
//	Textfile.txt
//	     ↓
//	[annotate] (sentences + triples)
//	     ↓
//	[index] (deduplicated, insertion ordered, frozen)
//	     ↓
//	[materialize] (nodes, edges, colors; [scale] computes intensities)
//	     ↓
//	[graph] → [render/nodelink] → JSON/DOT/SVG/PNG/PDF
//	     ↓
//	[view] (zoom 1.0 → 0.01 in 0.1 then 0.01 steps)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/wordweb/pkg/annotate/rules"
//	    "github.com/matzehuels/wordweb/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(rules.New(rules.Options{}), nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    InputPath: "Textfile.txt",
//	    Formats:   []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -run Example ./... # Examples only
//
// [triple]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/triple
// [index]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/index
// [annotate]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/annotate
// [scale]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/scale
// [materialize]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/materialize
// [graph]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/render
// [view]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/view
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/errors
// [source]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/source
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/buildinfo
//
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/wordweb/pkg/render/nodelink
package pkg
