package materialize

import (
	"context"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordweb/pkg/errors"
	"github.com/matzehuels/wordweb/pkg/graph"
	"github.com/matzehuels/wordweb/pkg/index"
	"github.com/matzehuels/wordweb/pkg/scale"
	"github.com/matzehuels/wordweb/pkg/triple"
)

// Renderer is the graph surface Materialize draws into.
// [graph.Graph] implements it.
type Renderer interface {
	HasNode(id string) bool
	// AddNode must be idempotent for existing IDs.
	AddNode(id string) error
	SetNodeAttr(id, key, value string) error
	// AddEdge returns an error when the edge cannot be created.
	AddEdge(id, from, to string) error
	SetEdgeAttr(id, key, value string) error
	RemoveNode(id string)
}

var _ Renderer = (*graph.Graph)(nil)

// LabelPolicy selects how labels without a display form are handled.
type LabelPolicy int

const (
	// LabelStrict aborts materialization with an INVALID_LABEL error.
	LabelStrict LabelPolicy = iota
	// LabelFallback displays the full compound label and logs a warning.
	LabelFallback
)

// ParseLabelPolicy maps "strict" or "fallback" to a LabelPolicy.
func ParseLabelPolicy(s string) (LabelPolicy, error) {
	switch s {
	case "", "strict":
		return LabelStrict, nil
	case "fallback":
		return LabelFallback, nil
	}
	return LabelStrict, errors.New(errors.ErrCodeInvalidInput, "unknown label policy %q (want strict or fallback)", s)
}

// String returns the policy name.
func (p LabelPolicy) String() string {
	if p == LabelFallback {
		return "fallback"
	}
	return "strict"
}

// Options configures Materialize.
type Options struct {
	LabelPolicy LabelPolicy
	Logger      *log.Logger
}

// Result summarizes one materialization pass.
type Result struct {
	Empty          bool         // index had no subjects; renderer untouched
	Maxima         scale.Maxima // normalization denominators used
	Nodes          int          // distinct nodes ensured
	Edges          int          // edges committed
	RolledBack     int          // edges rejected by the renderer
	LabelFallbacks int          // distinct labels displayed in full under LabelFallback
	LastEdgeID     int          // highest edge ID allocated, committed or not
}

// EdgeIDs allocates strictly increasing edge IDs starting at 1.
type EdgeIDs struct{ last int }

// Next returns a fresh ID.
func (a *EdgeIDs) Next() int {
	a.last++
	return a.last
}

// Last returns the most recently allocated ID, or 0.
func (a *EdgeIDs) Last() int { return a.last }

// Materialize draws idx into r. The maxima are recomputed from idx on every
// call.
func Materialize(ctx context.Context, idx *index.Index, r Renderer, opts Options) (Result, error) {
	m, ok := scale.ComputeMaxima(idx)
	if !ok {
		return Result{Empty: true}, nil
	}

	p := &pass{
		r:      r,
		opts:   opts,
		logger: opts.Logger,
		seen:   make(map[string]struct{}),
		wide:   make(map[triple.Label]struct{}),
		res:    Result{Maxima: m},
	}
	if p.logger == nil {
		p.logger = log.Default()
	}

	for _, s := range idx.Subjects() {
		if err := ctx.Err(); err != nil {
			p.res.LastEdgeID = p.ids.Last()
			return p.res, err
		}
		if err := p.subject(s, m); err != nil {
			p.res.LastEdgeID = p.ids.Last()
			return p.res, err
		}
	}
	p.res.LastEdgeID = p.ids.Last()
	return p.res, nil
}

type pass struct {
	r      Renderer
	opts   Options
	logger *log.Logger
	ids    EdgeIDs
	seen   map[string]struct{}
	wide   map[triple.Label]struct{} // labels displayed in full
	res    Result
}

func (p *pass) subject(s *index.SubjectEntry, m scale.Maxima) error {
	sid := string(s.Label())
	if _, err := p.ensureNode(s.Label()); err != nil {
		return err
	}
	if err := p.r.SetNodeAttr(sid, graph.AttrStyle, scale.NodeStyle(m.NodeIntensity(s))); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "style node %q", sid)
	}

	edgeStyle := scale.EdgeStyle(m.EdgeIntensity(s))
	for _, pred := range s.Predicates() {
		predLabel, err := p.display(pred.Label())
		if err != nil {
			return err
		}
		for _, o := range pred.Objects() {
			if err := p.edge(sid, o.Label(), predLabel, edgeStyle); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *pass) edge(sid string, object triple.Label, label, style string) error {
	oid := string(object)
	created, err := p.ensureNode(object)
	if err != nil {
		return err
	}

	eid := strconv.Itoa(p.ids.Next())
	if err := p.r.AddEdge(eid, sid, oid); err != nil {
		p.rollback(eid, oid, created, err)
		return nil
	}

	if err := p.r.SetEdgeAttr(eid, graph.AttrLabel, label); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "label edge %s", eid)
	}
	if err := p.r.SetEdgeAttr(eid, graph.AttrStyle, style); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "style edge %s", eid)
	}
	p.res.Edges++
	return nil
}

// rollback undoes a rejected edge. The ID is simply never handed out again;
// removing an edge by that ID could hit one the renderer already held. The
// object node is only removed if this attempt created it, so edges committed
// earlier keep their endpoints.
func (p *pass) rollback(eid, oid string, created bool, cause error) {
	if created {
		p.r.RemoveNode(oid)
		delete(p.seen, oid)
		p.res.Nodes--
	}
	p.res.RolledBack++
	p.logger.Warn("edge rejected, rolled back", "edge", eid, "to", oid, "err", cause)
}

// ensureNode adds the node if needed and sets its display label.
// It reports whether the node was created by this call.
func (p *pass) ensureNode(l triple.Label) (bool, error) {
	id := string(l)
	existed := p.r.HasNode(id)
	if err := p.r.AddNode(id); err != nil {
		return false, errors.Wrap(errors.ErrCodeRender, err, "add node %q", id)
	}
	if _, ok := p.seen[id]; !ok {
		p.seen[id] = struct{}{}
		p.res.Nodes++
	}
	label, err := p.display(l)
	if err != nil {
		if !existed {
			p.r.RemoveNode(id)
			delete(p.seen, id)
			p.res.Nodes--
		}
		return false, err
	}
	if err := p.r.SetNodeAttr(id, graph.AttrLabel, label); err != nil {
		return false, errors.Wrap(errors.ErrCodeRender, err, "label node %q", id)
	}
	return !existed, nil
}

func (p *pass) display(l triple.Label) (string, error) {
	d, err := l.Display()
	if err == nil {
		return d, nil
	}
	if p.opts.LabelPolicy == LabelFallback {
		if _, ok := p.wide[l]; !ok {
			p.wide[l] = struct{}{}
			p.res.LabelFallbacks++
			p.logger.Warn("label has no display form, using full label", "label", string(l))
		}
		return string(l), nil
	}
	return "", err
}
