package cache

import "time"

// Keyer derives cache keys.
type Keyer interface {
	// AnnotationKey identifies the annotation output for text.
	AnnotationKey(text string, opts AnnotationKeyOpts) string

	// ArtifactKey identifies a rendered artifact of a graph.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// AnnotationKeyOpts are the annotator settings that change its output.
type AnnotationKeyOpts struct {
	Annotator string `json:"annotator"`
	Model     string `json:"model,omitempty"`
	Settings  string `json:"settings,omitempty"`
}

// ArtifactKeyOpts are the render settings that change an artifact.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
	RankDir  string `json:"rankdir,omitempty"`
}

// DefaultKeyer hashes every input into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// AnnotationKey returns "annotation:<sha256>".
func (DefaultKeyer) AnnotationKey(text string, opts AnnotationKeyOpts) string {
	return hashKey("annotation", opts, Hash([]byte(text)))
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// Default lifetimes for cached values.
const (
	TTLAnnotation = 30 * 24 * time.Hour
	TTLArtifact   = 7 * 24 * time.Hour
)
