package plan

import "streamplan/internal/probe"

// Verdict is the outcome of classifying a single stream.
type Verdict struct {
	// NeedsProcessing reports whether this stream requires work. When false
	// and no mapping fragment is supplied, the builder emits a passthrough
	// copy mapping for the stream.
	NeedsProcessing bool
	// Bucket assigns the fragment to an ordered group.
	Bucket Bucket
	// Mapping and Encoding are the argument fragments for this stream.
	Mapping  []string
	Encoding []string
}

// Classifier is the per-plugin policy driven by Build. Classify is called
// once per stream, in probe order, for every stream regardless of type;
// AssemblePlan turns the filled buckets into the final Plan.
type Classifier interface {
	Classify(stream probe.Stream, position int) Verdict
	AssemblePlan(buckets *Buckets) Plan
}
