package plan

import "streamplan/internal/probe"

// Bucket identifies the ordered group an argument fragment belongs to.
// Buckets are concatenated in a policy-defined order to form the final plan;
// relative order within a bucket is always stream encounter order.
type Bucket int

const (
	// BucketDefault collects fragments for policies without reordering.
	BucketDefault Bucket = iota
	// BucketPre collects streams of other types seen before the first match.
	BucketPre
	// BucketMatched collects streams of the type of interest matching the search.
	BucketMatched
	// BucketUnmatched collects streams of the type of interest that did not match.
	BucketUnmatched
	// BucketPost collects streams of other types seen after the first match.
	BucketPost
)

// Entry records one stream's classification outcome.
type Entry struct {
	Stream    probe.Stream
	Position  int // type-scoped index
	Mapping   []string
	Encoding  []string
	Processed bool
}

// Buckets accumulates entries per bucket. A fresh value is created for every
// classification run; it is never shared across runs.
type Buckets struct {
	entries map[Bucket][]Entry
}

// NewBuckets returns an empty accumulator.
func NewBuckets() *Buckets {
	return &Buckets{entries: make(map[Bucket][]Entry)}
}

// Append records an entry in encounter order.
func (b *Buckets) Append(bucket Bucket, entry Entry) {
	b.entries[bucket] = append(b.entries[bucket], entry)
}

// Entries returns the entries recorded for a bucket, in encounter order.
func (b *Buckets) Entries(bucket Bucket) []Entry {
	return b.entries[bucket]
}

// Mapping concatenates the mapping tokens of the given buckets in order.
func (b *Buckets) Mapping(order ...Bucket) []string {
	var tokens []string
	for _, bucket := range order {
		for _, entry := range b.entries[bucket] {
			tokens = append(tokens, entry.Mapping...)
		}
	}
	return tokens
}

// Encoding concatenates the encoding tokens of the given buckets in order.
func (b *Buckets) Encoding(order ...Bucket) []string {
	var tokens []string
	for _, bucket := range order {
		for _, entry := range b.entries[bucket] {
			tokens = append(tokens, entry.Encoding...)
		}
	}
	return tokens
}

// AnyProcessed reports whether any recorded entry needed processing.
func (b *Buckets) AnyProcessed() bool {
	for _, entries := range b.entries {
		for _, entry := range entries {
			if entry.Processed {
				return true
			}
		}
	}
	return false
}
