package plan

import (
	"strings"

	"streamplan/internal/probe"
)

// ReorderPolicy configures the language-reorder classifier.
type ReorderPolicy struct {
	// SearchString is the language code (or title fragment) whose streams
	// move to the front of the stream type of interest.
	SearchString string
	// StreamType is the codec type being reordered; defaults to audio.
	StreamType string
}

// ReorderClassifier buckets every stream of the file relative to the first
// stream of interest matching the search string. The final plan keeps
// streams of other types in place and moves matched streams ahead of
// unmatched ones.
type ReorderClassifier struct {
	search     string
	streamType string
	// found flips once a stream of interest matches; it splits streams of
	// other types into the pre and post buckets.
	found bool
}

// NewReorder builds a classifier for one classification run.
func NewReorder(policy ReorderPolicy) *ReorderClassifier {
	streamType := strings.ToLower(strings.TrimSpace(policy.StreamType))
	if streamType == "" {
		streamType = probe.TypeAudio
	}
	return &ReorderClassifier{
		search:     strings.ToLower(strings.TrimSpace(policy.SearchString)),
		streamType: streamType,
	}
}

// Classify implements Classifier. Every stream participates in bucketing;
// the copy-versus-skip decision is structural, not per stream.
func (c *ReorderClassifier) Classify(stream probe.Stream, position int) Verdict {
	letter := probe.TypeLetter(stream.CodecType)
	mapping := []string{"-map", Selector(letter, position)}

	if stream.Type() != c.streamType {
		bucket := BucketPre
		if c.found {
			bucket = BucketPost
		}
		return Verdict{NeedsProcessing: true, Bucket: bucket, Mapping: mapping}
	}

	if !c.matches(stream) {
		return Verdict{NeedsProcessing: true, Bucket: BucketUnmatched, Mapping: mapping}
	}

	if !c.found {
		// The first matched stream becomes the new default for its type.
		mapping = append(mapping, "-disposition:"+letter+":0", "default")
	}
	c.found = true
	return Verdict{NeedsProcessing: true, Bucket: BucketMatched, Mapping: mapping}
}

// matches tests the search string as a case-insensitive substring of the
// stream's language and title tags. Streams without either tag never match.
func (c *ReorderClassifier) matches(stream probe.Stream) bool {
	if len(stream.Tags) == 0 {
		return false
	}
	tagged := false
	for key := range stream.Tags {
		switch strings.ToLower(key) {
		case "language", "title":
			tagged = true
		}
	}
	if !tagged {
		return false
	}
	if strings.Contains(stream.Language(), c.search) {
		return true
	}
	return strings.Contains(strings.ToLower(stream.Title()), c.search)
}

// AssemblePlan implements Classifier. The plan clears prior default
// disposition flags globally before the matched bucket's override applies.
func (c *ReorderClassifier) AssemblePlan(buckets *Buckets) Plan {
	mapping := []string{"-c", "copy", "-disposition:" + probe.TypeLetter(c.streamType), "-default"}
	mapping = append(mapping, buckets.Mapping(BucketPre, BucketMatched, BucketUnmatched, BucketPost)...)
	return Plan{
		NeedsProcessing: reorderNeeded(buckets),
		StreamMapping:   mapping,
	}
}

// reorderNeeded reports whether concatenating matched+unmatched changes any
// stream's position relative to its original type-scoped index. Streams in
// the pre and post buckets do not participate in the position count.
func reorderNeeded(buckets *Buckets) bool {
	matched := buckets.Entries(BucketMatched)
	unmatched := buckets.Entries(BucketUnmatched)
	if len(matched) == 0 || len(unmatched) == 0 {
		return false
	}
	counter := 0
	for _, entry := range matched {
		if entry.Position != counter {
			return true
		}
		counter++
	}
	for _, entry := range unmatched {
		if entry.Position != counter {
			return true
		}
		counter++
	}
	return false
}
