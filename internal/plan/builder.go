package plan

import (
	"fmt"

	"streamplan/internal/probe"
	"streamplan/internal/services"
)

// Build drives the classifier over the stream list in ascending probe order
// and assembles the final Plan. It maintains one running position counter per
// codec type, matching ffmpeg's per-type stream selector numbering. Streams
// the classifier leaves untouched are mapped through with a copy fragment.
//
// Build is side-effect-free beyond the returned Plan: it never invokes
// external services or mutates the classifier's policy.
func Build(streams []probe.Stream, classifier Classifier) (Plan, error) {
	if classifier == nil {
		return Plan{}, services.Wrap(services.ErrConfiguration, "plan", "build", "no classifier supplied", nil)
	}

	counters := make(map[string]int)
	buckets := NewBuckets()

	for _, stream := range streams {
		letter := probe.TypeLetter(stream.CodecType)
		if letter == "" {
			// Unknown stream type; nothing we could address it with.
			continue
		}
		position := counters[stream.Type()]
		counters[stream.Type()]++

		verdict := classifier.Classify(stream, position)
		entry := Entry{
			Stream:    stream,
			Position:  position,
			Mapping:   verdict.Mapping,
			Encoding:  verdict.Encoding,
			Processed: verdict.NeedsProcessing,
		}
		if !verdict.NeedsProcessing && len(verdict.Mapping) == 0 {
			entry.Mapping = []string{"-map", Selector(letter, position)}
			entry.Encoding = []string{fmt.Sprintf("-c:%s:%d", letter, position), "copy"}
		}
		buckets.Append(verdict.Bucket, entry)
	}

	return classifier.AssemblePlan(buckets), nil
}

// Selector formats an ffmpeg input stream selector, e.g. "0:a:1".
func Selector(typeLetter string, position int) string {
	return fmt.Sprintf("0:%s:%d", typeLetter, position)
}
