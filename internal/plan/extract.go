package plan

import (
	"fmt"
	"regexp"
	"strings"

	"streamplan/internal/probe"
)

// tagSanitizer rewrites characters that would break output file names.
var tagSanitizer = regexp.MustCompile(`[\s/\\]`)

// whitespace collapses embedded whitespace inside a language token.
var whitespace = regexp.MustCompile(`\s+`)

// ExtractPolicy configures the subtitle-extraction classifier.
type ExtractPolicy struct {
	// Languages is the raw comma-separated language filter; empty extracts
	// every ASS/SSA stream.
	Languages string
	// IncludeTitle appends the stream title tag to the output file name.
	IncludeTitle bool
}

// ExtractClassifier selects ASS/SSA subtitle streams for extraction into
// standalone files, recording a naming tag per selected stream.
type ExtractClassifier struct {
	policy  ExtractPolicy
	filter  []string
	targets []SubtitleTarget
}

// NewExtract builds a classifier for one classification run.
func NewExtract(policy ExtractPolicy) *ExtractClassifier {
	return &ExtractClassifier{
		policy: policy,
		filter: ParseLanguageFilter(policy.Languages),
	}
}

// ParseLanguageFilter splits a configured language string into a normalized
// filter list: comma-separated, trimmed, lowercased, embedded whitespace
// collapsed to hyphens, empties dropped.
func ParseLanguageFilter(raw string) []string {
	var filter []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		filter = append(filter, whitespace.ReplaceAllString(token, "-"))
	}
	return filter
}

// Classify implements Classifier.
func (c *ExtractClassifier) Classify(stream probe.Stream, position int) Verdict {
	if stream.Type() != probe.TypeSubtitle {
		return Verdict{}
	}
	codec := stream.Codec()
	if codec != "ass" && codec != "ssa" {
		return Verdict{}
	}
	if len(c.filter) > 0 && !c.languageSelected(stream.Language()) {
		return Verdict{}
	}

	mapping := []string{"-map", Selector("s", position)}
	c.targets = append(c.targets, SubtitleTarget{
		Position: position,
		Language: stream.Language(),
		Tag:      subtitleTag(stream, position, c.policy.IncludeTitle),
		Mapping:  mapping,
	})

	// Copy the stream to the primary output as well; extraction outputs are
	// appended separately by the host.
	return Verdict{
		NeedsProcessing: true,
		Bucket:          BucketDefault,
		Mapping:         mapping,
		Encoding:        []string{fmt.Sprintf("-c:s:%d", position), "copy"},
	}
}

func (c *ExtractClassifier) languageSelected(language string) bool {
	for _, candidate := range c.filter {
		if candidate == language {
			return true
		}
	}
	return false
}

// AssemblePlan implements Classifier.
func (c *ExtractClassifier) AssemblePlan(buckets *Buckets) Plan {
	return Plan{
		NeedsProcessing: buckets.AnyProcessed(),
		StreamMapping:   buckets.Mapping(BucketDefault),
		StreamEncoding:  buckets.Encoding(BucketDefault),
		Subtitles:       c.targets,
	}
}

// subtitleTag assembles the output file name suffix for a subtitle stream:
// the language tag, then the title when requested, falling back to the
// stream's type-scoped position when neither tag is present.
func subtitleTag(stream probe.Stream, position int, includeTitle bool) string {
	tag := ""
	if language := stream.Language(); language != "" {
		tag = tag + "." + language
	}
	if title := stream.Title(); title != "" && includeTitle {
		tag = tag + "." + title
	}
	if tag == "" {
		tag = fmt.Sprintf(".%d", position)
	}
	return tagSanitizer.ReplaceAllString(tag, "-")
}
