package plan

import (
	"fmt"
	"strconv"
	"strings"

	"streamplan/internal/probe"
)

// selectableCodecs enumerates the audio codecs offered in "selected" mode.
// The "other" sentinel in a configured allow-list matches any codec absent
// from this set.
var selectableCodecs = map[string]struct{}{
	"dts":       {},
	"dca":       {},
	"truehd":    {},
	"eac3":      {},
	"mp3":       {},
	"mp2":       {},
	"aac":       {},
	"opus":      {},
	"flac":      {},
	"vorbis":    {},
	"pcm_s16le": {},
}

// OtherCodecs is the allow-list sentinel matching non-enumerated codecs.
const OtherCodecs = "other"

// ConvertPolicy configures the codec-conversion classifier.
type ConvertPolicy struct {
	// TargetCodec is the codec streams should end up in (lowercase).
	TargetCodec string
	// Encoder is the ffmpeg encoder producing TargetCodec.
	Encoder string
	// SelectedOnly restricts conversion to the codecs in SelectedCodecs.
	SelectedOnly bool
	// SelectedCodecs is the lowercase allow-list for SelectedOnly mode.
	SelectedCodecs []string
	// Advanced replaces the automatic channel/bitrate logic with the
	// verbatim CustomOptions tokens.
	Advanced bool
	// CustomOptions is the user-supplied option string for advanced mode.
	CustomOptions string
}

// ConvertClassifier marks audio streams outside the target codec for
// re-encoding and passes everything else through untouched.
type ConvertClassifier struct {
	policy   ConvertPolicy
	selected map[string]struct{}
	custom   []string
}

// NewConvert builds a classifier for one classification run.
func NewConvert(policy ConvertPolicy) *ConvertClassifier {
	selected := make(map[string]struct{}, len(policy.SelectedCodecs))
	for _, codec := range policy.SelectedCodecs {
		codec = strings.ToLower(strings.TrimSpace(codec))
		if codec != "" {
			selected[codec] = struct{}{}
		}
	}
	return &ConvertClassifier{
		policy:   policy,
		selected: selected,
		custom:   strings.Fields(policy.CustomOptions),
	}
}

// Classify implements Classifier.
func (c *ConvertClassifier) Classify(stream probe.Stream, position int) Verdict {
	if stream.Type() != probe.TypeAudio {
		return Verdict{}
	}
	codec := stream.Codec()
	if codec == c.policy.TargetCodec {
		// Already in the required codec, regardless of selection mode.
		return Verdict{}
	}
	if c.policy.SelectedOnly && !c.codecSelected(codec) {
		return Verdict{}
	}

	encoding := []string{fmt.Sprintf("-c:a:%d", position), c.policy.Encoder}
	if c.policy.Advanced {
		encoding = append(encoding, c.custom...)
	} else if stream.Channels > 0 {
		channels := ClampChannels(stream.Channels)
		encoding = append(encoding,
			fmt.Sprintf("-ac:a:%d", position), strconv.Itoa(channels),
			fmt.Sprintf("-b:a:%d", position), Bitrate(stream.Channels)+"k",
		)
	}

	return Verdict{
		NeedsProcessing: true,
		Bucket:          BucketDefault,
		Mapping:         []string{"-map", Selector("a", position)},
		Encoding:        encoding,
	}
}

func (c *ConvertClassifier) codecSelected(codec string) bool {
	if _, ok := c.selected[codec]; ok {
		return true
	}
	if _, other := c.selected[OtherCodecs]; other {
		if _, known := selectableCodecs[codec]; !known {
			return true
		}
	}
	return false
}

// AssemblePlan implements Classifier.
func (c *ConvertClassifier) AssemblePlan(buckets *Buckets) Plan {
	return Plan{
		NeedsProcessing: buckets.AnyProcessed(),
		StreamMapping:   buckets.Mapping(BucketDefault),
		StreamEncoding:  buckets.Encoding(BucketDefault),
	}
}
