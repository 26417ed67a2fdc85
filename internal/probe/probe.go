package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"streamplan/internal/language"
)

// Stream type names as reported by ffprobe.
const (
	TypeVideo      = "video"
	TypeAudio      = "audio"
	TypeSubtitle   = "subtitle"
	TypeData       = "data"
	TypeAttachment = "attachment"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index     int               `json:"index"`
	CodecName string            `json:"codec_name"`
	CodecType string            `json:"codec_type"`
	Channels  int               `json:"channels"`
	Tags      map[string]string `json:"tags"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	NBStreams  int    `json:"nb_streams"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	FormatName string `json:"format_name"`
}

// Codec returns the lowercase-normalized codec name for comparisons.
func (s Stream) Codec() string {
	return strings.ToLower(strings.TrimSpace(s.CodecName))
}

// Type returns the lowercase-normalized codec type.
func (s Stream) Type() string {
	return strings.ToLower(strings.TrimSpace(s.CodecType))
}

// Tag returns the named tag value, or "" when tags are absent.
func (s Stream) Tag(key string) string {
	if len(s.Tags) == 0 {
		return ""
	}
	return s.Tags[key]
}

// Language returns the stream's normalized language tag, checking the
// common tag key spellings muxers produce.
func (s Stream) Language() string {
	return language.FromTags(s.Tags)
}

// Title returns the stream's title tag verbatim.
func (s Stream) Title() string {
	return s.Tag("title")
}

// TypeLetter maps a codec type to the single-letter form used in ffmpeg
// stream selectors. Returns "" for unrecognized types.
func TypeLetter(codecType string) string {
	switch strings.ToLower(strings.TrimSpace(codecType)) {
	case TypeVideo:
		return "v"
	case TypeAudio:
		return "a"
	case TypeSubtitle:
		return "s"
	case TypeData:
		return "d"
	case TypeAttachment:
		return "t"
	}
	return ""
}

// Inspect executes ffprobe against the provided path and decodes the JSON response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return Parse(output)
}

// Parse decodes a raw ffprobe JSON document.
func Parse(payload []byte) (Result, error) {
	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// StreamCount returns the number of streams of the given codec type.
func (r Result) StreamCount(codecType string) int {
	count := 0
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, codecType) {
			count++
		}
	}
	return count
}

// TypeIndex returns the stream's position counting only streams of its own
// codec type, matching the numbering ffmpeg expects for per-type selectors.
// Returns -1 when the stream is not part of the result.
func (r Result) TypeIndex(target Stream) int {
	position := 0
	for _, stream := range r.Streams {
		if stream.Index == target.Index {
			if stream.Type() == target.Type() {
				return position
			}
			return -1
		}
		if stream.Type() == target.Type() {
			position++
		}
	}
	return -1
}
