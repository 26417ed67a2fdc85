package plan

import (
	"errors"
	"testing"

	"streamplan/internal/probe"
	"streamplan/internal/services"
)

func TestBuildRequiresClassifier(t *testing.T) {
	_, err := Build(nil, nil)
	if err == nil {
		t.Fatal("expected error for nil classifier")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestBuildCountsPositionsPerType(t *testing.T) {
	streams := []probe.Stream{
		{Index: 0, CodecType: "video", CodecName: "h264"},
		{Index: 1, CodecType: "audio", CodecName: "dts", Channels: 2},
		{Index: 2, CodecType: "subtitle", CodecName: "subrip"},
		{Index: 3, CodecType: "audio", CodecName: "dts", Channels: 2},
	}
	result, err := Build(streams, NewConvert(ConvertPolicy{TargetCodec: "ac3", Encoder: "ac3"}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// The second dts stream is the second audio stream, so its selector and
	// encoder tokens must use a:1 even though its absolute index is 3.
	assertContainsSequence(t, result.StreamMapping, "-map", "0:a:1")
	assertContainsSequence(t, result.StreamEncoding, "-c:a:1", "ac3")
}

func TestBuildSkipsUnknownStreamTypes(t *testing.T) {
	streams := []probe.Stream{
		{Index: 0, CodecType: "widget", CodecName: "mystery"},
		{Index: 1, CodecType: "audio", CodecName: "ac3", Channels: 2},
	}
	result, err := Build(streams, NewConvert(ConvertPolicy{TargetCodec: "ac3", Encoder: "ac3"}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(result.StreamMapping) != 2 {
		t.Fatalf("expected only the audio stream mapped, got %v", result.StreamMapping)
	}
}

func assertContainsSequence(t *testing.T, tokens []string, sequence ...string) {
	t.Helper()
	for i := 0; i+len(sequence) <= len(tokens); i++ {
		match := true
		for j, want := range sequence {
			if tokens[i+j] != want {
				match = false
				break
			}
		}
		if match {
			return
		}
	}
	t.Fatalf("sequence %v not found in %v", sequence, tokens)
}
