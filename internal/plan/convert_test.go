package plan

import (
	"reflect"
	"testing"

	"streamplan/internal/probe"
)

func ac3Policy() ConvertPolicy {
	return ConvertPolicy{TargetCodec: "ac3", Encoder: "ac3"}
}

func TestConvertSkipsTargetCodec(t *testing.T) {
	policies := []ConvertPolicy{
		ac3Policy(),
		{TargetCodec: "ac3", Encoder: "ac3", SelectedOnly: true, SelectedCodecs: []string{"ac3", "dts"}},
	}
	for _, policy := range policies {
		classifier := NewConvert(policy)
		verdict := classifier.Classify(probe.Stream{CodecType: "audio", CodecName: "AC3", Channels: 6}, 0)
		if verdict.NeedsProcessing {
			t.Fatalf("stream already in target codec flagged for processing (policy %+v)", policy)
		}
	}
}

func TestConvertIgnoresNonAudioStreams(t *testing.T) {
	classifier := NewConvert(ac3Policy())
	verdict := classifier.Classify(probe.Stream{CodecType: "video", CodecName: "h264"}, 0)
	if verdict.NeedsProcessing {
		t.Fatal("video stream flagged for audio conversion")
	}
}

func TestConvertEmitsChannelAndBitrateTokens(t *testing.T) {
	classifier := NewConvert(ac3Policy())
	verdict := classifier.Classify(probe.Stream{CodecType: "audio", CodecName: "dts", Channels: 6}, 1)
	if !verdict.NeedsProcessing {
		t.Fatal("expected dts stream to need processing")
	}
	wantMapping := []string{"-map", "0:a:1"}
	if !reflect.DeepEqual(verdict.Mapping, wantMapping) {
		t.Fatalf("mapping = %v, want %v", verdict.Mapping, wantMapping)
	}
	wantEncoding := []string{"-c:a:1", "ac3", "-ac:a:1", "6", "-b:a:1", "640k"}
	if !reflect.DeepEqual(verdict.Encoding, wantEncoding) {
		t.Fatalf("encoding = %v, want %v", verdict.Encoding, wantEncoding)
	}
}

func TestConvertClampsChannels(t *testing.T) {
	classifier := NewConvert(ac3Policy())
	verdict := classifier.Classify(probe.Stream{CodecType: "audio", CodecName: "truehd", Channels: 8}, 0)
	wantEncoding := []string{"-c:a:0", "ac3", "-ac:a:0", "6", "-b:a:0", "640k"}
	if !reflect.DeepEqual(verdict.Encoding, wantEncoding) {
		t.Fatalf("encoding = %v, want %v", verdict.Encoding, wantEncoding)
	}
}

func TestConvertOmitsBitrateWhenChannelsUnknown(t *testing.T) {
	classifier := NewConvert(ac3Policy())
	verdict := classifier.Classify(probe.Stream{CodecType: "audio", CodecName: "aac"}, 0)
	wantEncoding := []string{"-c:a:0", "ac3"}
	if !reflect.DeepEqual(verdict.Encoding, wantEncoding) {
		t.Fatalf("encoding = %v, want %v", verdict.Encoding, wantEncoding)
	}
}

func TestConvertAdvancedModePassesOptionsVerbatim(t *testing.T) {
	policy := ac3Policy()
	policy.Advanced = true
	policy.CustomOptions = "-b:a 640k -ar 48000"
	classifier := NewConvert(policy)
	verdict := classifier.Classify(probe.Stream{CodecType: "audio", CodecName: "dts", Channels: 8}, 0)
	wantEncoding := []string{"-c:a:0", "ac3", "-b:a", "640k", "-ar", "48000"}
	if !reflect.DeepEqual(verdict.Encoding, wantEncoding) {
		t.Fatalf("encoding = %v, want %v", verdict.Encoding, wantEncoding)
	}
}

func TestConvertSelectedMode(t *testing.T) {
	policy := ac3Policy()
	policy.SelectedOnly = true
	policy.SelectedCodecs = []string{"dts", "truehd"}
	classifier := NewConvert(policy)

	if v := classifier.Classify(probe.Stream{CodecType: "audio", CodecName: "dts"}, 0); !v.NeedsProcessing {
		t.Fatal("expected selected codec to need processing")
	}
	if v := classifier.Classify(probe.Stream{CodecType: "audio", CodecName: "aac"}, 1); v.NeedsProcessing {
		t.Fatal("expected unselected codec to pass through")
	}
}

func TestConvertOtherSentinelMatchesUnenumeratedCodecs(t *testing.T) {
	policy := ac3Policy()
	policy.SelectedOnly = true
	policy.SelectedCodecs = []string{"dts", OtherCodecs}
	classifier := NewConvert(policy)

	// wmav2 is not in the enumerable codec set, so "other" claims it.
	if v := classifier.Classify(probe.Stream{CodecType: "audio", CodecName: "wmav2"}, 0); !v.NeedsProcessing {
		t.Fatal("expected unenumerated codec to match the other sentinel")
	}
	// aac is enumerable and not selected, so it stays untouched.
	if v := classifier.Classify(probe.Stream{CodecType: "audio", CodecName: "aac"}, 1); v.NeedsProcessing {
		t.Fatal("expected enumerable unselected codec to pass through")
	}
}

func TestConvertPlanCopiesUntouchedStreams(t *testing.T) {
	streams := []probe.Stream{
		{Index: 0, CodecType: "video", CodecName: "h264"},
		{Index: 1, CodecType: "audio", CodecName: "ac3", Channels: 6},
		{Index: 2, CodecType: "audio", CodecName: "dts", Channels: 6},
		{Index: 3, CodecType: "subtitle", CodecName: "subrip"},
	}
	result, err := Build(streams, NewConvert(ac3Policy()))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !result.NeedsProcessing {
		t.Fatal("expected processing verdict")
	}
	wantMapping := []string{
		"-map", "0:v:0",
		"-map", "0:a:0",
		"-map", "0:a:1",
		"-map", "0:s:0",
	}
	if !reflect.DeepEqual(result.StreamMapping, wantMapping) {
		t.Fatalf("mapping = %v, want %v", result.StreamMapping, wantMapping)
	}
	wantEncoding := []string{
		"-c:v:0", "copy",
		"-c:a:0", "copy",
		"-c:a:1", "ac3", "-ac:a:1", "6", "-b:a:1", "640k",
		"-c:s:0", "copy",
	}
	if !reflect.DeepEqual(result.StreamEncoding, wantEncoding) {
		t.Fatalf("encoding = %v, want %v", result.StreamEncoding, wantEncoding)
	}
}

func TestConvertPlanNoProcessingWhenAllTarget(t *testing.T) {
	streams := []probe.Stream{
		{Index: 0, CodecType: "video", CodecName: "h264"},
		{Index: 1, CodecType: "audio", CodecName: "ac3", Channels: 6},
	}
	result, err := Build(streams, NewConvert(ac3Policy()))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result.NeedsProcessing {
		t.Fatal("expected no processing needed")
	}
}
