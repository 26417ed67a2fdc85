package testsupport

import "streamplan/internal/probe"

// VideoStream builds a video stream for probe fixtures.
func VideoStream(index int, codec string) probe.Stream {
	return probe.Stream{Index: index, CodecType: "video", CodecName: codec}
}

// AudioStream builds an audio stream; an empty language leaves the stream
// untagged.
func AudioStream(index int, codec string, channels int, language string) probe.Stream {
	stream := probe.Stream{Index: index, CodecType: "audio", CodecName: codec, Channels: channels}
	if language != "" {
		stream.Tags = map[string]string{"language": language}
	}
	return stream
}

// SubtitleStream builds a subtitle stream; an empty language leaves the
// stream untagged.
func SubtitleStream(index int, codec, language string) probe.Stream {
	stream := probe.Stream{Index: index, CodecType: "subtitle", CodecName: codec}
	if language != "" {
		stream.Tags = map[string]string{"language": language}
	}
	return stream
}
