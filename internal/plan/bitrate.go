package plan

// maxAC3Channels is the channel ceiling the AC3 encoder accepts.
const maxAC3Channels = 6

// Bitrate maps a source channel count to the target AC3 bitrate in kbps.
// A missing or non-positive channel count assumes the highest bitrate.
func Bitrate(channels int) string {
	if channels <= 0 {
		return "640"
	}
	if channels > maxAC3Channels {
		channels = maxAC3Channels
	}
	switch {
	case channels <= 2:
		return "224"
	case channels <= 4:
		return "448"
	default:
		return "640"
	}
}

// ClampChannels limits a channel count to what the AC3 encoder accepts.
func ClampChannels(channels int) int {
	if channels > maxAC3Channels {
		return maxAC3Channels
	}
	return channels
}
