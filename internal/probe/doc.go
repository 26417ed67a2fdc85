// Package probe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual stream properties (codec, channels, tags)
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns parsed Result
//
// Helper methods expose the per-type stream numbering scheme ffmpeg uses
// for stream selectors (0:a:1 is the second audio stream, not the second
// stream overall).
package probe
