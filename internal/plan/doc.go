// Package plan implements the stream-mapping decision engine shared by the
// three plugins.
//
// Given a probed stream inventory and a per-plugin policy, the engine
// produces a Plan: a file-level "needs processing" verdict plus the ordered
// ffmpeg mapping and encoding tokens that route each stream from input to
// output.
//
// Key pieces:
//   - Classifier: per-plugin policy, called once per stream in probe order
//   - Buckets: ordered argument groups accumulated during classification
//   - Build: drives a classifier over the inventory and assembles the Plan
//   - Bitrate: channel-count to AC3 bitrate policy
//
// Classifiers carry per-run state (bucket flags, subtitle targets); construct
// a fresh one for every file. The engine never spawns processes, touches the
// filesystem, or logs.
package plan
