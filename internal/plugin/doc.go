// Package plugin hosts the three processing plugins: audio codec
// conversion, ASS/SSA subtitle extraction, and language-based stream
// reordering. Each plugin follows the same lifecycle: Evaluate decides
// whether a file needs work, Command assembles the ffmpeg invocation for
// that work, and Finish performs any bookkeeping after a successful run.
package plugin
