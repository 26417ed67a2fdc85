// Package ffmpeg assembles and executes ffmpeg command lines from mapping
// plans.
//
// Command collects the option sections in the order ffmpeg expects (generic
// options, input, main options, advanced options, stream mapping and
// encoding tokens, output) and Args flattens them, failing when the input
// file has not been set. Run executes an assembled command; it is the only
// place in the repository that spawns the transcoder.
package ffmpeg
