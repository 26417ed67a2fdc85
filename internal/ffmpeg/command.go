package ffmpeg

import (
	"strconv"

	"streamplan/internal/services"
)

// Output pairs a stream selection with a destination path, used for the
// per-subtitle extraction outputs appended after the primary output.
type Output struct {
	Mapping []string
	Path    string
}

// Command collects the sections of an ffmpeg invocation in the order the
// transcoder expects them. Zero values are usable; Args fails only when no
// input file has been set.
type Command struct {
	Binary   string
	Generic  []string
	Input    string
	Main     []string
	Advanced []string
	Mapping  []string
	Encoding []string
	Output   string
	// Extra holds additional outputs appended after the primary output.
	Extra []Output
}

// New returns a command with the default generic options.
func New(binary string) *Command {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Command{
		Binary:  binary,
		Generic: []string{"-hide_banner", "-loglevel", "info"},
	}
}

// WithMaxMuxingQueueSize appends the input packet buffer option when size is
// positive.
func (c *Command) WithMaxMuxingQueueSize(size int) *Command {
	if size > 0 {
		c.Advanced = append(c.Advanced, "-max_muxing_queue_size", strconv.Itoa(size))
	}
	return c
}

// AppendOutput registers an extra output after the primary one.
func (c *Command) AppendOutput(mapping []string, path string) *Command {
	c.Extra = append(c.Extra, Output{Mapping: mapping, Path: path})
	return c
}

// Args flattens the command into the final argument list, excluding the
// binary name. The input file is a hard precondition: assembling a command
// without one is a configuration error, not an empty plan.
func (c *Command) Args() ([]string, error) {
	if c.Input == "" {
		return nil, services.Wrap(services.ErrConfiguration, "ffmpeg", "args", "input file has not been set", nil)
	}

	args := make([]string, 0, 16)
	args = append(args, c.Generic...)
	args = append(args, "-i", c.Input)
	args = append(args, c.Main...)
	args = append(args, c.Advanced...)
	args = append(args, c.Mapping...)
	args = append(args, c.Encoding...)
	if c.Output != "" {
		args = append(args, "-y", c.Output)
	}
	for _, extra := range c.Extra {
		args = append(args, extra.Mapping...)
		args = append(args, "-y", extra.Path)
	}
	return args, nil
}
