package ffmpeg

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"streamplan/internal/services"
)

// Run executes an assembled command, capturing stderr for failure reporting.
func Run(ctx context.Context, command *Command) error {
	args, err := command.Args()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, command.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return services.Wrap(services.ErrExternalTool, "ffmpeg", "run", lastLine(stderr.String()), err)
	}
	return nil
}

// lastLine returns the trailing non-empty stderr line, which is where ffmpeg
// reports its failure reason.
func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return "ffmpeg failed"
}
