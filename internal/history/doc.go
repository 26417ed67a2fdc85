// Package history records every planning run in a SQLite database so
// operators can audit which files were inspected, what each plugin decided,
// and the exact ffmpeg arguments that were produced.
package history
