// Package logging constructs slog loggers for the CLI and plugin runners.
//
// The plan core never logs; loggers built here are injected at the plugin
// layer so each classification run carries its own logger. NewNop returns a
// discard logger for tests and for callers that opt out of logging.
package logging
