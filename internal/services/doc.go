// Package services defines shared utilities consumed by the plugin runners
// and external integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that tag failures for
//     consistent classification (configuration vs external tool vs transient).
//   - Context helpers that stamp run identifiers and plugin names for logging.
//
// Use these helpers when wiring new plugin logic so operational behaviour
// stays uniform across the three plugins.
package services
