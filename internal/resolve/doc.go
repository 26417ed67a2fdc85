// Package resolve picks the language search code for the reorder plugin.
//
// The resolver tries the configured lookup services in order (Radarr for
// movies, then Sonarr for series), converting the returned human-readable
// language name to a 3-letter code. Any lookup failure is swallowed and the
// chain falls through to the configured search string, so callers always
// receive a usable value.
package resolve
