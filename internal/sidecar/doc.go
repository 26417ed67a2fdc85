// Package sidecar persists per-directory processing markers. Each media
// directory gets a single hidden TOML file recording which files a plugin has
// already handled, so repeat library scans skip work that is done. A missing
// or unreadable marker file is treated as "nothing processed yet".
package sidecar
