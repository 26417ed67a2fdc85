// Package config loads, validates, and defaults streamplan configuration.
//
// Configuration sections by subsystem:
//   - Tools: ffmpeg/ffprobe binary locations
//   - Convert: audio codec conversion policy (target codec, selection mode)
//   - Extract: ASS/SSA subtitle extraction policy (language filter, naming)
//   - Reorder: audio reorder policy (search string)
//   - Radarr/Sonarr: original-language lookup services for the reorder plugin
//   - History: sqlite run-history store
//   - Logging: log format and level
//
// Load resolves the config file path, applies repository defaults for any
// omitted values, and validates the result before returning it.
package config
