package config

const (
	defaultFFmpegBinary       = "ffmpeg"
	defaultFFprobeBinary      = "ffprobe"
	defaultTargetCodec        = "ac3"
	defaultEncoder            = "ac3"
	defaultSelectionMode      = SelectionModeAll
	defaultMaxMuxingQueueSize = 2048
	defaultSearchString       = "eng"
	defaultRadarrURL          = "http://localhost:7878"
	defaultSonarrURL          = "http://localhost:8989"
	defaultLookupTimeout      = 10
	defaultHistoryPath        = "~/.local/share/streamplan/history.db"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Selection modes accepted by the convert plugin.
const (
	SelectionModeAll      = "all"
	SelectionModeSelected = "selected"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Convert: Convert{
			TargetCodec:        defaultTargetCodec,
			Encoder:            defaultEncoder,
			SelectionMode:      defaultSelectionMode,
			SelectedCodecs:     []string{"dts", "dca", "truehd", "mp3", "mp2", "aac"},
			MaxMuxingQueueSize: defaultMaxMuxingQueueSize,
		},
		Extract: Extract{
			IncludeTitleInFileName: true,
		},
		Reorder: Reorder{
			SearchString: defaultSearchString,
		},
		Radarr: Radarr{
			URL:            defaultRadarrURL,
			TimeoutSeconds: defaultLookupTimeout,
		},
		Sonarr: Sonarr{
			URL:            defaultSonarrURL,
			TimeoutSeconds: defaultLookupTimeout,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
