package plan

// Plan is the outcome of one classification run. It is constructed once and
// never mutated after being returned.
type Plan struct {
	// NeedsProcessing reports whether the file requires any work at all.
	NeedsProcessing bool
	// StreamMapping holds the ordered -map (and, for the reorder plugin,
	// -disposition) tokens for the transcoder command line.
	StreamMapping []string
	// StreamEncoding holds the ordered per-stream codec tokens.
	StreamEncoding []string
	// Subtitles lists extraction targets produced by the extract plugin;
	// nil for the other plugins.
	Subtitles []SubtitleTarget
}

// SubtitleTarget describes one subtitle stream to extract into its own file.
type SubtitleTarget struct {
	// Position is the stream's type-scoped index (0:s:<Position>).
	Position int
	// Language is the stream's language tag; empty when untagged.
	Language string
	// Tag is the suffix appended to the output file stem, e.g. ".eng.Signs".
	Tag string
	// Mapping selects the stream for the extraction output.
	Mapping []string
}
