package language

import "testing"

func TestCodeForName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"English", "eng"},
		{"english", "eng"},
		{"FRENCH", "fra"},
		{"Japanese", "jpn"},
		{"Chinese", "zho"},
		{"Mandarin", "zho"},
		{"Castilian", "spa"},
		{"Klingon", ""},
		{"", ""},
		{"  German  ", "deu"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CodeForName(tt.input); got != tt.expected {
				t.Errorf("CodeForName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToISO3(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "eng"},
		{"es", "spa"},
		{"fre", "fra"},
		{"chi", "zho"},
		{"eng", "eng"},
		{"xyz", "xyz"}, // unknown 3-letter passes through
		{"xy", "und"},  // unknown 2-letter becomes undefined
		{"", "und"},
		{"english", "eng"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToISO3(tt.input); got != tt.expected {
				t.Errorf("ToISO3(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"eng", "English"},
		{"fra", "French"},
		{"fre", "French"},
		{"", "Unknown"},
		{"  ", "Unknown"},
		{"qqq", "QQQ"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.input); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFromTags(t *testing.T) {
	tests := []struct {
		name     string
		tags     map[string]string
		expected string
	}{
		{"lowercase key", map[string]string{"language": "ENG"}, "eng"},
		{"uppercase key", map[string]string{"LANGUAGE": "jpn"}, "jpn"},
		{"ietf key", map[string]string{"language_ietf": "en-US"}, "en-us"},
		{"empty value skipped", map[string]string{"language": "  ", "lang": "fra"}, "fra"},
		{"no tags", nil, ""},
		{"unrelated tags", map[string]string{"title": "Commentary"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTags(tt.tags); got != tt.expected {
				t.Errorf("FromTags = %q, want %q", got, tt.expected)
			}
		})
	}
}
