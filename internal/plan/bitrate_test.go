package plan

import "testing"

func TestBitrate(t *testing.T) {
	tests := []struct {
		channels int
		expected string
	}{
		{0, "640"},  // unknown channel count assumes the highest bitrate
		{-1, "640"}, // malformed metadata treated as unknown
		{1, "224"},
		{2, "224"},
		{3, "448"},
		{4, "448"},
		{5, "640"},
		{6, "640"},
		{8, "640"},
	}
	for _, tt := range tests {
		if got := Bitrate(tt.channels); got != tt.expected {
			t.Errorf("Bitrate(%d) = %s, want %s", tt.channels, got, tt.expected)
		}
	}
}

func TestClampChannels(t *testing.T) {
	tests := []struct {
		channels int
		expected int
	}{
		{2, 2},
		{6, 6},
		{7, 6},
		{8, 6},
	}
	for _, tt := range tests {
		if got := ClampChannels(tt.channels); got != tt.expected {
			t.Errorf("ClampChannels(%d) = %d, want %d", tt.channels, got, tt.expected)
		}
	}
}
