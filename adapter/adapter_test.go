package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alestormoody/design-pattern/adapter"
)

// TestPlay_AllFormats verifies native handling, adapted delegation, and the
// silent no-op for unknown tags through the one Play entry point.
func TestPlay_AllFormats(t *testing.T) {
	p := adapter.NewPlayer()

	tests := []struct {
		format, file, want string
	}{
		{adapter.FormatMP3, "a.mp3", "playing mp3 file: a.mp3"},
		{adapter.FormatVLC, "b.vlc", "vlc engine rendering b.vlc"},
		{adapter.FormatMP4, "c.mp4", "mp4 codec decoding c.mp4"},
		{"avi", "d.avi", ""},
		{"", "e", ""},
	}
	for _, tc := range tests {
		t.Run("format="+tc.format, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Play(tc.format, tc.file))
		})
	}
}
