package adapter

import (
	"fmt"
	"io"
)

// Format tags the Player understands.
const (
	FormatMP3 = "mp3"
	FormatVLC = "vlc"
	FormatMP4 = "mp4"
)

// vlcEngine is one incompatible lower-level player.
type vlcEngine struct{}

func (vlcEngine) PlayVLC(file string) string {
	return "vlc engine rendering " + file
}

// mp4Codec is another, with yet another signature style.
type mp4Codec struct{}

func (mp4Codec) PlayMP4(file string) string {
	return "mp4 codec decoding " + file
}

// mediaAdapter normalizes the incompatible engine interfaces behind the
// Player's own Play shape.
type mediaAdapter struct {
	vlc vlcEngine
	mp4 mp4Codec
}

func (a mediaAdapter) Play(format, file string) string {
	switch format {
	case FormatVLC:
		return a.vlc.PlayVLC(file)
	case FormatMP4:
		return a.mp4.PlayMP4(file)
	default:
		return ""
	}
}

// Player exposes the one narrow capability: Play(format, file).
type Player struct {
	adapter mediaAdapter
}

// NewPlayer returns a Player with its adapter wired in.
func NewPlayer() *Player { return &Player{} }

// Play renders file according to format. "mp3" is handled natively, "vlc"
// and "mp4" are delegated through the adapter, and anything else is a silent
// no-op returning the empty string.
func (p *Player) Play(format, file string) string {
	switch format {
	case FormatMP3:
		return "playing mp3 file: " + file
	case FormatVLC, FormatMP4:
		return p.adapter.Play(format, file)
	default:
		return ""
	}
}

// Demo writes the unit's usage transcript. The final "avi" request produces
// no line at all: the unsupported format is a silent no-op.
func Demo(w io.Writer) {
	p := NewPlayer()

	requests := []struct{ format, file string }{
		{FormatMP3, "song.mp3"},
		{FormatVLC, "movie.vlc"},
		{FormatMP4, "clip.mp4"},
		{"avi", "old.avi"},
	}
	for _, r := range requests {
		if out := p.Play(r.format, r.file); out != "" {
			fmt.Fprintln(w, out)
		}
	}
}
