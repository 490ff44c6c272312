// Package adapter demonstrates the Adapter pattern: one narrow capability,
// Play(format, file), is satisfied by delegating to lower-level players with
// incompatible interfaces, selected by a format tag.
//
// What
//
//   - Player handles "mp3" natively.
//   - "vlc" and "mp4" go through mediaAdapter, which normalizes the
//     vlcEngine.PlayVLC and mp4Codec.PlayMP4 signatures behind Play.
//   - Any other format is a silent no-op returning the empty string. That is
//     a deliberate trade-off illustration, not a contract: the adapter hides
//     which formats exist, so callers cannot tell "unsupported" from "quiet".
//
// Trade-offs
//
//	Pro: callers use one interface; the incompatible engines stay untouched.
//	Con: the tag dispatch re-centralizes knowledge the engines had kept to
//	     themselves; silent fallthrough swallows typos.
//
// Usage
//
//	p := adapter.NewPlayer()
//	p.Play("mp3", "song.mp3")
//	p.Play("vlc", "movie.vlc") // delegated through the adapter
package adapter
