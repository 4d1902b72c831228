// Package engine implements the rules of a falling-block puzzle game.
//
// A Game owns the falling piece, the queued next piece, the settled stack and
// the score. Callers feed it discrete events through Run and read back an
// immutable Snapshot through DisplayState; nothing else is exported by
// reference. Session wraps a Game with a mutex and an optional auto-drop
// driver so that an input handler and a timer can share one game safely.
//
// Rendering, input mapping and timing policy live outside this package.
package engine

//go:generate go tool stringer -type=Kind -trimprefix=Kind
//go:generate go tool stringer -type=Direction -trimprefix=Direction
//go:generate go tool stringer -type=Event -trimprefix=Event
//go:generate go tool stringer -type=State -trimprefix=State
