// Package terminal renders a canvas to a real terminal, either through
// direct ANSI output on an io.Writer or by blitting into a tcell
// screen.
//
// The Renderer owns the writer side: alternate screen, cursor
// visibility, and per-frame style run tracking. Blit is a stateless
// copy for programs that already run a tcell event loop.
package terminal
