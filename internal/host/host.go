// Package host realizes the external entry points of spec.md's §6:
// render, feed, dispose, backed by a config.Options-driven term.Engine.
// It is the one internal/ package that holds a mutex — the core engine,
// renderer, and scheduler stay single-threaded and lock-free; Host fans
// access out to whichever goroutines a concrete frontend uses (a Wails
// event-loop goroutine in cmd/desktop, a PTY-reading goroutine in
// cmd/netbridge), the same way the teacher's App guards its sessions map.
package host

import (
	"image"
	"sync"

	"github.com/patrick-goecommerce/cp437term/internal/config"
	"github.com/patrick-goecommerce/cp437term/internal/palette"
	"github.com/patrick-goecommerce/cp437term/internal/render"
	"github.com/patrick-goecommerce/cp437term/internal/scheduler"
	"github.com/patrick-goecommerce/cp437term/internal/term"
)

// Host wraps one engine plus whatever baud-rate player is driving it, and
// serializes access from whatever goroutines a concrete frontend uses.
type Host struct {
	mu     sync.Mutex
	engine *term.Engine
	pal    palette.Palette
	player *scheduler.Player // nil when unthrottled or not yet started
	outbox chan []byte
}

// Open validates opts and constructs a Host ready to Feed or play data.
// Selector is required (per spec.md's "selector (required)"); an empty
// selector or unrecognized palette name is a ConfigError, returned before
// any engine exists.
func Open(selector string, opts config.Options) (*Host, error) {
	if selector == "" {
		return nil, badSelector(selector)
	}
	pal, err := palette.Lookup(palette.Name(opts.Palette))
	if err != nil {
		return nil, badPalette(opts.Palette)
	}
	return &Host{
		engine: term.NewEngine(),
		pal:    pal,
		outbox: make(chan []byte, 64),
	}, nil
}

// Feed pushes bytes into the engine immediately, bypassing any baud-rate
// pacing. Used for live streams (cmd/netbridge) where the upstream
// connection is already the pacing source.
func (h *Host) Feed(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.engine.Feed(data)
	h.drainOutbox()
}

// Play starts (or replaces) a baud-paced playback of buf at bps, driven
// by clock. Call Tick on each host animation frame to advance it.
func (h *Host) Play(clock scheduler.Clock, buf []byte, bps int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.player = scheduler.NewPlayer(clock, buf, bps, h.engine)
}

// Tick advances any in-progress playback and reports whether new bytes
// were fed (i.e. whether a repaint is warranted).
func (h *Host) Tick() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.player == nil {
		return false
	}
	painted := h.player.Tick()
	h.drainOutbox()
	return painted
}

// CancelPlayback stops any in-progress baud-paced playback.
func (h *Host) CancelPlayback() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.player != nil {
		h.player.Cancel()
	}
}

// Render paints the full grid into a fresh RGBA surface.
func (h *Host) Render(blinkOn bool) *image.RGBA {
	h.mu.Lock()
	defer h.mu.Unlock()
	return render.Frame(h.engine, h.pal, blinkOn)
}

// RenderInto repaints only the rows the engine reports dirty, plus any
// blinking cells, into an existing surface, clearing damage afterward.
func (h *Host) RenderInto(img *image.RGBA, blinkOn bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	render.Paint(img, h.engine, h.pal, blinkOn)
	h.engine.ClearDamage()
}

// Dispose tears the engine down per the networking collaborator contract:
// cursor to row 24 col 0, pen reset, "Server Disconnected" written, and
// the engine locked against further Feed calls.
func (h *Host) Dispose() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.player != nil {
		h.player.Cancel()
	}
	h.engine.Dispose()
}

// Disposed reports whether Dispose has already run.
func (h *Host) Disposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.engine.Disposed()
}

// Outbox returns the channel DSR/DA response bytes arrive on. A
// networking collaborator (cmd/netbridge) drains it and writes the bytes
// back upstream.
func (h *Host) Outbox() <-chan []byte {
	return h.outbox
}

// drainOutbox moves any queued engine responses onto the channel,
// dropping (rather than blocking) if a slow consumer has let it fill —
// an unread DSR reply is stale by the time the channel drains anyway.
func (h *Host) drainOutbox() {
	for _, b := range h.engine.Outbox() {
		select {
		case h.outbox <- b:
		default:
		}
	}
}

// Title returns the engine's most recent OSC title string.
func (h *Host) Title() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.engine.Title()
}
