// Package main is the desktop reference host: a Wails-bound App exposing
// spec.md's four entry points — render, init_terminals, feed, dispose —
// to a thin embedded frontend. It is the stand-in for the out-of-scope
// "DOM bootstrap" collaborator: the frontend only owns a <canvas> and a
// term-url scan; everything else routes through these bound methods,
// grounded on the Multiterminal backend App's session map and its
// coalesced terminal:output event emission.
package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/patrick-goecommerce/cp437term/internal/config"
	"github.com/patrick-goecommerce/cp437term/internal/host"
	"github.com/patrick-goecommerce/cp437term/internal/scheduler"
)

// App is the Wails-bound application struct. Exported methods are
// reachable from the frontend via generated TypeScript bindings.
type App struct {
	ctx context.Context

	mu      sync.Mutex
	hosts   map[string]*host.Host
	cancels map[string]context.CancelFunc
}

// NewApp constructs an App with no open containers.
func NewApp() *App {
	return &App{
		hosts:   make(map[string]*host.Host),
		cancels: make(map[string]context.CancelFunc),
	}
}

// Startup receives the Wails-managed context once the window exists.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
}

// RenderOptions mirrors spec.md's §6 "recognized options" enumeration for
// the render entry point.
type RenderOptions struct {
	BPS             int    `json:"bps"`
	Palette         string `json:"palette"`
	ScrollbackLines int    `json:"scrollbackLines"`
}

// Render is entry point 1: create an engine bound to selector, feed it
// dataB64 (base64-encoded bytes, since Wails methods are JSON-only), and
// start the paint loop. Returns the container id the frontend uses for
// subsequent Feed/Dispose calls.
func (a *App) Render(selector string, dataB64 string, opts RenderOptions) (string, error) {
	data, err := base64.StdEncoding.DecodeString(dataB64)
	if err != nil {
		return "", fmt.Errorf("render: decoding payload: %w", err)
	}

	h, err := host.Open(selector, config.Options{
		Selector:        selector,
		BPS:             opts.BPS,
		Palette:         opts.Palette,
		ScrollbackLines: opts.ScrollbackLines,
	})
	if err != nil {
		return "", err
	}

	id := a.register(h)
	h.Play(scheduler.NewRealClock(), data, opts.BPS)
	a.startPaintLoop(id, h)
	return id, nil
}

// InitTerminals is entry point 2's Go half: given the attributes the
// frontend already scanned off one term-url container, open a
// pre-connect engine and, if supplied, render preconnectScreen into it
// before any network byte arrives. The DOM scan itself is the
// frontend's job — it calls this once per discovered element.
func (a *App) InitTerminals(selector string, preconnectScreenB64 string, paletteName string, scrollbackLines int) (string, error) {
	h, err := host.Open(selector, config.Options{
		Selector:        selector,
		Palette:         paletteName,
		ScrollbackLines: scrollbackLines,
	})
	if err != nil {
		return "", err
	}
	if preconnectScreenB64 != "" {
		screen, err := base64.StdEncoding.DecodeString(preconnectScreenB64)
		if err != nil {
			return "", fmt.Errorf("init_terminals: decoding preconnect screen: %w", err)
		}
		h.Feed(screen)
	}
	id := a.register(h)
	a.startPaintLoop(id, h)
	return id, nil
}

// Feed is entry point 3: push more bytes into a live engine.
func (a *App) Feed(id string, dataB64 string) error {
	h, ok := a.lookup(id)
	if !ok {
		return fmt.Errorf("feed: unknown container id %s", id)
	}
	data, err := base64.StdEncoding.DecodeString(dataB64)
	if err != nil {
		return fmt.Errorf("feed: decoding payload: %w", err)
	}
	h.Feed(data)
	return nil
}

// Dispose is entry point 3's other half: tear an engine down.
func (a *App) Dispose(id string) error {
	h, ok := a.lookup(id)
	if !ok {
		return fmt.Errorf("dispose: unknown container id %s", id)
	}
	h.Dispose()

	a.mu.Lock()
	if cancel, ok := a.cancels[id]; ok {
		cancel()
		delete(a.cancels, id)
	}
	a.mu.Unlock()
	return nil
}

func (a *App) register(h *host.Host) string {
	id := uuid.New().String()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hosts[id] = h
	return id
}

func (a *App) lookup(id string) (*host.Host, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	h, ok := a.hosts[id]
	return h, ok
}

// coalesceDelay mirrors the backend App's session-count-scaled coalescing
// window, applied here to paints instead of PTY output chunks.
func (a *App) coalesceDelay() time.Duration {
	a.mu.Lock()
	n := len(a.hosts)
	a.mu.Unlock()
	switch {
	case n <= 2:
		return 16 * time.Millisecond // ~60fps
	case n <= 4:
		return 33 * time.Millisecond
	default:
		return 66 * time.Millisecond
	}
}

// startPaintLoop runs the blink clock and repaint cadence for one
// container: advances any baud-paced playback, repaints dirty rows, and
// emits the frame as a base64 PNG "terminal:paint" event — the paint
// analogue of streamOutput's coalesced terminal:output events.
func (a *App) startPaintLoop(id string, h *host.Host) {
	ctx, cancel := context.WithCancel(a.ctx)
	a.mu.Lock()
	a.cancels[id] = cancel
	a.mu.Unlock()

	go func() {
		ticker := time.NewTicker(a.coalesceDelay())
		defer ticker.Stop()

		blinkTicker := time.NewTicker(500 * time.Millisecond)
		defer blinkTicker.Stop()

		blinkOn := true
		img := h.Render(blinkOn)
		a.emitFrame(id, img)

		for {
			select {
			case <-ctx.Done():
				return
			case <-blinkTicker.C:
				blinkOn = !blinkOn
				h.RenderInto(img, blinkOn)
				a.emitFrame(id, img)
			case <-ticker.C:
				if h.Tick() {
					h.RenderInto(img, blinkOn)
					a.emitFrame(id, img)
				}
				if h.Disposed() {
					return
				}
			}
		}
	}()
}

func (a *App) emitFrame(id string, img *image.RGBA) {
	b64, err := encodePNGBase64(img)
	if err != nil {
		return
	}
	runtime.EventsEmit(a.ctx, "terminal:paint", id, b64)
}
