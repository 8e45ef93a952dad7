// Package config loads and validates the options a host passes to
// internal/host when opening a terminal: which container it is bound to,
// at what baud rate to play, with which palette.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Options holds the user-configurable settings for one terminal session.
type Options struct {
	// Selector identifies the container the terminal is bound to: a CSS
	// selector in cmd/desktop; cmd/netbridge passes the peer's remote
	// address. internal/host only requires it to be non-empty.
	Selector string `yaml:"selector"`

	// BPS paces playback to this many bits per second. Zero means
	// unthrottled: feed everything synchronously.
	BPS int `yaml:"bps"`

	// Palette selects "VGA" or "CGA". Empty defaults to VGA.
	Palette string `yaml:"palette"`

	// ScrollbackLines is carried as a hint only; the engine itself keeps
	// no scrollback buffer.
	ScrollbackLines int `yaml:"scrollback_lines"`
}

// DefaultOptions returns the built-in defaults: unthrottled playback, VGA
// palette, no scrollback hint.
func DefaultOptions() Options {
	return Options{
		Palette: "VGA",
	}
}

// validBPS lists the modem speeds spec.md names as the expected domain;
// any other positive value is still accepted, just unusual.
var validBPS = map[int]bool{
	300: true, 1200: true, 2400: true, 9600: true,
	14400: true, 28800: true, 57600: true,
}

// Load reads YAML options from path, filling in defaults for anything
// unset and clamping out-of-range values.
func Load(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return normalize(opts), nil
}

// ParseBytes unmarshals YAML options already held in memory, applying
// the same normalization Load does.
func ParseBytes(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return normalize(opts), nil
}

func normalize(opts Options) Options {
	if opts.BPS < 0 {
		opts.BPS = 0
	}
	if opts.Palette == "" {
		opts.Palette = "VGA"
	}
	if opts.ScrollbackLines < 0 {
		opts.ScrollbackLines = 0
	}
	return opts
}

// Save writes opts as YAML to path.
func Save(path string, opts Options) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
