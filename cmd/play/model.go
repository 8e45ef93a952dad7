// Command play is a terminal reference host: it baud-plays a CP437/ANSI
// byte buffer through the core engine and renders the grid as styled
// text in the real host terminal, for developers without a browser
// handy. Stack: Bubbletea + Lipgloss, the same pair the Multiterminal
// TUI renders its panes with.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/patrick-goecommerce/cp437term/internal/config"
	"github.com/patrick-goecommerce/cp437term/internal/palette"
	"github.com/patrick-goecommerce/cp437term/internal/scheduler"
	"github.com/patrick-goecommerce/cp437term/internal/term"
)

// tickMsg fires periodically to advance baud-paced playback, the same
// shape as the Multiterminal TUI's own refresh tick.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model is the root Bubbletea model: an engine, a player pacing bytes
// into it, and the palette used to style the rendered grid.
type model struct {
	engine  *term.Engine
	player  *scheduler.Player
	pal     palette.Palette
	blinkOn bool
	quit    bool
}

func newModel(opts config.Options, data []byte) (model, error) {
	pal, err := palette.Lookup(palette.Name(opts.Palette))
	if err != nil {
		return model{}, err
	}
	e := term.NewEngine()
	clk := scheduler.NewRealClock()
	return model{
		engine: e,
		player: scheduler.NewPlayer(clk, data, opts.BPS, e),
		pal:    pal,
	}, nil
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.player.Cancel()
			m.quit = true
			return m, tea.Quit
		}
	case tickMsg:
		m.player.Tick()
		m.blinkOn = time.Time(msg).UnixMilli()/500%2 == 0
		if m.player.Done() && m.quit {
			return m, tea.Quit
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m model) View() string {
	if m.quit {
		return ""
	}
	return renderGrid(m.engine, m.pal, m.blinkOn)
}

func main() {
	opts, args, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "play:", err)
		os.Exit(1)
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: play [--bps N] [--palette VGA|CGA] <file>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "play: reading", args[0]+":", err)
		os.Exit(1)
	}

	m, err := newModel(opts, data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "play:", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "play:", err)
		os.Exit(1)
	}
}
