// Command netbridge is the networking collaborator spec.md leaves
// external to the core: it owns a byte channel — here a local PTY shell,
// bridged over a websocket the way a BBS door would be — and calls the
// two sinks the core exposes, Feed and Dispose, draining the one source,
// the DSR/DA response queue, back upstream. Grounded on the Multiterminal
// session's go-pty read loop, adapted from a local Screen to a remote
// websocket peer.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	gopty "github.com/aymanbagabas/go-pty"
	"github.com/gorilla/websocket"

	"github.com/patrick-goecommerce/cp437term/internal/config"
	"github.com/patrick-goecommerce/cp437term/internal/host"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func main() {
	addr := flag.String("addr", "127.0.0.1:8443", "listen address")
	shell := flag.String("shell", defaultShell(), "shell command to spawn per connection")
	flag.Parse()

	http.HandleFunc("/term", func(w http.ResponseWriter, r *http.Request) {
		handleConn(w, r, *shell)
	})

	log.Printf("netbridge listening on %s (shell=%s)", *addr, *shell)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

func handleConn(w http.ResponseWriter, r *http.Request, shell string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("netbridge: upgrade:", err)
		return
	}
	defer conn.Close()

	h, err := host.Open(r.RemoteAddr, config.DefaultOptions())
	if err != nil {
		log.Println("netbridge: open host:", err)
		return
	}
	defer h.Dispose()

	p, err := gopty.New()
	if err != nil {
		log.Println("netbridge: pty:", err)
		return
	}
	defer p.Close()

	cmd := p.Command(shell)
	if err := cmd.Start(); err != nil {
		log.Println("netbridge: start shell:", err)
		return
	}

	done := make(chan struct{})
	go pumpPTYToWebsocket(p, h, conn, done)
	go pumpOutboxToWebsocket(h, conn, done)
	pumpWebsocketToPTY(conn, p, h)

	close(done)
	_ = cmd.Wait()
}

// pumpPTYToWebsocket reads the PTY's raw output, both feeding it into the
// core engine (so the core's parser state stays authoritative) and
// forwarding it verbatim to the websocket peer.
func pumpPTYToWebsocket(p gopty.Pty, h *host.Host, conn *websocket.Conn, done <-chan struct{}) {
	buf := make([]byte, 4096)
	for {
		n, err := p.Read(buf)
		if n > 0 {
			h.Feed(buf[:n])
			if werr := conn.WriteMessage(websocket.BinaryMessage, buf[:n]); werr != nil {
				return
			}
		}
		if err != nil {
			return
		}
		select {
		case <-done:
			return
		default:
		}
	}
}

// pumpOutboxToWebsocket drains DSR/DA response bytes the core queued and
// writes them back to the peer, per §6's "must drain" contract.
func pumpOutboxToWebsocket(h *host.Host, conn *websocket.Conn, done <-chan struct{}) {
	for {
		select {
		case b := <-h.Outbox():
			if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// pumpWebsocketToPTY forwards inbound websocket frames (keystrokes) to
// the PTY. It returns once the connection closes, at which point the
// caller disposes the host.
func pumpWebsocketToPTY(conn *websocket.Conn, p gopty.Pty, h *host.Host) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if _, err := p.Write(data); err != nil {
			return
		}
	}
}
