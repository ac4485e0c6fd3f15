package sensor

import (
	"bytes"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsHandshakeTimeout = 2 * time.Second
	wsReadDeadline     = 10 * time.Second
	wsReconnectDelay   = 500 * time.Millisecond
	wsMaxMessageSize   = 1 << 16
)

// WSDevice reads depth values from a WebSocket endpoint — either the
// bundled slider simulator or a bridge in front of the real hardware.
// Messages are ASCII integers, optionally newline-separated; the newest
// value wins. Acquisition runs on its own goroutine and lands in a Latest
// buffer, so Sample never blocks a tick on network I/O.
type WSDevice struct {
	url        string
	staleAfter time.Duration
	latest     Latest

	connected atomic.Bool
	done      chan struct{}
	closeOnce sync.Once

	mu   sync.Mutex
	conn *websocket.Conn
}

// DialWS starts a device that connects to the given ws:// URL.
// The connection is established in the background with bounded retries
// between attempts; until it succeeds the device reports
// StatusUnavailable and the game degrades instead of crashing.
func DialWS(url string, staleAfter time.Duration) *WSDevice {
	d := &WSDevice{
		url:        url,
		staleAfter: staleAfter,
		done:       make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *WSDevice) run() {
	dialer := websocket.Dialer{HandshakeTimeout: wsHandshakeTimeout}

	for {
		select {
		case <-d.done:
			return
		default:
		}

		conn, resp, err := dialer.Dial(d.url, http.Header{})
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		if err != nil {
			select {
			case <-d.done:
				return
			case <-time.After(wsReconnectDelay):
				continue
			}
		}

		d.mu.Lock()
		d.conn = conn
		d.mu.Unlock()
		d.connected.Store(true)

		d.readLoop(conn)

		d.connected.Store(false)
		conn.Close()
	}
}

func (d *WSDevice) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(wsMaxMessageSize)
	for {
		if err := conn.SetReadDeadline(time.Now().Add(wsReadDeadline)); err != nil {
			return
		}
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if v, ok := parseDepth(msg); ok {
			d.latest.Put(Reading(v))
		}
	}
}

// parseDepth extracts the last integer from a message that may carry
// several newline-separated values. Last value wins.
func parseDepth(msg []byte) (int, bool) {
	fields := bytes.Fields(msg)
	for i := len(fields) - 1; i >= 0; i-- {
		if v, err := strconv.Atoi(string(fields[i])); err == nil {
			return v, true
		}
	}
	return 0, false
}

// Sample returns the freshest buffered reading, or the no-reading marker
// when the buffer is empty or older than the staleness budget.
func (d *WSDevice) Sample() Sample {
	s, at, ok := d.latest.Get()
	if !ok || time.Since(at) > d.staleAfter {
		return NoReading()
	}
	return s
}

// Status reports connection health. Stale-but-connected is transient;
// disconnected is unavailable.
func (d *WSDevice) Status() Status {
	if !d.connected.Load() {
		return StatusUnavailable
	}
	if _, at, ok := d.latest.Get(); !ok || time.Since(at) > d.staleAfter {
		return StatusNoData
	}
	return StatusOK
}

// Close stops the background goroutine and closes the connection.
func (d *WSDevice) Close() error {
	d.closeOnce.Do(func() {
		close(d.done)
		d.mu.Lock()
		if d.conn != nil {
			d.conn.Close()
		}
		d.mu.Unlock()
	})
	return nil
}
