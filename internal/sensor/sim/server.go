// Package sim provides a depth-sensor simulator for development without
// hardware: a WebSocket server that publishes the current depth value and
// a terminal slider UI that drives it.
package sim

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// publishInterval bounds the broadcast rate; values changing faster than
// this collapse into the newest one (last value wins on the wire too).
const publishInterval = 10 * time.Millisecond

var upgrader = websocket.Upgrader{
	// The simulator is a local dev tool; accept any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client wraps a connection with a write lock. gorilla/websocket permits
// at most one concurrent writer per connection, and both handleWS and the
// broadcast loop write to the same conn.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Server broadcasts the current depth value to connected WebSocket clients.
type Server struct {
	addr   string
	logger *log.Logger

	mu       sync.Mutex
	value    int
	lastSent int
	clients  map[*client]struct{}

	httpSrv *http.Server
	done    chan struct{}
	once    sync.Once
}

// NewServer creates a simulator server listening on addr (e.g. ":12345").
func NewServer(addr string, logger *log.Logger) *Server {
	return &Server{
		addr:     addr,
		logger:   logger,
		lastSent: -1,
		clients:  make(map[*client]struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins listening and broadcasting. It does not block; use Stop
// for shutdown. Returns an error if the listener cannot be created.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)

	s.httpSrv = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Give the listener a moment to surface bind failures.
	select {
	case err := <-errCh:
		return err
	case <-time.After(100 * time.Millisecond):
	}

	go s.broadcastLoop()

	s.logger.Info("simulator listening", "addr", s.addr, "endpoint", "/ws")
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	cl := &client{conn: conn}

	s.mu.Lock()
	s.clients[cl] = struct{}{}
	value := s.value
	s.mu.Unlock()

	s.logger.Info("client connected", "remote", conn.RemoteAddr().String())

	// Send the current value immediately so a client never starts blind.
	s.send(cl, value)

	// Drain the connection to notice when the client goes away.
	go func() {
		defer s.dropClient(cl)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) dropClient(cl *client) {
	s.mu.Lock()
	delete(s.clients, cl)
	s.mu.Unlock()
	cl.conn.Close()
	s.logger.Info("client disconnected", "remote", cl.conn.RemoteAddr().String())
}

func (s *Server) broadcastLoop() {
	ticker := time.NewTicker(publishInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			value := s.value
			changed := value != s.lastSent
			if changed {
				s.lastSent = value
			}
			var conns []*client
			if changed {
				conns = make([]*client, 0, len(s.clients))
				for c := range s.clients {
					conns = append(conns, c)
				}
			}
			s.mu.Unlock()

			for _, c := range conns {
				s.send(c, value)
			}
		}
	}
}

func (s *Server) send(cl *client, value int) {
	cl.mu.Lock()
	_ = cl.conn.SetWriteDeadline(time.Now().Add(time.Second))
	err := cl.conn.WriteMessage(websocket.TextMessage, []byte(strconv.Itoa(value)))
	cl.mu.Unlock()
	if err != nil {
		s.dropClient(cl)
	}
}

// Update sets the depth value to broadcast. Safe for concurrent use.
func (s *Server) Update(value int) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
}

// Stop shuts the server down, closing all client connections.
func (s *Server) Stop() error {
	var err error
	s.once.Do(func() {
		close(s.done)

		s.mu.Lock()
		for c := range s.clients {
			c.conn.Close()
		}
		s.clients = make(map[*client]struct{})
		s.mu.Unlock()

		if s.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			err = s.httpSrv.Shutdown(ctx)
		}
		s.logger.Info("simulator stopped")
	})
	return err
}
