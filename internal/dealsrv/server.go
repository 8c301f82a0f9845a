package dealsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"blackjack-desktop/internal/gameclient"
)

// Server serves the game contract on loopback. Sessions live in memory and
// are discarded when the process exits.
type Server struct {
	mu    sync.Mutex
	games map[string]*game

	addr         string
	httpServer   *http.Server
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// New creates a practice server bound to loopback at the given port.
func New(port int) *Server {
	if port <= 0 {
		port = 8431
	}
	return &Server{
		games:        make(map[string]*game),
		addr:         fmt.Sprintf("127.0.0.1:%d", port),
		readTimeout:  10 * time.Second,
		writeTimeout: 10 * time.Second,
	}
}

// Handler returns the HTTP handler, exposed so tests can mount it on an
// httptest server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/game/new", s.handleNew)
	mux.HandleFunc("/game/", s.handleSession)
	return mux
}

// BaseURL returns the root the client should be pointed at.
func (s *Server) BaseURL() string {
	return "http://" + s.addr
}

// Start begins listening in a goroutine. It returns when the socket is bound.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	log.Printf("practice service listening on %s", s.addr)
	go func() {
		_ = s.httpServer.Serve(ln)
	}()
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// ========== Handlers ==========

// POST /game/new
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	sessionID := uuid.NewString()
	g := newGame()

	s.mu.Lock()
	s.games[sessionID] = g
	snap := g.snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, gameclient.NewGameResponse{
		SessionID: sessionID,
		GameState: snap,
	})
}

// /game/{id}[/hit|/stand|/double-down]
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/game/")
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	sessionID := parts[0]

	verb := ""
	if len(parts) > 1 {
		verb = parts[1]
	}
	if len(parts) > 2 || (len(parts) == 2 && verb == "") {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[sessionID]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Game session not found")
		return
	}

	switch verb {
	case "":
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, g.snapshot())
		case http.MethodDelete:
			delete(s.games, sessionID)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Game session ended"})
		default:
			methodNotAllowed(w, "GET, DELETE")
		}
	case "hit", "stand", "double-down":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, "POST")
			return
		}
		var err error
		switch verb {
		case "hit":
			err = g.hit()
		case "stand":
			err = g.stand()
		case "double-down":
			err = g.doubleDown()
		}
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "Cannot "+verb+" at this time")
			return
		}
		writeJSON(w, http.StatusOK, g.snapshot())
	default:
		http.NotFound(w, r)
	}
}

// ========== Helpers ==========

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// writeDetail writes the service's error body shape.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
