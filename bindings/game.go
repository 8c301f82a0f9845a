// Package bindings holds the Wails-bound modules the webview calls into.
package bindings

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"blackjack-desktop/internal/gameclient"
	"blackjack-desktop/internal/stats"
	"blackjack-desktop/internal/view"
)

// EventGameUpdated carries a fresh Snapshot to the webview after every state
// change, so the UI never has to poll.
const EventGameUpdated = "game:updated"

// GameModule owns the client-side game state: the session id, the current
// server snapshot, the in-flight flag, the last error, and the session
// statistics. It is bound into the webview; one instance serves the whole
// app lifetime.
//
// At most one request is outstanding at a time: an action attempted while
// loading returns the current snapshot unchanged. The UI disables its
// controls while loading, so this is a backstop rather than the primary
// guard.
type GameModule struct {
	ctx    context.Context
	client *gameclient.Client

	mu        sync.Mutex
	sessionID string
	state     *gameclient.GameState
	loading   bool
	lastError string
	stats     stats.Stats
	recorded  bool // current game's result already tallied
}

// NewGameModule constructs the module ready to be bound.
func NewGameModule(client *gameclient.Client) *GameModule {
	return &GameModule{client: client}
}

// Startup stores the Wails context and deals the opening game, the same
// auto-start the UI performed on mount. The deal runs in the background so
// an unreachable service cannot stall window creation.
func (m *GameModule) Startup(ctx context.Context) {
	m.mu.Lock()
	m.ctx = ctx
	m.mu.Unlock()

	go m.StartNewGame()
}

// Shutdown best-effort releases the active session on the service.
func (m *GameModule) Shutdown(ctx context.Context) {
	m.mu.Lock()
	sessionID := m.sessionID
	m.mu.Unlock()

	if sessionID == "" {
		return
	}
	if err := m.client.EndGame(ctx, sessionID); err != nil {
		log.Printf("end game on shutdown: %v", err)
	}
}

// Snapshot is the full render model for one UI frame.
type Snapshot struct {
	Table     view.TableView  `json:"table"`
	Stats     stats.PanelView `json:"stats"`
	Error     string          `json:"error,omitempty"`
	Loading   bool            `json:"loading"`
	SessionID string          `json:"sessionId,omitempty"`
}

// Snapshot returns the current render model. The webview calls it once on
// load; afterwards it listens for EventGameUpdated.
func (m *GameModule) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *GameModule) snapshotLocked() Snapshot {
	return Snapshot{
		Table:     view.Table(m.state, m.loading),
		Stats:     m.stats.View(),
		Error:     m.lastError,
		Loading:   m.loading,
		SessionID: m.sessionID,
	}
}

// StartNewGame discards the current session and deals a fresh game. The
// superseded session is left to the service; only Shutdown deletes it.
func (m *GameModule) StartNewGame() Snapshot {
	m.mu.Lock()
	if m.loading {
		defer m.mu.Unlock()
		return m.snapshotLocked()
	}
	m.loading = true
	m.lastError = ""
	m.mu.Unlock()
	m.emit(m.Snapshot())

	resp, err := m.client.NewGame(m.reqCtx())

	m.mu.Lock()
	m.loading = false
	if err != nil {
		log.Printf("new game failed: %v", err)
		m.lastError = userMessage(err)
	} else {
		m.sessionID = resp.SessionID
		m.state = &resp.GameState
		m.recorded = false
		m.tallyLocked()
	}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.emit(snap)
	return snap
}

// Hit requests another card for the player.
func (m *GameModule) Hit() Snapshot { return m.makeMove(actionHit) }

// Stand ends the player's turn.
func (m *GameModule) Stand() Snapshot { return m.makeMove(actionStand) }

// DoubleDown takes one more card and stands.
func (m *GameModule) DoubleDown() Snapshot { return m.makeMove(actionDoubleDown) }

// Refresh re-fetches the snapshot for the current session, used by the
// webview after a frontend reload.
func (m *GameModule) Refresh() Snapshot { return m.makeMove(actionRefresh) }

type action int

const (
	actionHit action = iota
	actionStand
	actionDoubleDown
	actionRefresh
)

func (m *GameModule) makeMove(a action) Snapshot {
	m.mu.Lock()
	// No session yet (initial load still pending or failed): nothing to act on.
	if m.sessionID == "" || m.loading {
		defer m.mu.Unlock()
		return m.snapshotLocked()
	}
	sessionID := m.sessionID
	m.loading = true
	m.lastError = ""
	m.mu.Unlock()
	m.emit(m.Snapshot())

	var (
		state *gameclient.GameState
		err   error
	)
	switch a {
	case actionHit:
		state, err = m.client.Hit(m.reqCtx(), sessionID)
	case actionStand:
		state, err = m.client.Stand(m.reqCtx(), sessionID)
	case actionDoubleDown:
		state, err = m.client.DoubleDown(m.reqCtx(), sessionID)
	case actionRefresh:
		state, err = m.client.FetchState(m.reqCtx(), sessionID)
	}

	m.mu.Lock()
	m.loading = false
	if err != nil {
		// The last good snapshot stays rendered; only the error line changes.
		log.Printf("action failed: %v", err)
		m.lastError = userMessage(err)
	} else {
		m.state = state
		m.tallyLocked()
	}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.emit(snap)
	return snap
}

// tallyLocked records the current game's outcome exactly once. A game dealt
// as an immediate blackjack carries its result on the new-game response
// itself, so the tally happens at whichever response first shows a terminal
// result.
func (m *GameModule) tallyLocked() {
	if m.state == nil || m.recorded {
		return
	}
	if m.state.State == gameclient.StateGameOver && m.state.Result != "" {
		m.stats.Record(m.state.Result)
		m.recorded = true
	}
}

func (m *GameModule) reqCtx() context.Context {
	m.mu.Lock()
	ctx := m.ctx
	m.mu.Unlock()
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func (m *GameModule) emit(snap Snapshot) {
	m.mu.Lock()
	ctx := m.ctx
	m.mu.Unlock()
	if ctx == nil {
		return
	}
	runtime.EventsEmit(ctx, EventGameUpdated, snap)
}

// userMessage collapses every failure kind to the single "Failed to
// <action>" line the UI shows; the cause goes to the log only.
func userMessage(err error) string {
	var reqErr *gameclient.RequestError
	if errors.As(err, &reqErr) {
		return "Failed to " + reqErr.Action
	}
	return "Failed to complete request"
}
