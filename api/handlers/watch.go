package handlers

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-settlement/bundle"
)

const (
	CLOSE_BUNDLE_NOT_FOUND = 4404
	WRITE_TIMEOUT          = 5 * time.Second
)

type WatchHandler struct {
	tracker  BundleTracker
	interval time.Duration
	upgrader websocket.Upgrader
}

func NewWatchHandler(tracker BundleTracker, interval time.Duration) *WatchHandler {
	return &WatchHandler{
		tracker:  tracker,
		interval: interval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleRequest streams the bundle result over a websocket every time its
// status changes. The connection is closed once the status is terminal.
func (h *WatchHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bundleID, ok := new(big.Int).SetString(vars["bundleId"], 10)
	if !ok || bundleID.Sign() < 0 {
		JSONError(w, fmt.Errorf("invalid bundleId"), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msgf("Failed upgrading watch request for bundle %s", bundleID)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var last bundle.Status
	for {
		result, err := h.tracker.Status(ctx, bundleID)
		if errors.Is(err, bundle.ErrBundleNotFound) {
			closeConn(conn, CLOSE_BUNDLE_NOT_FOUND, fmt.Sprintf("no bundle with ID: %s", bundleID))
			return
		}
		if err != nil {
			closeConn(conn, websocket.CloseInternalServerErr, "failed fetching bundle status")
			return
		}

		if result.Status != last {
			_ = conn.SetWriteDeadline(time.Now().Add(WRITE_TIMEOUT))
			if err := conn.WriteJSON(toBundleResult(result)); err != nil {
				return
			}
			last = result.Status
		}

		if result.Status.IsTerminal() {
			closeConn(conn, websocket.CloseNormalClosure, string(result.Status))
			return
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func closeConn(conn *websocket.Conn, code int, reason string) {
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(WRITE_TIMEOUT))
}
