package handlers

import (
	"net/http"
	"time"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
)

type feedResponse struct {
	Events    []domain.FeedEvent `json:"events"`
	LastFetch string             `json:"lastFetch,omitempty"`
}

// Feed returns the latest disaster feed batch held in memory.
func Feed(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := feedResponse{Events: d.Events.All()}
		if last := d.Events.LastFetch(); !last.IsZero() {
			resp.LastFetch = last.UTC().Format(time.RFC3339)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RefreshFeed triggers an immediate feed fetch without waiting for the
// next scheduled tick.
func RefreshFeed(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.FeedTrigger == nil {
			writeError(w, http.StatusServiceUnavailable, "feed polling is disabled")
			return
		}

		select {
		case d.FeedTrigger <- struct{}{}:
			d.Logger.Info("manual feed refresh triggered",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
		default:
			d.Logger.Warn("feed refresh already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			writeError(w, http.StatusTooManyRequests, "refresh already in progress")
		}
	}
}
