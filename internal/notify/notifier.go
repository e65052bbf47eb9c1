// Package notify owns the two durable pieces of engine state: the
// unread-alert flag and the watchlist preferences. Both live behind the
// kv.Store capability under fixed keys.
package notify

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
	"github.com/arcanum-obscurum/arcanum/internal/store/kv"
)

const (
	// FlagKey holds the literal string "true" while an alert is
	// unread; the key is removed (not set to "false") when cleared.
	FlagKey = "arcanum_has_notification"

	// PrefsKey holds the watchlist preferences as a JSON blob.
	PrefsKey = "arcanum_watch_prefs"
)

// Notifier evaluates new entries against the watchlist policy and keeps
// the flag and preferences persisted. Persistence is best effort:
// storage failures are logged and never surface to the user.
type Notifier struct {
	store  kv.Store
	logger logger.Logger

	mu    sync.RWMutex
	prefs domain.Preferences
}

// New creates a Notifier and loads the persisted preferences. An absent
// blob yields the defaults. A structurally incompatible blob also falls
// back to the defaults instead of propagating malformed data.
func New(ctx context.Context, store kv.Store, log logger.Logger) *Notifier {
	n := &Notifier{
		store:  store,
		logger: log,
		prefs:  domain.DefaultPreferences(),
	}

	raw, ok, err := store.Get(ctx, PrefsKey)
	if err != nil {
		log.Warn("failed to load watch preferences, using defaults",
			logger.Error(err))
		return n
	}
	if !ok {
		return n
	}

	prefs, err := decodePreferences(raw)
	if err != nil {
		log.Warn("persisted watch preferences are malformed, using defaults",
			logger.Error(err))
		return n
	}
	n.prefs = prefs
	return n
}

// Preferences returns the current watchlist policy.
func (n *Notifier) Preferences() domain.Preferences {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.prefs
}

// SetPreferences replaces the policy and persists the full object.
func (n *Notifier) SetPreferences(ctx context.Context, prefs domain.Preferences) error {
	if prefs.WatchedTags == nil {
		prefs.WatchedTags = []string{}
	}
	if prefs.WatchedGrades == nil {
		prefs.WatchedGrades = []string{}
	}

	n.mu.Lock()
	n.prefs = prefs
	n.mu.Unlock()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	if err := n.store.Set(ctx, PrefsKey, string(data)); err != nil {
		n.logger.Warn("failed to persist watch preferences",
			logger.Error(err))
		return err
	}
	return nil
}

// Record evaluates a newly added entry against the policy. On alert it
// sets the unread flag before the entry becomes visible in listings and
// returns the composed alert message.
func (n *Notifier) Record(ctx context.Context, entry *domain.Entry) (domain.Evaluation, string) {
	ev := domain.EvaluateWatch(entry, n.Preferences())
	if !ev.Alert {
		return ev, ""
	}

	if err := n.store.Set(ctx, FlagKey, "true"); err != nil {
		n.logger.Warn("failed to persist notification flag",
			logger.Error(err))
	}
	n.logger.Info("watchlist alert raised",
		logger.String("entry_id", entry.ID),
		logger.Bool("tag_match", ev.TagMatch),
		logger.Bool("grade_match", ev.GradeMatch))

	return ev, ev.AlertMessage(entry)
}

// HasNotification reports whether an unread alert is pending.
func (n *Notifier) HasNotification(ctx context.Context) bool {
	value, ok, err := n.store.Get(ctx, FlagKey)
	if err != nil {
		n.logger.Warn("failed to read notification flag",
			logger.Error(err))
		return false
	}
	return ok && value == "true"
}

// Clear removes the unread flag. Called when the user next views the
// primary catalog listing.
func (n *Notifier) Clear(ctx context.Context) {
	if err := n.store.Delete(ctx, FlagKey); err != nil {
		n.logger.Warn("failed to clear notification flag",
			logger.Error(err))
	}
}

// decodePreferences validates the persisted shape field by field. A
// blob with missing fields or wrong types is rejected so that loading
// falls back to the defaults.
func decodePreferences(raw string) (domain.Preferences, error) {
	var probe struct {
		Enabled       *bool     `json:"enabled"`
		WatchedTags   *[]string `json:"watchedTags"`
		WatchedGrades *[]string `json:"watchedGrades"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return domain.Preferences{}, err
	}
	if probe.Enabled == nil || probe.WatchedTags == nil || probe.WatchedGrades == nil {
		return domain.Preferences{}, errIncompleteShape
	}
	return domain.Preferences{
		Enabled:       *probe.Enabled,
		WatchedTags:   *probe.WatchedTags,
		WatchedGrades: *probe.WatchedGrades,
	}, nil
}

var errIncompleteShape = jsonShapeError("preferences blob is missing required fields")

type jsonShapeError string

func (e jsonShapeError) Error() string { return string(e) }
