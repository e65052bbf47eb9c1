package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arcanum-obscurum/arcanum/internal/index"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
	"github.com/arcanum-obscurum/arcanum/internal/notify"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time     // for testing, defaults to time.Now
	Catalog      *index.Catalog       // in-memory catalog list
	ThreatLevels *index.ThreatLevels  // admin-editable grade registry
	Events       *index.Events        // latest disaster feed batch
	Notifier     *notify.Notifier     // watchlist evaluation + durable flag/prefs
	RedisClient  *redis.Client        // backing store connection, used by readiness checks
	FeedTrigger  chan struct{}        // manual feed refresh channel (nil if feed disabled)
	TrustProxy   bool                 // true if running behind a trusted reverse proxy
	CreateBurst  int                  // rate-limit burst for the create endpoint
	CreateRefill int                  // rate-limit refill per IP per minute
}
