package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/grantboard/grantboard/internal/index"
	"github.com/grantboard/grantboard/internal/logger"
	"github.com/grantboard/grantboard/internal/scheduler"
	"github.com/grantboard/grantboard/internal/state"
	redisstore "github.com/grantboard/grantboard/internal/store/redis"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time            // for testing, defaults to time.Now
	AllowedHosts  []string                    // Host headers allowed to access the server
	AllowedCIDRS  []string                    // IPs allowed to access healthz/readyz endpoints
	TrustProxy    bool                        // true if running behind a trusted reverse proxy
	CatalogFile   string                      // Path to the grant catalog file
	RedisClient   *redis.Client               // Redis client connection
	Catalog       *index.Catalog              // In-memory grant catalog
	State         *state.State                // In-memory user state
	Store         *redisstore.Store           // Redis-backed state store (nil if persistence disabled)
	Notifier      *scheduler.DeadlineNotifier // Deadline notifier (nil if disabled)
	PageSize      int                         // Grants per page for list responses
	ReloadTrigger chan struct{}               // Channel to trigger manual catalog reload
}

// Now returns the injected clock, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
