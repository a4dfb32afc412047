package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	db *sql.DB
}

// NewService constructs a new health service. db may be nil when running on
// the in-memory repositories.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Status returns the health payload. The database check is a short ping;
// the in-memory mode reports "memory" instead.
func (s *Service) Status(ctx context.Context) map[string]any {
	out := map[string]any{"ok": true}
	if s.db == nil {
		out["storage"] = "memory"
		return out
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(pingCtx); err != nil {
		out["ok"] = false
		out["storage"] = "postgres: " + err.Error()
		return out
	}
	out["storage"] = "postgres"
	return out
}
