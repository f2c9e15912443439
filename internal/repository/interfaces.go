package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NamiSwwaan/crewplan/internal/workflow"
)

// ErrNotFound indicates a requested record does not exist. Session loads
// also return it for corrupt records, so callers can fall back to a fresh
// session either way.
var ErrNotFound = errors.New("not found")

// SessionInfo is a listing row for one stored session.
type SessionInfo struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionRepo persists complete session records keyed by session id.
type SessionRepo interface {
	Save(ctx context.Context, id string, state *workflow.State) error
	Load(ctx context.Context, id string) (*workflow.State, error)
	List(ctx context.Context) ([]SessionInfo, error)
	Delete(ctx context.Context, id string) error
}
