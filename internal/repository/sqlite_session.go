package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NamiSwwaan/crewplan/internal/db"
	"github.com/NamiSwwaan/crewplan/internal/workflow"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database. The
// session record is stored as one JSON document per row.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Save(ctx context.Context, id string, state *workflow.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", id, err)
	}

	now := nowUTC()
	query := `INSERT INTO sessions (id, state, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, id, string(data), now, now); err != nil {
		return fmt.Errorf("saving session %s: %w", id, err)
	}
	return nil
}

// Load returns the stored session record. A missing row and a corrupt
// record both map to ErrNotFound: either way the caller starts fresh.
func (r *SQLiteSessionRepo) Load(ctx context.Context, id string) (*workflow.State, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT state FROM sessions WHERE id = ?`, id).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}

	var state workflow.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("session %s has corrupt state: %w", id, ErrNotFound)
	}
	return &state, nil
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]SessionInfo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, updated_at FROM sessions ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var infos []SessionInfo
	for rows.Next() {
		var info SessionInfo
		var created, updated string
		if err := rows.Scan(&info.ID, &created, &updated); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339, created)
		info.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session rows: %w", err)
	}
	return infos, nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
