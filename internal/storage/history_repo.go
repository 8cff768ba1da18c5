package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Generation is one row of build telemetry. The feed files remain the
// source of truth; this table only answers "how often did we fall back".
type Generation struct {
	ID        int64
	Date      string
	Theme     string
	Mode      string
	Holiday   bool
	Attempts  int
	Fallback  bool
	CreatedAt time.Time
}

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Insert(ctx context.Context, g Generation) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO generations (date, theme, mode, holiday, attempts, fallback)
		VALUES (?, ?, ?, ?, ?, ?)
	`, g.Date, g.Theme, g.Mode, boolToInt(g.Holiday), g.Attempts, boolToInt(g.Fallback))
	if err != nil {
		return 0, fmt.Errorf("generation insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("generation last insert id: %w", err)
	}
	return id, nil
}

func (r *HistoryRepo) ListRecent(ctx context.Context, limit int) ([]Generation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, theme, mode, holiday, attempts, fallback, created_at
		FROM generations
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("generation list: %w", err)
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		var g Generation
		var holiday, fallback int
		if err := rows.Scan(&g.ID, &g.Date, &g.Theme, &g.Mode, &holiday, &g.Attempts, &fallback, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("generation scan: %w", err)
		}
		g.Holiday = holiday != 0
		g.Fallback = fallback != 0
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("generation rows: %w", err)
	}
	return out, nil
}

// Stats summarizes the generation history.
type Stats struct {
	Total     int
	Fallbacks int
	Holidays  int
}

func (r *HistoryRepo) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(fallback), 0),
			COALESCE(SUM(holiday), 0)
		FROM generations
	`)
	if err := row.Scan(&s.Total, &s.Fallbacks, &s.Holidays); err != nil {
		return s, fmt.Errorf("generation stats: %w", err)
	}
	return s, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
