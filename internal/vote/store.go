package vote

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides database operations for votes
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new vote store
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Insert records a vote for the given editor and returns the stored row
func (s *Store) Insert(ctx context.Context, editorID int) (*Vote, error) {
	v := &Vote{Editor: editorID}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO votes (editor)
		VALUES ($1)
		RETURNING id, voted
	`, editorID).Scan(&v.ID, &v.Voted)
	if err != nil {
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}
	return v, nil
}

// Stats computes the aggregate vote summary. The tally lists every
// editor in the directory, zero-filled, in directory order.
func (s *Store) Stats(ctx context.Context, dir Directory) (*Stats, error) {
	stats := &Stats{}

	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			MIN(EXTRACT(EPOCH FROM voted))::float8,
			MAX(EXTRACT(EPOCH FROM voted))::float8
		FROM votes
	`).Scan(&stats.Total, &stats.First, &stats.Latest)
	if err != nil {
		return nil, fmt.Errorf("failed to get vote stats: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT editor, COUNT(*)
		FROM votes
		GROUP BY editor
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get vote counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var editor, count int
		if err := rows.Scan(&editor, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[editor] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vote counts: %w", err)
	}

	entries := make([]TallyEntry, 0, dir.Len())
	for _, e := range dir.Editors() {
		entries = append(entries, TallyEntry{Key: e.Key(), Count: counts[e.ID]})
	}
	stats.Votes = NewTally(entries)

	return stats, nil
}

// Range retrieves votes matching the query in ascending id order
func (s *Store) Range(ctx context.Context, q RangeQuery) (RecordList, error) {
	var list RecordList

	query := `
		SELECT id, editor, EXTRACT(EPOCH FROM voted)::float8
		FROM votes
	`
	var (
		conds []string
		args  []any
	)
	if q.From != nil {
		args = append(args, *q.From)
		conds = append(conds, fmt.Sprintf("id >= $%d", len(args)))
	}
	if q.To != nil {
		args = append(args, *q.To)
		conds = append(conds, fmt.Sprintf("id <= $%d", len(args)))
	}
	if q.Editor != nil {
		args = append(args, *q.Editor)
		conds = append(conds, fmt.Sprintf("editor = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY id"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return list, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  int64
			rec Record
		)
		if err := rows.Scan(&id, &rec.Editor, &rec.Voted); err != nil {
			return list, fmt.Errorf("failed to scan vote: %w", err)
		}
		list.Append(strconv.FormatInt(id, 10), rec)
	}
	if err := rows.Err(); err != nil {
		return list, fmt.Errorf("failed to read votes: %w", err)
	}

	return list, nil
}
