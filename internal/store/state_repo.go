package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const stateTable = "kv_state"

// sqlStateRepo implements StateRepo on the kv_state table.
type sqlStateRepo struct {
	db   *sql.DB
	name string
}

func (r *sqlStateRepo) Load(ctx context.Context) (State, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("blob").
		From(entsql.Table(stateTable)).
		Where(entsql.EQ("name", r.name)).
		Query()

	var blob string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultState(), nil
	}
	if err != nil {
		return DefaultState(), fmt.Errorf("load state: %w", err)
	}
	return Decode([]byte(blob))
}

func (r *sqlStateRepo) Save(ctx context.Context, st State) error {
	blob, err := Encode(st)
	if err != nil {
		return err
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(stateTable).
		Columns("name", "blob", "updated_at").
		Values(r.name, string(blob), time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (r *sqlStateRepo) Reset(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(stateTable).
		Where(entsql.EQ("name", r.name)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	return nil
}

// MemoryRepo is a StateRepo that keeps the encoded blob in memory.
type MemoryRepo struct {
	mu    sync.Mutex
	blob  []byte
	saves int
}

// NewMemoryRepo returns an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Load(_ context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return DefaultState(), nil
	}
	return Decode(m.blob)
}

func (m *MemoryRepo) Save(_ context.Context, st State) error {
	blob, err := Encode(st)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = blob
	m.saves++
	return nil
}

func (m *MemoryRepo) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = nil
	return nil
}

// SetBlob stores raw bytes as if they had been persisted.
func (m *MemoryRepo) SetBlob(b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = b
}

// Saves reports how many times Save succeeded.
func (m *MemoryRepo) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
