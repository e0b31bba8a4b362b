package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PGStore keeps the record as a JSONB row in resume_documents, keyed by slot.
type PGStore struct {
	pool *pgxpool.Pool
	slot string
}

func NewPGStore(pool *pgxpool.Pool, slot string) *PGStore {
	if slot == "" {
		slot = "default"
	}
	return &PGStore{pool: pool, slot: slot}
}

func (s *PGStore) Read(ctx context.Context) ([]byte, error) {
	if s.pool == nil {
		return nil, errors.New("pg store: no pool")
	}
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT document::text FROM resume_documents WHERE slot = $1`, s.slot).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *PGStore) Write(ctx context.Context, data []byte) error {
	if s.pool == nil {
		return errors.New("pg store: no pool")
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO resume_documents (slot, document, updated_at)
		VALUES ($1, $2::jsonb, $3)
		ON CONFLICT (slot) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		s.slot, string(data), time.Now().UTC())
	return err
}
