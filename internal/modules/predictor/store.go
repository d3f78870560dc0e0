// README: Model artifact registry backed by PostgreSQL (read only).
package predictor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrArtifactNotFound = errors.New("model artifact not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Latest returns the payload of the highest version stored under name.
func (s *Store) Latest(ctx context.Context, name string) ([]byte, error) {
	row := s.db.QueryRow(ctx, `
		SELECT payload
		FROM model_artifacts
		WHERE name = $1
		ORDER BY version DESC, created_at DESC
		LIMIT 1`, name,
	)
	var payload []byte
	err := row.Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// LoadLatest fetches and decodes the newest artifact stored under name.
func (s *Store) LoadLatest(ctx context.Context, name string, columns []string, opts ...Option) (*Model, error) {
	payload, err := s.Latest(ctx, name)
	if err != nil {
		return nil, err
	}
	m, err := Decode(payload, columns, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading model %s from registry: %w", name, err)
	}
	return m, nil
}
