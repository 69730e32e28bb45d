package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"borapassageiro/api/models"
)

type IntegrationStore struct {
	db *sql.DB
}

func NewIntegrationStore(db *sql.DB) *IntegrationStore {
	return &IntegrationStore{db: db}
}

// ListConfigs returns every stored credential blob keyed by platform.
func (s *IntegrationStore) ListConfigs(ctx context.Context) (map[models.Platform]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, data FROM integration_configs;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list integration configs: %w", err)
	}
	defer rows.Close()

	configs := make(map[models.Platform]json.RawMessage)
	for rows.Next() {
		var (
			key  string
			data []byte
		)
		if err := rows.Scan(&key, &data); err != nil {
			return nil, fmt.Errorf("failed to scan integration config row: %w", err)
		}
		configs[models.Platform(key)] = json.RawMessage(data)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during integration config listing: %w", err)
	}

	return configs, nil
}

// GetConfig returns one platform's credential blob, or sql.ErrNoRows when
// none is stored.
func (s *IntegrationStore) GetConfig(ctx context.Context, key models.Platform) (json.RawMessage, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM integration_configs WHERE key = $1;`, string(key),
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get integration config %q: %w", key, err)
	}
	return json.RawMessage(data), nil
}

// UpsertConfig stores the credential blob for a platform, replacing any
// previous row. The key column is the primary key, so a single row per
// platform holds at all times.
func (s *IntegrationStore) UpsertConfig(ctx context.Context, key models.Platform, data json.RawMessage) (*models.IntegrationConfig, error) {
	query := `
		INSERT INTO integration_configs (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
		RETURNING key, data, updated_at;
	`
	cfg := &models.IntegrationConfig{}
	var (
		keyOut  string
		dataOut []byte
	)
	err := s.db.QueryRowContext(ctx, query, string(key), []byte(data)).Scan(&keyOut, &dataOut, &cfg.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert integration config %q: %w", key, err)
	}
	cfg.Key = models.Platform(keyOut)
	cfg.Data = json.RawMessage(dataOut)
	return cfg, nil
}
