package store

import (
	"context"
	"database/sql"
	"fmt"

	"borapassageiro/api/models"
)

type ContentStore struct {
	db *sql.DB
}

func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

// ListContent returns all content records ordered by display order. When
// activeOnly is set, inactive records are filtered out (the public listing).
func (s *ContentStore) ListContent(ctx context.Context, activeOnly bool) ([]models.SiteContent, error) {
	query := `
		SELECT id, section, type, title, url, content, is_active, display_order, created_at, updated_at
		FROM site_contents
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order ASC, id ASC;`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list site contents: %w", err)
	}
	defer rows.Close()

	contents := []models.SiteContent{}
	for rows.Next() {
		var c models.SiteContent
		if err := rows.Scan(
			&c.ID, &c.Section, &c.Type, &c.Title, &c.URL,
			&c.Content, &c.IsActive, &c.Order, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan site content row: %w", err)
		}
		contents = append(contents, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during site content listing: %w", err)
	}

	return contents, nil
}

// CreateContent inserts a new content record and returns it with its
// assigned id and timestamps.
func (s *ContentStore) CreateContent(ctx context.Context, req models.SiteContent) (*models.SiteContent, error) {
	query := `
		INSERT INTO site_contents (section, type, title, url, content, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, section, type, title, url, content, is_active, display_order, created_at, updated_at;
	`
	c := &models.SiteContent{}
	err := s.db.QueryRowContext(ctx, query,
		req.Section, req.Type, req.Title, req.URL, req.Content, req.IsActive, req.Order,
	).Scan(
		&c.ID, &c.Section, &c.Type, &c.Title, &c.URL,
		&c.Content, &c.IsActive, &c.Order, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create site content: %w", err)
	}
	return c, nil
}

// UpdateContent overwrites the record with the given id and returns the
// updated row. ErrNotFound is reported via sql.ErrNoRows.
func (s *ContentStore) UpdateContent(ctx context.Context, req models.SiteContent) (*models.SiteContent, error) {
	query := `
		UPDATE site_contents
		SET section = $2, type = $3, title = $4, url = $5, content = $6,
		    is_active = $7, display_order = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING id, section, type, title, url, content, is_active, display_order, created_at, updated_at;
	`
	c := &models.SiteContent{}
	err := s.db.QueryRowContext(ctx, query,
		req.ID, req.Section, req.Type, req.Title, req.URL, req.Content, req.IsActive, req.Order,
	).Scan(
		&c.ID, &c.Section, &c.Type, &c.Title, &c.URL,
		&c.Content, &c.IsActive, &c.Order, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update site content %d: %w", req.ID, err)
	}
	return c, nil
}

// DeleteContent removes the record with the given id. Deleting a missing id
// is reported via sql.ErrNoRows.
func (s *ContentStore) DeleteContent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM site_contents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete site content %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result for site content %d: %w", id, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
