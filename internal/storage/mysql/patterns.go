package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"atelier/internal/storage"
)

func (s *Storage) GetAllPatterns(ctx context.Context) ([]*storage.Pattern, error) {
	const op = "storage.mysql.GetAllPatterns"

	query := `SELECT id, name, measurements FROM patterns ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var patterns []*storage.Pattern
	for rows.Next() {
		p := &storage.Pattern{}

		var measurementsJSON string
		if err := rows.Scan(&p.ID, &p.Name, &measurementsJSON); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if err := json.Unmarshal([]byte(measurementsJSON), &p.Measurements); err != nil {
			return nil, fmt.Errorf("%s: measurements JSON for id=%s: %w", op, p.ID, err)
		}

		patterns = append(patterns, p)
	}

	return patterns, rows.Err()
}

func (s *Storage) GetPattern(ctx context.Context, id string) (*storage.Pattern, error) {
	const op = "storage.mysql.GetPattern"

	query := `SELECT id, name, measurements FROM patterns WHERE id = ?`

	p := &storage.Pattern{}
	var measurementsJSON string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &measurementsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: id=%s: %w", op, id, storage.ErrPatternNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal([]byte(measurementsJSON), &p.Measurements); err != nil {
		return nil, fmt.Errorf("%s: measurements JSON for id=%s: %w", op, id, err)
	}

	return p, nil
}

func (s *Storage) SavePattern(ctx context.Context, p storage.Pattern) error {
	const op = "storage.mysql.SavePattern"

	measurementsJSON, err := json.Marshal(p.Measurements)
	if err != nil {
		return fmt.Errorf("%s: marshal measurements: %w", op, err)
	}

	query := `INSERT INTO patterns (id, name, measurements) VALUES (?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query, p.ID, p.Name, string(measurementsJSON))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdatePattern(ctx context.Context, p storage.Pattern) error {
	const op = "storage.mysql.UpdatePattern"

	var exists string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM patterns WHERE id = ?`, p.ID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: id=%s: %w", op, p.ID, storage.ErrPatternNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	measurementsJSON, err := json.Marshal(p.Measurements)
	if err != nil {
		return fmt.Errorf("%s: marshal measurements: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE patterns SET name = ?, measurements = ? WHERE id = ?`,
		p.Name, string(measurementsJSON), p.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeletePattern(ctx context.Context, id string) error {
	const op = "storage.mysql.DeletePattern"

	res, err := s.db.ExecContext(ctx, `DELETE FROM patterns WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: id=%s: %w", op, id, storage.ErrPatternNotFound)
	}

	return nil
}
