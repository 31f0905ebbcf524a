package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"atelier/internal/storage"
)

func (s *Storage) GetAllClients(ctx context.Context) ([]storage.Client, error) {
	const op = "storage.mysql.GetAllClients"

	query := `
		SELECT id, first_name, last_name, phone, email, address
		FROM clients
		ORDER BY last_name ASC, first_name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var clients []storage.Client
	for rows.Next() {
		var c storage.Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.Address); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (s *Storage) GetClient(ctx context.Context, id string) (*storage.Client, error) {
	const op = "storage.mysql.GetClient"

	query := `
		SELECT id, first_name, last_name, phone, email, address
		FROM clients
		WHERE id = ?
	`

	var c storage.Client
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.Address,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: id=%s: %w", op, id, storage.ErrClientNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

func (s *Storage) CountClients(ctx context.Context) (int, error) {
	const op = "storage.mysql.CountClients"

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (s *Storage) SaveClient(ctx context.Context, c storage.Client) error {
	const op = "storage.mysql.SaveClient"

	query := `
		INSERT INTO clients (id, first_name, last_name, phone, email, address)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, c.ID, c.FirstName, c.LastName, c.Phone, c.Email, c.Address)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateClient(ctx context.Context, c storage.Client) error {
	const op = "storage.mysql.UpdateClient"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var exists string
	err = tx.QueryRowContext(ctx, `SELECT id FROM clients WHERE id = ?`, c.ID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: id=%s: %w", op, c.ID, storage.ErrClientNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE clients
		SET first_name = ?, last_name = ?, phone = ?, email = ?, address = ?
		WHERE id = ?
	`

	_, err = tx.ExecContext(ctx, query, c.FirstName, c.LastName, c.Phone, c.Email, c.Address, c.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

// DeleteClient refuses to delete a client that still owns orders, so the
// financial history behind those orders can never silently disappear.
func (s *Storage) DeleteClient(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteClient"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var orderCount int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE client_id = ?`, id).Scan(&orderCount)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if orderCount > 0 {
		return fmt.Errorf("%s: id=%s has %d orders: %w", op, id, orderCount, storage.ErrClientHasOrders)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: id=%s: %w", op, id, storage.ErrClientNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
