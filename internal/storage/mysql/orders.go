package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"atelier/internal/storage"
)

const selectOrderColumns = `
	SELECT o.id, o.client_id, o.guest_client_name, o.guest_client_contact,
	       o.title, o.description, o.images, o.progress_images,
	       o.delivery_date, o.total_price, o.status, o.measurements,
	       c.id, c.first_name, c.last_name, c.email
	FROM orders o
	LEFT JOIN clients c ON o.client_id = c.id
`

// GetAllOrders returns every order joined with its owning client, newest
// delivery first. A dangling client_id is tolerated: the join comes back
// empty and name resolution downgrades it to a display label.
func (s *Storage) GetAllOrders(ctx context.Context) ([]*storage.OrderWithClient, error) {
	const op = "storage.mysql.GetAllOrders"

	rows, err := s.db.QueryContext(ctx, selectOrderColumns+` ORDER BY o.delivery_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []*storage.OrderWithClient
	var ids []string
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	payments, err := s.loadPayments(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, o := range orders {
		o.Payments = payments[o.ID]
		if o.Payments == nil {
			o.Payments = []storage.Payment{}
		}
	}

	return orders, nil
}

func (s *Storage) GetOrder(ctx context.Context, id string) (*storage.OrderWithClient, error) {
	const op = "storage.mysql.GetOrder"

	rows, err := s.db.QueryContext(ctx, selectOrderColumns+` WHERE o.id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, fmt.Errorf("%s: id=%s: %w", op, id, storage.ErrOrderNotFound)
	}

	o, err := scanOrder(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	payments, err := s.loadPayments(ctx, []string{id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	o.Payments = payments[id]
	if o.Payments == nil {
		o.Payments = []storage.Payment{}
	}

	return o, nil
}

func (s *Storage) SaveOrder(ctx context.Context, o storage.Order) error {
	const op = "storage.mysql.SaveOrder"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	imagesJSON, progressJSON, measurementsJSON, err := marshalOrderJSON(o)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO orders
		(id, client_id, guest_client_name, guest_client_contact, title, description,
		 images, progress_images, delivery_date, total_price, status, measurements)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query,
		o.ID, o.ClientID, o.GuestClientName, o.GuestClientContact, o.Title, o.Description,
		imagesJSON, progressJSON, o.DeliveryDate, o.TotalPrice, o.Status, measurementsJSON,
	)
	if err != nil {
		return fmt.Errorf("%s: insert order id=%s: %w", op, o.ID, err)
	}

	if err := insertPayments(ctx, tx, o.ID, o.Payments); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

// UpdateOrder replaces the stored order wholesale, payments included. There
// is no partial patch here: the edit form always submits the full entity.
func (s *Storage) UpdateOrder(ctx context.Context, o storage.Order) error {
	const op = "storage.mysql.UpdateOrder"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if err := orderExists(ctx, tx, o.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	imagesJSON, progressJSON, measurementsJSON, err := marshalOrderJSON(o)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE orders
		SET client_id = ?, guest_client_name = ?, guest_client_contact = ?,
		    title = ?, description = ?, images = ?, progress_images = ?,
		    delivery_date = ?, total_price = ?, status = ?, measurements = ?
		WHERE id = ?
	`

	_, err = tx.ExecContext(ctx, query,
		o.ClientID, o.GuestClientName, o.GuestClientContact,
		o.Title, o.Description, imagesJSON, progressJSON,
		o.DeliveryDate, o.TotalPrice, o.Status, measurementsJSON,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: update order id=%s: %w", op, o.ID, err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM order_payments WHERE order_id = ?`, o.ID)
	if err != nil {
		return fmt.Errorf("%s: clear payments for id=%s: %w", op, o.ID, err)
	}
	if err := insertPayments(ctx, tx, o.ID, o.Payments); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteOrder(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteOrder"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM order_payments WHERE order_id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: id=%s: %w", op, id, storage.ErrOrderNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	const op = "storage.mysql.UpdateOrderStatus"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if err := orderExists(ctx, tx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateOrderMeasurements(ctx context.Context, id string, m storage.Measurements) error {
	const op = "storage.mysql.UpdateOrderMeasurements"

	measurementsJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("%s: marshal measurements: %w", op, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if err := orderExists(ctx, tx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE orders SET measurements = ? WHERE id = ?`, string(measurementsJSON), id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func orderExists(ctx context.Context, tx *sql.Tx, id string) error {
	var exists string
	err := tx.QueryRowContext(ctx, `SELECT id FROM orders WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("id=%s: %w", id, storage.ErrOrderNotFound)
		}
		return err
	}
	return nil
}

func insertPayments(ctx context.Context, tx *sql.Tx, orderID string, payments []storage.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO order_payments (order_id, position, amount, paid_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare payments insert: %w", err)
	}
	defer stmt.Close()

	// position preserves the entry sequence, payments are never re-sorted.
	for i, p := range payments {
		if _, err := stmt.ExecContext(ctx, orderID, i, p.Amount, p.Date); err != nil {
			return fmt.Errorf("insert payment %d for order id=%s: %w", i, orderID, err)
		}
	}

	return nil
}

func (s *Storage) loadPayments(ctx context.Context, orderIDs []string) (map[string][]storage.Payment, error) {
	payments := make(map[string][]storage.Payment)
	if len(orderIDs) == 0 {
		return payments, nil
	}

	query := `
		SELECT order_id, amount, paid_at
		FROM order_payments
		WHERE order_id IN (` + placeholders(len(orderIDs)) + `)
		ORDER BY order_id, position ASC
	`

	args := make([]interface{}, len(orderIDs))
	for i, id := range orderIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var p storage.Payment
		var paidAt time.Time
		if err := rows.Scan(&orderID, &p.Amount, &paidAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.Date = paidAt
		payments[orderID] = append(payments[orderID], p)
	}

	return payments, rows.Err()
}

func scanOrder(rows *sql.Rows) (*storage.OrderWithClient, error) {
	o := &storage.OrderWithClient{}

	var clientID, guestName, guestContact sql.NullString
	var imagesJSON string
	var progressJSON sql.NullString
	var measurementsJSON string
	var joinedID, joinedFirst, joinedLast, joinedEmail sql.NullString

	err := rows.Scan(
		&o.ID, &clientID, &guestName, &guestContact,
		&o.Title, &o.Description, &imagesJSON, &progressJSON,
		&o.DeliveryDate, &o.TotalPrice, &o.Status, &measurementsJSON,
		&joinedID, &joinedFirst, &joinedLast, &joinedEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}

	if clientID.Valid {
		o.ClientID = &clientID.String
	}
	if guestName.Valid {
		o.GuestClientName = &guestName.String
	}
	if guestContact.Valid {
		o.GuestClientContact = &guestContact.String
	}

	if err := json.Unmarshal([]byte(imagesJSON), &o.Images); err != nil {
		return nil, fmt.Errorf("images JSON for id=%s: %w", o.ID, err)
	}
	if progressJSON.Valid && progressJSON.String != "" {
		if err := json.Unmarshal([]byte(progressJSON.String), &o.ProgressImages); err != nil {
			return nil, fmt.Errorf("progress images JSON for id=%s: %w", o.ID, err)
		}
	}
	if err := json.Unmarshal([]byte(measurementsJSON), &o.Measurements); err != nil {
		return nil, fmt.Errorf("measurements JSON for id=%s: %w", o.ID, err)
	}
	if o.Images == nil {
		o.Images = []string{}
	}

	var client *storage.Client
	if joinedID.Valid {
		client = &storage.Client{
			ID:        joinedID.String,
			FirstName: joinedFirst.String,
			LastName:  joinedLast.String,
			Email:     joinedEmail.String,
		}
		o.ClientEmail = joinedEmail.String
	}
	o.ClientName = storage.ResolveClientName(&o.Order, client)

	return o, nil
}

func marshalOrderJSON(o storage.Order) (imagesJSON, progressJSON, measurementsJSON string, err error) {
	if o.Images == nil {
		o.Images = []string{}
	}
	images, err := json.Marshal(o.Images)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal images: %w", err)
	}

	if o.ProgressImages == nil {
		o.ProgressImages = []string{}
	}
	progress, err := json.Marshal(o.ProgressImages)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal progress images: %w", err)
	}

	measurements, err := json.Marshal(o.Measurements)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal measurements: %w", err)
	}

	return string(images), string(progress), string(measurements), nil
}
