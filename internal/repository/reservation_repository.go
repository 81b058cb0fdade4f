package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/dinespot/table-reservation/internal/booking"
	"github.com/dinespot/table-reservation/internal/model"
	"github.com/dinespot/table-reservation/internal/utils"
)

// ReservationRepo persists reservations and keeps the owning table's
// reservation flag consistent with them. Both writes always happen in one
// transaction: a reservation row never exists without its table claim and a
// cancelled reservation always releases the claim.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// Create inserts a confirmed reservation and claims its table in a single
// transaction. The table row is locked and re-checked inside the
// transaction, so two concurrent requests for the same table cannot both
// succeed: the loser gets a *booking.ConflictError carrying the winning
// reservation's date. ErrNotFound is returned when the table row is absent.
//
// The caller must have validated the request already; res.DateTime is
// trusted to be in the future.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	if res.ID == "" {
		id, err := utils.NewID()
		if err != nil {
			return err
		}
		res.ID = id
	}
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the table row for the duration of the transaction. The lock
	// serialises concurrent attempts on the same table; the availability
	// decision below is therefore race-free.
	const sel = `SELECT is_reserved, reservation_date FROM restaurant_tables
	             WHERE restaurant_id = ? AND table_number = ? FOR UPDATE`
	var isReserved bool
	var resDate sql.NullTime
	err = tx.QueryRowContext(ctx, sel, res.RestaurantID, res.TableNumber).Scan(&isReserved, &resDate)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	table := model.Table{TableNumber: res.TableNumber, IsReserved: isReserved}
	if resDate.Valid {
		d := resDate.Time.UTC()
		table.ReservationDate = &d
	}
	if err := booking.CheckAndReserve(&table, res.DateTime, now); err != nil {
		return err
	}

	// Compare-and-set on the claim fields. The WHERE clause repeats the
	// availability predicate so a write can only land on a free (or lapsed)
	// claim even if the lock semantics ever change.
	const upd = `UPDATE restaurant_tables
	             SET is_reserved = 1, reservation_date = ?
	             WHERE restaurant_id = ? AND table_number = ?
	               AND (is_reserved = 0 OR reservation_date IS NULL OR reservation_date <= ?)`
	result, err := tx.ExecContext(ctx, upd, res.DateTime, res.RestaurantID, res.TableNumber, now)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Lost the race after all; report the blocking date.
		next := now
		if table.ReservationDate != nil {
			next = *table.ReservationDate
		}
		return &booking.ConflictError{NextAvailable: next}
	}

	const ins = `INSERT INTO reservations (id, restaurant_id, customer_name, contact, table_number, date_time, created_at, updated_at)
	             VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, ins,
		res.ID, res.RestaurantID, res.CustomerName, res.Contact, res.TableNumber, res.DateTime, now, now,
	); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByID loads a reservation. It returns ErrNotFound when absent.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	const q = `SELECT id, restaurant_id, customer_name, contact, table_number, date_time, created_at, updated_at
	           FROM reservations WHERE id = ?`
	var res model.Reservation
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&res.ID, &res.RestaurantID, &res.CustomerName, &res.Contact,
		&res.TableNumber, &res.DateTime, &res.CreatedAt, &res.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	res.DateTime = res.DateTime.UTC()
	return &res, nil
}

// DeleteAndRelease removes the reservation record and frees its table in one
// transaction. The table release is best-effort: a missing restaurant or
// table row does not fail the cancellation, and releasing an already-free
// table is a no-op.
func (r *ReservationRepo) DeleteAndRelease(ctx context.Context, res *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const rel = `UPDATE restaurant_tables
	             SET is_reserved = 0, reservation_date = NULL
	             WHERE restaurant_id = ? AND table_number = ?`
	if _, err := tx.ExecContext(ctx, rel, res.RestaurantID, res.TableNumber); err != nil {
		return err
	}
	const del = `DELETE FROM reservations WHERE id = ?`
	result, err := tx.ExecContext(ctx, del, res.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// ListByRestaurant returns a page of a restaurant's reservations filtered by
// status relative to now: "upcoming" keeps future reservations sorted
// ascending, "past" keeps elapsed ones sorted descending, anything else
// returns all sorted ascending. The total count of matches accompanies the
// page.
func (r *ReservationRepo) ListByRestaurant(ctx context.Context, restaurantID, status string, now time.Time, page, limit int) ([]model.Reservation, int, error) {
	page, limit, offset := PageBounds(page, limit)

	where := ` WHERE restaurant_id = ?`
	args := []interface{}{restaurantID}
	order := ` ORDER BY date_time ASC`
	switch status {
	case "upcoming":
		where += ` AND date_time > ?`
		args = append(args, now)
	case "past":
		where += ` AND date_time < ?`
		args = append(args, now)
		order = ` ORDER BY date_time DESC`
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reservations`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT id, restaurant_id, customer_name, contact, table_number, date_time, created_at, updated_at
	      FROM reservations` + where + order + ` LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0, limit)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(
			&res.ID, &res.RestaurantID, &res.CustomerName, &res.Contact,
			&res.TableNumber, &res.DateTime, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		res.DateTime = res.DateTime.UTC()
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
