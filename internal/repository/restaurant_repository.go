package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/dinespot/table-reservation/internal/model"
	"github.com/dinespot/table-reservation/internal/utils"
)

// RestaurantRepo provides read and seed access to restaurants and their
// embedded table lists. Reservation-state mutations of tables are owned by
// ReservationRepo because they must commit atomically with the reservation
// record; this repository only ever reads table rows.
type RestaurantRepo struct {
	db *sql.DB
}

// NewRestaurantRepo returns a RestaurantRepo bound to the given database.
func NewRestaurantRepo(db *sql.DB) *RestaurantRepo { return &RestaurantRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions that
// span repositories.
func (r *RestaurantRepo) DB() *sql.DB { return r.db }

// Create inserts a restaurant together with its table list. It is used by
// the seed importer. A fresh ID is generated when the record has none.
func (r *RestaurantRepo) Create(ctx context.Context, rest *model.Restaurant) error {
	if rest.ID == "" {
		id, err := utils.NewID()
		if err != nil {
			return err
		}
		rest.ID = id
	}
	now := time.Now().UTC()
	rest.CreatedAt = now
	rest.UpdatedAt = now

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

	const q = `INSERT INTO restaurants (id, name, location, description, created_at, updated_at)
	           VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, q, rest.ID, rest.Name, rest.Location, rest.Description, now, now); err != nil {
		return err
	}
	if len(rest.Tables) > 0 {
		query := `INSERT INTO restaurant_tables (restaurant_id, table_number, seats, is_reserved, reservation_date) VALUES `
		args := make([]interface{}, 0, len(rest.Tables)*5)
		for i, t := range rest.Tables {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?, ?)"
			args = append(args, rest.ID, t.TableNumber, t.Seats, t.IsReserved, t.ReservationDate)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByID loads a restaurant and its table list ordered by table number.
// It returns ErrNotFound when no restaurant with the given ID exists.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	const q = `SELECT id, name, location, description, created_at, updated_at
	           FROM restaurants WHERE id = ?`
	var rest model.Restaurant
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&rest.ID, &rest.Name, &rest.Location, &rest.Description, &rest.CreatedAt, &rest.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	const tq = `SELECT table_number, seats, is_reserved, reservation_date
	            FROM restaurant_tables WHERE restaurant_id = ?
	            ORDER BY table_number`
	rows, err := r.db.QueryContext(ctx, tq, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rest.Tables = make([]model.Table, 0)
	for rows.Next() {
		var t model.Table
		var resDate sql.NullTime
		if err := rows.Scan(&t.TableNumber, &t.Seats, &t.IsReserved, &resDate); err != nil {
			return nil, err
		}
		if resDate.Valid {
			d := resDate.Time.UTC()
			t.ReservationDate = &d
		}
		rest.Tables = append(rest.Tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rest, nil
}

// Count returns the total number of restaurants. The seed importer uses it
// to detect an already populated database.
func (r *RestaurantRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// NameByID returns only the restaurant's display name, used for response
// enrichment without loading the table list.
func (r *RestaurantRepo) NameByID(ctx context.Context, id string) (string, error) {
	const q = `SELECT name FROM restaurants WHERE id = ?`
	var name string
	err := r.db.QueryRowContext(ctx, q, id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

// List returns a page of restaurants matching the free-text search, together
// with the total match count. The search term matches name OR location as a
// case-insensitive substring; an empty term matches everything. Table lists
// are not loaded for listings.
func (r *RestaurantRepo) List(ctx context.Context, search string, page, limit int) ([]model.Restaurant, int, error) {
	page, limit, offset := PageBounds(page, limit)

	where := ""
	args := []interface{}{}
	if search != "" {
		// Collation on the columns is case-insensitive; LIKE suffices.
		where = ` WHERE name LIKE CONCAT('%', ?, '%') OR location LIKE CONCAT('%', ?, '%')`
		args = append(args, search, search)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT id, name, location, description FROM restaurants` + where +
		` ORDER BY name LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := make([]model.Restaurant, 0, limit)
	for rows.Next() {
		var rest model.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Location, &rest.Description); err != nil {
			return nil, 0, err
		}
		out = append(out, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
