package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/dinespot/table-reservation/internal/model"
	"github.com/dinespot/table-reservation/internal/utils"
)

// ReviewRepo persists restaurant reviews. Reviews are append-only.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo returns a ReviewRepo bound to the given database.
func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// Create inserts a review, generating its ID and defaulting the review date
// to the current time when unset.
func (r *ReviewRepo) Create(ctx context.Context, rev *model.Review) error {
	if rev.ID == "" {
		id, err := utils.NewID()
		if err != nil {
			return err
		}
		rev.ID = id
	}
	if rev.Date.IsZero() {
		rev.Date = time.Now().UTC()
	}
	const q = `INSERT INTO reviews (id, restaurant_id, customer_name, rating, comment, date)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		rev.ID, rev.RestaurantID, rev.CustomerName, rev.Rating, rev.Comment, rev.Date,
	)
	return err
}

// sortColumns whitelists the fields a review listing may sort by. Anything
// outside the map falls back to the review date.
var sortColumns = map[string]string{
	"date":   "date",
	"rating": "rating",
}

// ListByRestaurant returns a page of a restaurant's reviews sorted by the
// requested field and direction, with the total review count.
func (r *ReviewRepo) ListByRestaurant(ctx context.Context, restaurantID, sort, order string, page, limit int) ([]model.Review, int, error) {
	page, limit, offset := PageBounds(page, limit)

	col, ok := sortColumns[sort]
	if !ok {
		col = "date"
	}
	dir := "DESC"
	if order == "asc" {
		dir = "ASC"
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE restaurant_id = ?`, restaurantID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT id, restaurant_id, customer_name, rating, comment, date
	      FROM reviews WHERE restaurant_id = ?
	      ORDER BY ` + col + ` ` + dir + ` LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, restaurantID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := make([]model.Review, 0, limit)
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.RestaurantID, &rev.CustomerName, &rev.Rating, &rev.Comment, &rev.Date); err != nil {
			return nil, 0, err
		}
		rev.Date = rev.Date.UTC()
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Recent returns the newest reviews for a restaurant, used by the detail
// view.
func (r *ReviewRepo) Recent(ctx context.Context, restaurantID string, limit int) ([]model.Review, error) {
	const q = `SELECT id, restaurant_id, customer_name, rating, comment, date
	           FROM reviews WHERE restaurant_id = ?
	           ORDER BY date DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, restaurantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Review, 0, limit)
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.RestaurantID, &rev.CustomerName, &rev.Rating, &rev.Comment, &rev.Date); err != nil {
			return nil, err
		}
		rev.Date = rev.Date.UTC()
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RatingsByRestaurant returns just the rating values of every review for a
// restaurant, feeding the rating aggregator.
func (r *ReviewRepo) RatingsByRestaurant(ctx context.Context, restaurantID string) ([]int, error) {
	const q = `SELECT rating FROM reviews WHERE restaurant_id = ?`
	rows, err := r.db.QueryContext(ctx, q, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ratings []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		ratings = append(ratings, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}
