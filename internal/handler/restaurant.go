package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dinespot/table-reservation/internal/booking"
	"github.com/dinespot/table-reservation/internal/repository"
	"github.com/dinespot/table-reservation/internal/utils"
)

// RestaurantHandler serves the public browse endpoints: the paginated
// restaurant listing and the detail view with computed table availability.
type RestaurantHandler struct {
	Restaurants *repository.RestaurantRepo
	Reviews     *repository.ReviewRepo
	Env         string
}

// NewRestaurantHandler constructs a RestaurantHandler. All repositories
// must be non-nil.
func NewRestaurantHandler(restaurants *repository.RestaurantRepo, reviews *repository.ReviewRepo, env string) *RestaurantHandler {
	if restaurants == nil || reviews == nil {
		panic("nil repository passed to NewRestaurantHandler")
	}
	return &RestaurantHandler{Restaurants: restaurants, Reviews: reviews, Env: env}
}

// listedRestaurant is a listing row annotated with its aggregated rating.
type listedRestaurant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	AvgRating   *float64 `json:"avgRating"`
	ReviewCount int      `json:"reviewCount"`
}

// List handles GET /restaurants. It supports free-text search against name
// or location plus page/limit pagination, and annotates every row with its
// average rating and review count. The per-item rating queries are fine at
// current dataset sizes.
func (h *RestaurantHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	search := c.QueryParam("search")
	ctx := c.Request().Context()

	restaurants, total, err := h.Restaurants.List(ctx, search, page, limit)
	if err != nil {
		return fail(c, h.Env, http.StatusInternalServerError, "Error fetching restaurants", err)
	}

	items := make([]listedRestaurant, 0, len(restaurants))
	for _, rest := range restaurants {
		ratings, err := h.Reviews.RatingsByRestaurant(ctx, rest.ID)
		if err != nil {
			return fail(c, h.Env, http.StatusInternalServerError, "Error fetching restaurants", err)
		}
		stats := booking.AggregateRatings(ratings)
		items = append(items, listedRestaurant{
			ID:          rest.ID,
			Name:        rest.Name,
			Location:    rest.Location,
			Description: rest.Description,
			AvgRating:   stats.Average,
			ReviewCount: stats.Count,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"restaurants": items,
		"pagination":  repository.NewPagination(page, limit, total),
	})
}

// Get handles GET /restaurants/:id. The optional date query parameter
// (RFC3339) selects the instant availability is computed for; it defaults
// to now. Available tables are derived with the same lazy-expiry predicate
// the booking engine applies, and the ten most recent reviews accompany the
// full rating aggregate.
func (h *RestaurantHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if !utils.IsHexID(id) {
		return fail(c, h.Env, http.StatusBadRequest, "Invalid restaurant ID format", nil)
	}
	at := time.Now().UTC()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fail(c, h.Env, http.StatusBadRequest, "Invalid date format", err)
		}
		at = parsed.UTC()
	}

	ctx := c.Request().Context()
	rest, err := h.Restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, h.Env, http.StatusNotFound, "Restaurant not found", nil)
		}
		return fail(c, h.Env, http.StatusInternalServerError, "Error fetching restaurant details", err)
	}

	reviews, err := h.Reviews.Recent(ctx, id, 10)
	if err != nil {
		return fail(c, h.Env, http.StatusInternalServerError, "Error fetching restaurant details", err)
	}
	ratings, err := h.Reviews.RatingsByRestaurant(ctx, id)
	if err != nil {
		return fail(c, h.Env, http.StatusInternalServerError, "Error fetching restaurant details", err)
	}
	stats := booking.AggregateRatings(ratings)

	return c.JSON(http.StatusOK, echo.Map{
		"id":              rest.ID,
		"name":            rest.Name,
		"location":        rest.Location,
		"description":     rest.Description,
		"tables":          rest.Tables,
		"availableTables": booking.AvailableTables(rest.Tables, at),
		"reviews":         reviews,
		"avgRating":       stats.Average,
		"reviewCount":     stats.Count,
	})
}
