package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dinespot/table-reservation/internal/booking"
	"github.com/dinespot/table-reservation/internal/model"
	"github.com/dinespot/table-reservation/internal/repository"
	"github.com/dinespot/table-reservation/internal/utils"
)

// ReviewHandler serves review submission and the per-restaurant review
// listing with aggregated statistics.
type ReviewHandler struct {
	Reviews     *repository.ReviewRepo
	Restaurants *repository.RestaurantRepo
	Env         string
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(reviews *repository.ReviewRepo, restaurants *repository.RestaurantRepo, env string) *ReviewHandler {
	if reviews == nil || restaurants == nil {
		panic("nil repository passed to NewReviewHandler")
	}
	return &ReviewHandler{Reviews: reviews, Restaurants: restaurants, Env: env}
}

// Create handles POST /reviews. Rating must be an integer between 1 and 5;
// the comment is optional and trimmed. The response carries the restaurant
// name and its recomputed average so clients can refresh without another
// round trip.
func (h *ReviewHandler) Create(c echo.Context) error {
	var body struct {
		RestaurantID string `json:"restaurantId"`
		CustomerName string `json:"customerName"`
		Rating       int    `json:"rating"`
		Comment      string `json:"comment"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, h.Env, http.StatusBadRequest, "Invalid request body", err)
	}
	body.CustomerName = strings.TrimSpace(body.CustomerName)
	if body.RestaurantID == "" || body.CustomerName == "" || body.Rating == 0 {
		return fail(c, h.Env, http.StatusBadRequest, "Missing required fields", nil)
	}
	if !utils.IsHexID(body.RestaurantID) {
		return fail(c, h.Env, http.StatusBadRequest, "Invalid restaurant ID format", nil)
	}
	if body.Rating < 1 || body.Rating > 5 {
		return fail(c, h.Env, http.StatusBadRequest, "Rating must be a number between 1 and 5", nil)
	}

	ctx := c.Request().Context()
	restaurantName, err := h.Restaurants.NameByID(ctx, body.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, h.Env, http.StatusNotFound, "Restaurant not found", nil)
		}
		return fail(c, h.Env, http.StatusInternalServerError, "Error submitting review", err)
	}

	review := &model.Review{
		RestaurantID: body.RestaurantID,
		CustomerName: body.CustomerName,
		Rating:       body.Rating,
		Comment:      strings.TrimSpace(body.Comment),
	}
	if err := h.Reviews.Create(ctx, review); err != nil {
		return fail(c, h.Env, http.StatusInternalServerError, "Error submitting review", err)
	}

	ratings, err := h.Reviews.RatingsByRestaurant(ctx, body.RestaurantID)
	if err != nil {
		return fail(c, h.Env, http.StatusInternalServerError, "Error submitting review", err)
	}
	stats := booking.AggregateRatings(ratings)

	return c.JSON(http.StatusCreated, echo.Map{
		"message":             "Review submitted successfully",
		"review":              review,
		"restaurantName":      restaurantName,
		"restaurantAvgRating": stats.Average,
	})
}

// List handles GET /reviews/:id. Reviews are sortable by date or rating in
// either direction (default: date descending) and come with the full rating
// aggregate: average, total and per-star distribution. stats is null when
// the restaurant has no reviews yet.
func (h *ReviewHandler) List(c echo.Context) error {
	restaurantID := c.Param("id")
	if !utils.IsHexID(restaurantID) {
		return fail(c, h.Env, http.StatusBadRequest, "Invalid restaurant ID format", nil)
	}
	page, limit := pageParams(c)
	sort := c.QueryParam("sort")
	order := c.QueryParam("order")

	ctx := c.Request().Context()
	restaurantName, err := h.Restaurants.NameByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, h.Env, http.StatusNotFound, "Restaurant not found", nil)
		}
		return fail(c, h.Env, http.StatusInternalServerError, "Error fetching reviews", err)
	}

	reviews, total, err := h.Reviews.ListByRestaurant(ctx, restaurantID, sort, order, page, limit)
	if err != nil {
		return fail(c, h.Env, http.StatusInternalServerError, "Error fetching reviews", err)
	}
	ratings, err := h.Reviews.RatingsByRestaurant(ctx, restaurantID)
	if err != nil {
		return fail(c, h.Env, http.StatusInternalServerError, "Error fetching reviews", err)
	}

	var stats interface{}
	if len(ratings) > 0 {
		agg := booking.AggregateRatings(ratings)
		stats = echo.Map{
			"averageRating":      agg.Average,
			"totalReviews":       agg.Count,
			"ratingDistribution": agg.Distribution,
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"restaurantName": restaurantName,
		"reviews":        reviews,
		"stats":          stats,
		"pagination":     repository.NewPagination(page, limit, total),
	})
}
