// Command seed loads the demo fixture set: three restaurants with their
// table layouts and a handful of reviews. It refuses to run against a
// database that already has restaurants, so re-running it is harmless.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/dinespot/table-reservation/internal/config"
	"github.com/dinespot/table-reservation/internal/database"
	"github.com/dinespot/table-reservation/internal/model"
	"github.com/dinespot/table-reservation/internal/repository"
)

type seedReview struct {
	customerName string
	rating       int
	comment      string
}

var restaurants = []model.Restaurant{
	{
		Name:        "The Italian Corner",
		Location:    "123 Main St, Downtown",
		Description: "Authentic Italian cuisine in a cozy atmosphere. Our handmade pasta and wood-fired pizzas will transport you straight to Italy.",
		Tables: []model.Table{
			{TableNumber: 1, Seats: 2},
			{TableNumber: 2, Seats: 2},
			{TableNumber: 3, Seats: 4},
			{TableNumber: 4, Seats: 4},
			{TableNumber: 5, Seats: 4},
		},
	},
	{
		Name:        "Sushi Master",
		Location:    "456 Oak Ave, Westside",
		Description: "Premium sushi and Japanese dishes made with fresh ingredients. Experience the art of Japanese cuisine.",
		Tables: []model.Table{
			{TableNumber: 1, Seats: 2},
			{TableNumber: 2, Seats: 2},
			{TableNumber: 3, Seats: 4},
			{TableNumber: 4, Seats: 4},
		},
	},
	{
		Name:        "The Steakhouse",
		Location:    "789 Pine Rd, Eastside",
		Description: "Premium cuts of meat cooked to perfection. Our dry-aged steaks and extensive wine list create the perfect dining experience.",
		Tables: []model.Table{
			{TableNumber: 1, Seats: 2},
			{TableNumber: 2, Seats: 2},
			{TableNumber: 3, Seats: 4},
			{TableNumber: 4, Seats: 4},
			{TableNumber: 5, Seats: 4},
			{TableNumber: 6, Seats: 4},
		},
	},
}

// reviews[i] belongs to restaurants[i%len(restaurants)] so every venue gets
// some coverage.
var reviews = []seedReview{
	{"John Smith", 5, "Amazing Italian food! The pasta was perfectly cooked and the service was excellent."},
	{"Sarah Johnson", 4, "Great atmosphere and delicious food. Slightly pricey but worth it."},
	{"Mike Brown", 5, "Best sushi in town! Fresh fish and creative rolls."},
	{"Emily Davis", 4, "The steak was cooked exactly how I asked. Will come back."},
	{"Chris Wilson", 3, "Good food but the wait was longer than expected."},
	{"Anna Lee", 5, "Wonderful evening, the wine selection is excellent."},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	restaurantRepo := repository.NewRestaurantRepo(db)
	reviewRepo := repository.NewReviewRepo(db)

	existing, err := restaurantRepo.Count(ctx)
	if err != nil {
		log.Fatalf("count restaurants: %v", err)
	}
	if existing > 0 {
		log.Printf("database already has %d restaurants; nothing to do", existing)
		return
	}

	for i := range restaurants {
		if err := restaurantRepo.Create(ctx, &restaurants[i]); err != nil {
			log.Fatalf("seed restaurant %q: %v", restaurants[i].Name, err)
		}
	}
	for i, rv := range reviews {
		target := restaurants[i%len(restaurants)]
		rec := &model.Review{
			RestaurantID: target.ID,
			CustomerName: rv.customerName,
			Rating:       rv.rating,
			Comment:      rv.comment,
		}
		if err := reviewRepo.Create(ctx, rec); err != nil {
			log.Fatalf("seed review for %q: %v", target.Name, err)
		}
	}

	log.Printf("seeded %d restaurants and %d reviews", len(restaurants), len(reviews))
}
