package model

import "time"

// Review is a customer's rating of a restaurant. Reviews are created only;
// they are never updated or deleted.
//
// Fields:
//  ID           – 24-char hex identifier.
//  RestaurantID – reviewed restaurant (existence validated on create).
//  CustomerName – trimmed reviewer name.
//  Rating       – integer star value, 1 through 5 inclusive.
//  Comment      – optional trimmed free text (empty string when absent).
//  Date         – review timestamp, defaults to creation time.
type Review struct {
	ID           string    `json:"id"`           // reviews.id
	RestaurantID string    `json:"restaurantId"` // reviews.restaurant_id
	CustomerName string    `json:"customerName"` // reviews.customer_name
	Rating       int       `json:"rating"`       // reviews.rating
	Comment      string    `json:"comment"`      // reviews.comment
	Date         time.Time `json:"date"`         // reviews.date
}
