package model

import "time"

// Reservation is a customer's claim on one table for one future instant.
// Only confirmed reservations are stored; a pending state is never
// persisted. Cancellation hard-deletes the record, and an elapsed
// reservation is inferred at read time from DateTime, not stored.
//
// Fields:
//  ID           – 24-char hex identifier.
//  RestaurantID – owning restaurant (existence validated on create).
//  CustomerName – trimmed customer display name.
//  Contact      – trimmed phone-like contact string.
//  TableNumber  – table claimed, resolved within the restaurant's table list.
//  DateTime     – reserved instant, strictly in the future at creation.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – timestamp of last update.
type Reservation struct {
	ID           string    `json:"id"`           // reservations.id
	RestaurantID string    `json:"restaurantId"` // reservations.restaurant_id
	CustomerName string    `json:"customerName"` // reservations.customer_name
	Contact      string    `json:"contact"`      // reservations.contact
	TableNumber  int       `json:"tableNumber"`  // reservations.table_number
	DateTime     time.Time `json:"dateTime"`     // reservations.date_time
	CreatedAt    time.Time `json:"createdAt"`    // reservations.created_at
	UpdatedAt    time.Time `json:"updatedAt"`    // reservations.updated_at
}
