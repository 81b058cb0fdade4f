// Package queue defines message payloads exchanged over the message broker
// and the background consumer that audits them.
package queue

// Queue names for the reservation lifecycle events.
const (
	ConfirmedQueue = "reservation.confirmed"
	CancelledQueue = "reservation.cancelled"
)

// ReservationEvent is published when a reservation is confirmed or
// cancelled. It carries enough denormalised context for downstream
// consumers to log or notify without querying the primary database.
type ReservationEvent struct {
	ReservationID  string `json:"reservation_id"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	CustomerName   string `json:"customer_name"`
	TableNumber    int    `json:"table_number"`
	TableSeats     int    `json:"table_seats,omitempty"`
	DateTime       string `json:"date_time"`
	OccurredAt     string `json:"occurred_at"`
}
