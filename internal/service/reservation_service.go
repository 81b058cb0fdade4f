// Package service orchestrates the reservation lifecycle: validation,
// existence checks, the availability decision and the paired persistence of
// reservation records and table claims.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/dinespot/table-reservation/internal/booking"
	"github.com/dinespot/table-reservation/internal/model"
	"github.com/dinespot/table-reservation/internal/queue"
	"github.com/dinespot/table-reservation/internal/repository"
)

// isNotFound unwraps the store's sentinel so the lifecycle can attach the
// missing resource's name.
func isNotFound(err error) bool { return errors.Is(err, repository.ErrNotFound) }

// contactPattern accepts phone-number-like contact strings: digits, spaces,
// dashes, plus signs and parentheses.
var contactPattern = regexp.MustCompile(`^[0-9\s\-+()]+$`)

// hexIDPattern mirrors utils.IsHexID; the service validates identifier shape
// before any store access so malformed IDs never reach MySQL.
var hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidationError marks a request that fails input validation or a business
// rule such as booking in the past. Handlers translate it into an HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError marks a missing dependency of the operation. Resource names
// the entity ("Restaurant", "Table", "Reservation") for the client message.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.Resource) }

// RestaurantStore is the slice of restaurant persistence the lifecycle
// needs.
type RestaurantStore interface {
	GetByID(ctx context.Context, id string) (*model.Restaurant, error)
}

// ReservationStore persists reservations. Create must claim the table and
// insert the record atomically, returning *booking.ConflictError when the
// table is actively booked at write time; DeleteAndRelease must tolerate a
// missing table row.
type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	DeleteAndRelease(ctx context.Context, res *model.Reservation) error
}

// EventPublisher emits reservation lifecycle events. Publish failures are
// logged and ignored; events are advisory and never block the request.
type EventPublisher interface {
	Publish(ctx context.Context, queueName string, ev queue.ReservationEvent) error
}

// CreateReservationInput is the validated-at-the-edge request payload for a
// new reservation. DateTime is the raw RFC3339 string from the client.
type CreateReservationInput struct {
	RestaurantID string `json:"restaurantId"`
	CustomerName string `json:"customerName"`
	Contact      string `json:"contact"`
	TableNumber  int    `json:"tableNumber"`
	DateTime     string `json:"dateTime"`
}

// CreatedReservation is the stored reservation enriched with restaurant and
// table context for client convenience. The extra fields are denormalised
// into the response only, never stored.
type CreatedReservation struct {
	model.Reservation
	RestaurantName string `json:"restaurantName"`
	TableSeats     int    `json:"tableSeats"`
}

// ReservationService implements the reservation lifecycle. Only confirmed
// reservations are materialised; cancellation deletes the record and an
// elapsed reservation is inferred from its date at read time.
type ReservationService struct {
	restaurants  RestaurantStore
	reservations ReservationStore
	publisher    EventPublisher // may be nil when no broker is configured
}

// NewReservationService wires the lifecycle over its stores. publisher may
// be nil, in which case no events are emitted.
func NewReservationService(restaurants RestaurantStore, reservations ReservationStore, publisher EventPublisher) *ReservationService {
	if restaurants == nil || reservations == nil {
		panic("nil store passed to NewReservationService")
	}
	return &ReservationService{
		restaurants:  restaurants,
		reservations: reservations,
		publisher:    publisher,
	}
}

// Create validates the request, checks table availability and persists the
// reservation together with the table claim. Validation happens strictly
// before any side effect. Error types returned:
//   - *ValidationError for missing/malformed input or a non-future date
//   - *NotFoundError when the restaurant or table does not exist
//   - *booking.ConflictError when the table carries an active booking
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (*CreatedReservation, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Contact = strings.TrimSpace(in.Contact)

	if in.RestaurantID == "" || in.CustomerName == "" || in.Contact == "" || in.TableNumber == 0 || in.DateTime == "" {
		return nil, &ValidationError{Message: "Missing required fields"}
	}
	if !hexIDPattern.MatchString(in.RestaurantID) {
		return nil, &ValidationError{Message: "Invalid restaurant ID format"}
	}
	if !contactPattern.MatchString(in.Contact) {
		return nil, &ValidationError{Message: "Invalid contact format"}
	}
	at, err := time.Parse(time.RFC3339, in.DateTime)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date format"}
	}
	at = at.UTC()
	now := time.Now().UTC()
	if !at.After(now) {
		return nil, &ValidationError{Message: "Reservation date must be in the future"}
	}

	rest, err := s.restaurants.GetByID(ctx, in.RestaurantID)
	if err != nil {
		if isNotFound(err) {
			return nil, &NotFoundError{Resource: "Restaurant"}
		}
		return nil, err
	}
	table := booking.FindTable(rest.Tables, in.TableNumber)
	if table == nil {
		return nil, &NotFoundError{Resource: "Table"}
	}
	// Fast-fail on the loaded snapshot; the store repeats this check under
	// lock, so losing a race still yields a conflict rather than a double
	// booking.
	if err := booking.CheckAndReserve(table, at, now); err != nil {
		return nil, err
	}

	res := &model.Reservation{
		RestaurantID: in.RestaurantID,
		CustomerName: in.CustomerName,
		Contact:      in.Contact,
		TableNumber:  in.TableNumber,
		DateTime:     at,
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		if isNotFound(err) {
			return nil, &NotFoundError{Resource: "Table"}
		}
		return nil, err
	}

	s.publish(ctx, queue.ConfirmedQueue, queue.ReservationEvent{
		ReservationID:  res.ID,
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		CustomerName:   res.CustomerName,
		TableNumber:    res.TableNumber,
		TableSeats:     table.Seats,
		DateTime:       res.DateTime.Format(time.RFC3339),
		OccurredAt:     now.Format(time.RFC3339),
	})

	return &CreatedReservation{
		Reservation:    *res,
		RestaurantName: rest.Name,
		TableSeats:     table.Seats,
	}, nil
}

// Cancel deletes a reservation and releases its table. Past reservations
// are not cancellable. A restaurant or table that has since disappeared
// does not block the cancellation; the record is deleted regardless.
func (s *ReservationService) Cancel(ctx context.Context, id string) error {
	if !hexIDPattern.MatchString(id) {
		return &ValidationError{Message: "Invalid reservation ID format"}
	}
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return &NotFoundError{Resource: "Reservation"}
		}
		return err
	}
	now := time.Now().UTC()
	if res.DateTime.Before(now) {
		return &ValidationError{Message: "Cannot cancel past reservations"}
	}
	if err := s.reservations.DeleteAndRelease(ctx, res); err != nil {
		if isNotFound(err) {
			// Deleted concurrently; treat as gone.
			return &NotFoundError{Resource: "Reservation"}
		}
		return err
	}

	s.publish(ctx, queue.CancelledQueue, queue.ReservationEvent{
		ReservationID: res.ID,
		RestaurantID:  res.RestaurantID,
		CustomerName:  res.CustomerName,
		TableNumber:   res.TableNumber,
		DateTime:      res.DateTime.Format(time.RFC3339),
		OccurredAt:    now.Format(time.RFC3339),
	})
	return nil
}

func (s *ReservationService) publish(ctx context.Context, queueName string, ev queue.ReservationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, queueName, ev); err != nil {
		log.Printf("reservation-service: publish %s failed: %v", queueName, err)
	}
}
