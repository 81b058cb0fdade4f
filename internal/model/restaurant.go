package model

import "time"

// Table is a physical seating unit embedded in a restaurant. Tables are not
// independently addressable; they are identified by their number, which is
// unique within the owning restaurant only. IsReserved together with
// ReservationDate caches whether an active reservation currently claims the
// table. A set flag must always be paired with a non-nil ReservationDate;
// a reservation whose date has already passed no longer blocks the table.
//
// Fields:
//  TableNumber     – position of the table within the restaurant (unique per restaurant).
//  Seats           – fixed capacity of the table (2 or 4 in the seed data).
//  IsReserved      – whether an active reservation claims this table.
//  ReservationDate – instant of the claiming reservation (nil when free).
type Table struct {
	TableNumber     int        `json:"tableNumber"`     // restaurant_tables.table_number
	Seats           int        `json:"seats"`           // restaurant_tables.seats
	IsReserved      bool       `json:"isReserved"`      // restaurant_tables.is_reserved
	ReservationDate *time.Time `json:"reservationDate"` // restaurant_tables.reservation_date (nullable)
}

// Restaurant represents a venue customers can browse and book tables at.
// A restaurant owns its table list; the tables have no identity outside of
// it. Restaurants are created by the seed importer and mutated only when a
// table's reservation state changes.
//
// Fields:
//  ID          – 24-char hex identifier.
//  Name        – display name, searched case-insensitively.
//  Location    – street address, searched case-insensitively.
//  Description – optional marketing copy.
//  Tables      – embedded table list ordered by table number.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – timestamp of last update.
type Restaurant struct {
	ID          string    `json:"id"`          // restaurants.id
	Name        string    `json:"name"`        // restaurants.name
	Location    string    `json:"location"`    // restaurants.location
	Description string    `json:"description"` // restaurants.description
	Tables      []Table   `json:"tables"`      // restaurant_tables rows
	CreatedAt   time.Time `json:"createdAt"`   // restaurants.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // restaurants.updated_at
}
