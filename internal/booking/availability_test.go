package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/dinespot/table-reservation/internal/model"
)

func TestCheckAndReserve(t *testing.T) {
	now := time.Now().UTC()

	t.Run("Free Table Is Claimed", func(t *testing.T) {
		table := model.Table{TableNumber: 1, Seats: 2}
		requested := now.Add(2 * time.Hour)

		if err := CheckAndReserve(&table, requested, now); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !table.IsReserved {
			t.Error("expected table to be marked reserved")
		}
		if table.ReservationDate == nil || !table.ReservationDate.Equal(requested) {
			t.Errorf("expected reservation date %v, got %v", requested, table.ReservationDate)
		}
	})

	t.Run("Active Booking Blocks Earlier And Later Times", func(t *testing.T) {
		booked := now.Add(2 * time.Hour)
		for _, requested := range []time.Time{now.Add(time.Hour), now.Add(3 * time.Hour)} {
			table := model.Table{TableNumber: 1, Seats: 2, IsReserved: true, ReservationDate: &booked}

			err := CheckAndReserve(&table, requested, now)
			var ce *ConflictError
			if !errors.As(err, &ce) {
				t.Fatalf("expected ConflictError for %v, got %v", requested, err)
			}
			if !ce.NextAvailable.Equal(booked) {
				t.Errorf("expected nextAvailable %v, got %v", booked, ce.NextAvailable)
			}
			if reservationDate := table.ReservationDate; !reservationDate.Equal(booked) {
				t.Error("conflict must leave the table untouched")
			}
		}
	})

	t.Run("Elapsed Booking No Longer Blocks", func(t *testing.T) {
		stale := now.Add(-time.Hour)
		table := model.Table{TableNumber: 1, Seats: 4, IsReserved: true, ReservationDate: &stale}
		requested := now.Add(time.Hour)

		if err := CheckAndReserve(&table, requested, now); err != nil {
			t.Fatalf("expected elapsed booking to be reclaimable, got %v", err)
		}
		if table.ReservationDate == nil || !table.ReservationDate.Equal(requested) {
			t.Errorf("expected reservation date %v, got %v", requested, table.ReservationDate)
		}
	})
}

func TestReleaseIsIdempotent(t *testing.T) {
	now := time.Now().UTC()
	booked := now.Add(time.Hour)
	table := model.Table{TableNumber: 3, Seats: 4, IsReserved: true, ReservationDate: &booked}

	Release(&table)
	if table.IsReserved || table.ReservationDate != nil {
		t.Fatal("expected table to be free after release")
	}

	// Releasing an already-free table must not error or change state.
	Release(&table)
	if table.IsReserved || table.ReservationDate != nil {
		t.Fatal("second release changed state")
	}
}

func TestIsActiveBooking(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	if IsActiveBooking(nil, now) {
		t.Error("nil date must not block")
	}
	if !IsActiveBooking(&future, now) {
		t.Error("future date must block")
	}
	if IsActiveBooking(&past, now) {
		t.Error("past date must not block")
	}
	if IsActiveBooking(&now, now) {
		t.Error("a date equal to now must not block")
	}
}

func TestFindTable(t *testing.T) {
	tables := []model.Table{
		{TableNumber: 1, Seats: 2},
		{TableNumber: 2, Seats: 4},
	}
	if got := FindTable(tables, 2); got == nil || got.Seats != 4 {
		t.Fatalf("expected table 2 with 4 seats, got %+v", got)
	}
	if got := FindTable(tables, 9); got != nil {
		t.Fatalf("expected nil for unknown table, got %+v", got)
	}
	// The pointer must alias the slice element so callers can mutate it.
	FindTable(tables, 1).IsReserved = true
	if !tables[0].IsReserved {
		t.Error("FindTable must return a pointer into the slice")
	}
}

func TestAvailableTables(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)
	tables := []model.Table{
		{TableNumber: 1, Seats: 2},                                          // free
		{TableNumber: 2, Seats: 2, IsReserved: true, ReservationDate: &future}, // blocked
		{TableNumber: 3, Seats: 4, IsReserved: true, ReservationDate: &past},   // lapsed
	}

	got := AvailableTables(tables, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 available tables, got %d", len(got))
	}
	if got[0].TableNumber != 1 || got[1].TableNumber != 3 {
		t.Errorf("unexpected available tables: %+v", got)
	}
}
