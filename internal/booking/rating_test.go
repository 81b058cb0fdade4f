package booking

import "testing"

func TestAggregateRatings(t *testing.T) {
	t.Run("Empty Set Has Nil Average", func(t *testing.T) {
		stats := AggregateRatings(nil)
		if stats.Average != nil {
			t.Errorf("expected nil average, got %v", *stats.Average)
		}
		if stats.Count != 0 {
			t.Errorf("expected count 0, got %d", stats.Count)
		}
		for star := 1; star <= 5; star++ {
			if n, ok := stats.Distribution[star]; !ok || n != 0 {
				t.Errorf("expected zero bucket for %d stars, got %d (present=%v)", star, n, ok)
			}
		}
	})

	t.Run("Average Rounds To One Decimal", func(t *testing.T) {
		stats := AggregateRatings([]int{5, 4, 5})
		if stats.Average == nil {
			t.Fatal("expected an average")
		}
		if *stats.Average != 4.7 {
			t.Errorf("expected 4.7, got %v", *stats.Average)
		}
		if stats.Count != 3 {
			t.Errorf("expected count 3, got %d", stats.Count)
		}
	})

	t.Run("Distribution Counts Every Bucket", func(t *testing.T) {
		stats := AggregateRatings([]int{1, 5, 5, 3, 5})
		want := map[int]int{1: 1, 2: 0, 3: 1, 4: 0, 5: 3}
		for star, n := range want {
			if stats.Distribution[star] != n {
				t.Errorf("bucket %d: expected %d, got %d", star, n, stats.Distribution[star])
			}
		}
	})

	t.Run("Single Review", func(t *testing.T) {
		stats := AggregateRatings([]int{3})
		if stats.Average == nil || *stats.Average != 3.0 {
			t.Errorf("expected 3.0, got %v", stats.Average)
		}
	})
}
