package runner

import "testing"

func TestBoxOverlapsClosedIntervals(t *testing.T) {
	player := Box{X: 10, Y: 10, W: 4, H: 4}

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"clearly apart", Box{X: 30, Y: 10, W: 4, H: 4}, false},
		{"clearly overlapping", Box{X: 12, Y: 12, W: 4, H: 4}, true},
		{"coincident", Box{X: 10, Y: 10, W: 4, H: 4}, true},
		{"contained", Box{X: 11, Y: 11, W: 1, H: 1}, true},
		// Touching edges count as collision. This is a deliberate policy
		// choice: closed intervals on both axes.
		{"touching right edge", Box{X: 14, Y: 10, W: 4, H: 4}, true},
		{"touching left edge", Box{X: 6, Y: 10, W: 4, H: 4}, true},
		{"touching bottom edge", Box{X: 10, Y: 14, W: 4, H: 4}, true},
		{"touching top edge", Box{X: 10, Y: 6, W: 4, H: 4}, true},
		{"touching corner", Box{X: 14, Y: 14, W: 4, H: 4}, true},
		{"past right edge", Box{X: 14.001, Y: 10, W: 4, H: 4}, false},
		{"overlap on x only", Box{X: 12, Y: 20, W: 4, H: 4}, false},
		{"overlap on y only", Box{X: 20, Y: 12, W: 4, H: 4}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Overlaps(tc.other); got != tc.want {
				t.Errorf("Overlaps(%+v) = %v, expected %v", tc.other, got, tc.want)
			}
			// Overlap is symmetric
			if got := tc.other.Overlaps(player); got != tc.want {
				t.Errorf("reverse Overlaps(%+v) = %v, expected %v", tc.other, got, tc.want)
			}
		})
	}
}

func TestFirstCollisionTieBreaksOnSpawnOrder(t *testing.T) {
	player := Box{X: 10, Y: 10, W: 10, H: 10}
	obstacles := []Obstacle{
		{ID: 3, X: 100, Y: 100, W: 2, H: 2}, // No overlap
		{ID: 5, X: 12, Y: 12, W: 2, H: 2},   // Overlaps, earliest in field order
		{ID: 7, X: 14, Y: 14, W: 2, H: 2},   // Also overlaps
	}

	id, ok := FirstCollision(player, obstacles)
	if !ok {
		t.Fatal("expected a collision")
	}
	if id != 5 {
		t.Errorf("FirstCollision = %d, expected first in field order 5", id)
	}
}

func TestFirstCollisionNone(t *testing.T) {
	player := Box{X: 0, Y: 0, W: 1, H: 1}
	obstacles := []Obstacle{
		{ID: 1, X: 50, Y: 0, W: 2, H: 2},
	}

	if _, ok := FirstCollision(player, obstacles); ok {
		t.Error("expected no collision")
	}
	if _, ok := FirstCollision(player, nil); ok {
		t.Error("expected no collision on empty field")
	}
}
