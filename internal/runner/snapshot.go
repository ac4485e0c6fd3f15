package runner

// Snapshot is the read-only view of a session's state at a tick boundary,
// consumed by the renderer. It shares nothing with the live session.
type Snapshot struct {
	Tick      uint64
	State     State
	Degraded  bool
	Score     int
	Player    Box
	Obstacles []Obstacle
}

// Snapshot captures the current state. The obstacle slice is copied so the
// caller can hold it across ticks.
func (s *Session) Snapshot() Snapshot {
	live := s.field.Obstacles()
	obstacles := make([]Obstacle, len(live))
	copy(obstacles, live)

	return Snapshot{
		Tick:      s.tick,
		State:     s.state,
		Degraded:  s.degraded,
		Score:     s.score,
		Player:    s.PlayerBox(),
		Obstacles: obstacles,
	}
}
