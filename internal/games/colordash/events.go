package colordash

// EventType identifies something that happened during a frame.
type EventType int

const (
	EventStarted EventType = iota
	EventGatePassed
	EventGameOver
	EventPowerUpActivated
	EventPowerUpExpired
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventGatePassed:
		return "gate_passed"
	case EventGameOver:
		return "game_over"
	case EventPowerUpActivated:
		return "powerup_activated"
	case EventPowerUpExpired:
		return "powerup_expired"
	default:
		return "unknown"
	}
}

// Event is emitted by the game for the platform (sound cues, logging).
type Event struct {
	Type    EventType
	Points  int          // Award for EventGatePassed
	Color   PaletteColor // Gate color for gate events
	PowerUp PowerUpType  // Power-up for activation/expiry events
	Score   int          // Score after the event
	Record  bool         // EventGameOver set a new high score
}
