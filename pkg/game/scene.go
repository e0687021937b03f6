package game

// Scene represents one running game.
// A scene owns its entities and state; drivers only call Tick at the target
// cadence and forward clicks between ticks.
type Scene interface {
	// Tick advances the scene by exactly one logical tick and issues the
	// draw calls for that tick.
	Tick()

	// HandleClick delivers a click in surface coordinates.
	// It returns false when the click was ignored.
	HandleClick(x, y float64) bool
}
