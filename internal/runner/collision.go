package runner

// Outcome is the per-frame classification of a player/enemy pair.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLethal
	OutcomeScore
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeLethal:
		return "Lethal"
	case OutcomeScore:
		return "Score"
	default:
		return "Unknown"
	}
}

// Lethal reports whether the player and enemy boxes overlap.
func Lethal(p Player, e Enemy) bool {
	return p.Rect().Intersects(e.Rect())
}

// Dodged reports whether the enemy's right edge is strictly left of the
// player's left edge. It ignores whether the enemy already scored.
func Dodged(p Player, e Enemy) bool {
	return e.X+e.W < p.X
}

// Classify evaluates both predicates for one enemy. Lethal takes priority;
// a dodge scores once per enemy, so Classify marks e as Passed when it
// returns OutcomeScore.
func Classify(p Player, e *Enemy) Outcome {
	if Lethal(p, *e) {
		return OutcomeLethal
	}
	if !e.Passed && Dodged(p, *e) {
		e.Passed = true
		return OutcomeScore
	}
	return OutcomeNone
}
