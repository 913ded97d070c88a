package runner

// Snapshot is a copy of everything that evolves during a run.
// Two sessions fed the same seed, config and key script produce equal
// snapshots at the same virtual time.
type Snapshot struct {
	Frames    uint64
	Score     int
	GameOver  bool
	Player    Player
	Velocity  float64
	BaseSpeed float64
	Flashing  bool
	Enemies   []Enemy
	Data      GameData
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Frames:    s.frames.Frames(),
		Score:     s.ledger.Score(),
		GameOver:  s.gameOver,
		Player:    s.player,
		Velocity:  s.physics.Velocity,
		BaseSpeed: s.spawner.Speed(),
		Flashing:  s.abilities.Flashing(),
		Enemies:   s.spawner.Enemies(),
		Data:      *s.data,
	}
}
