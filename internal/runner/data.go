package runner

// GameData is the host-owned record a session reads at start and mutates
// in place: money, high score and skill state. The host persists it; a
// session never keeps a reference after Cleanup returns.
type GameData struct {
	Skin         Sprite // equipped player skin
	Money        int
	HighScore    int
	PlayerSkills PlayerSkills
}

// PlayerSkills holds ability inventory and timers.
type PlayerSkills struct {
	ExtraScore   bool // doubles dodge points
	ShotgunSkill int  // remaining shotgun charges
	Mugen        MugenState
}

// MugenState holds the invulnerability countdowns in whole seconds.
// At most one of Active and Cooldown is non-zero.
type MugenState struct {
	Active   int
	Cooldown int
}

// NewGameData returns a fresh profile with the default skin.
func NewGameData() *GameData {
	return &GameData{Skin: SpritePlayerDefault}
}
