package runner

import "math"

// Ledger keeps the session score and settles it into money on game over.
type Ledger struct {
	score           int
	data            *GameData
	moneyPerHundred int
}

// Settlement is the result of converting a final score.
type Settlement struct {
	Score        int
	Earned       int
	Money        int
	HighScore    int
	NewHighScore bool
}

func newLedger(data *GameData, moneyPerHundred int) *Ledger {
	return &Ledger{data: data, moneyPerHundred: moneyPerHundred}
}

// Score returns the current score.
func (l *Ledger) Score() int {
	return l.score
}

// Dodge credits one dodged enemy: 2 points with the multiplier, else 1.
func (l *Ledger) Dodge() int {
	points := 1
	if l.data.PlayerSkills.ExtraScore {
		points = 2
	}
	l.score += points
	return points
}

// Bonus adds a flat amount to the score.
func (l *Ledger) Bonus(points int) {
	l.score += points
}

// Settle pays out round(score/100)*moneyPerHundred and records a new high
// score when it is beaten.
func (l *Ledger) Settle() Settlement {
	earned := int(math.Round(float64(l.score)/100)) * l.moneyPerHundred
	l.data.Money += earned

	newHigh := l.score > l.data.HighScore
	if newHigh {
		l.data.HighScore = l.score
	}

	return Settlement{
		Score:        l.score,
		Earned:       earned,
		Money:        l.data.Money,
		HighScore:    l.data.HighScore,
		NewHighScore: newHigh,
	}
}

// Grant adds debug money.
func (l *Ledger) Grant(amount int) {
	l.data.Money += amount
}

// ResetMoney zeroes the wallet.
func (l *Ledger) ResetMoney() {
	l.data.Money = 0
}
