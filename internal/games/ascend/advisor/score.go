package advisor

// Weights tune the scoring formula.
type Weights struct {
	ChainFactor float64 `yaml:"chain_factor"` // Multiplier added per chain reaction
	DepthMax    float64 `yaml:"depth_max"`    // Depth bonus of a row on the floor
	BossBonus   float64 `yaml:"boss_bonus"`   // Bonus per cleared boss row
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		ChainFactor: 0.5,
		DepthMax:    2.0,
		BossBonus:   1.2,
	}
}

// Score folds an outcome into a single number. The chain multiplier is
// applied to the raw clear count before the additive bonuses.
func (w Weights) Score(o Outcome) float64 {
	score := float64(o.RowsCleared)
	score *= 1 + float64(o.ChainReactions)*w.ChainFactor
	score += o.DepthBonus
	score += float64(o.BossRowsCleared) * w.BossBonus
	return score
}

// depthBonus rewards rows closer to the floor, up to DepthMax for the floor row.
func (w Weights) depthBonus(row, floorRow int) float64 {
	if floorRow <= 0 {
		return 0
	}
	return float64(row) / float64(floorRow) * w.DepthMax
}
