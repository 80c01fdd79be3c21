package game

// EvaluateHandSizes scores a cut-off playout by the share of cards held by the
// opponent: holding fewer cards than the opponent is closer to a win.
func EvaluateHandSizes(s State) float64 {
	p, ok := s.(Position)
	if !ok {
		panic("unexpected state type")
	}
	gs := p.state
	mine := float64(len(gs.Hands[gs.Current]))
	theirs := float64(len(gs.Hands[1-gs.Current]))
	if mine+theirs == 0 {
		return 0.5
	}
	return theirs / (mine + theirs)
}

// EvaluateStrength also weighs the power cards each player still holds.
func EvaluateStrength(s State) float64 {
	p, ok := s.(Position)
	if !ok {
		panic("unexpected state type")
	}
	gs := p.state
	sizeScore := EvaluateHandSizes(s)
	powerScore := normalize(gs.countPower(gs.Current), gs.countPower(1-gs.Current))

	return (2*sizeScore + powerScore) / 3
}

func (gs *GameState) countPower(seat int) float64 {
	count := 0.0
	for _, id := range gs.Hands[seat] {
		if gs.EffectiveRank(id).IsPower() {
			count++
		}
	}
	return count
}

// normalize maps two tallies onto [0, 1], 0.5 when equal
func normalize(current, opponent float64) float64 {
	if current+opponent == 0 {
		return 0.5
	}
	return current / (current + opponent)
}
