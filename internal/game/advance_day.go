package game

// AdvanceDay moves the player to the next day. There is no upper bound.
func (p *PlayerState) AdvanceDay() {
	p.Day++
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

func clampStat(v int) int {
	return clamp(v, statMin, statMax)
}
