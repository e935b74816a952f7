package game

import (
	"fmt"
	"strings"
)

const (
	DefaultPlayerName = "Player"
	DefaultPlayerAge  = 18

	startingEnergy     = 70
	startingMotivation = 60

	statMin = 0
	statMax = 100
)

type PlayerState struct {
	Name        string
	Age         int
	Energy      int
	Motivation  int
	Performance int
	Day         int
}

// NewPlayer normalises name and age and returns a player on day 1 with the
// starting stats.
func NewPlayer(name string, age int) PlayerState {
	return PlayerState{
		Name:        normaliseName(name),
		Age:         normaliseAge(age),
		Energy:      startingEnergy,
		Motivation:  startingMotivation,
		Performance: 0,
		Day:         1,
	}
}

func normaliseName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlayerName
	}
	return name
}

func normaliseAge(age int) int {
	if age < 0 {
		return DefaultPlayerAge
	}
	return age
}

func (p *PlayerState) SetEnergy(v int) {
	p.Energy = clampStat(v)
}

func (p *PlayerState) SetMotivation(v int) {
	p.Motivation = clampStat(v)
}

// AddPerformance applies delta without letting performance drop below zero.
func (p *PlayerState) AddPerformance(delta int) {
	p.Performance = max(0, p.Performance+delta)
}

func (p *PlayerState) StatusSummary() string {
	return fmt.Sprintf("Day %d - Energy: %d, Motivation: %d, Performance: %d",
		p.Day, p.Energy, p.Motivation, p.Performance)
}
