package game

import "fmt"

type ActivityKind string

const (
	ActivityStudy     ActivityKind = "study"
	ActivitySocialize ActivityKind = "socialize"
	ActivityRest      ActivityKind = "rest"
	ActivityExercise  ActivityKind = "exercise"
)

// ActivityKinds lists every kind in menu order.
var ActivityKinds = []ActivityKind{
	ActivityStudy,
	ActivitySocialize,
	ActivityRest,
	ActivityExercise,
}

func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivityStudy, ActivitySocialize, ActivityRest, ActivityExercise:
		return true
	default:
		return false
	}
}

// Range is a closed integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

type Activity struct {
	Kind        ActivityKind `yaml:"kind"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Energy      Range        `yaml:"energy"`
	Motivation  Range        `yaml:"motivation"`
	Performance Range        `yaml:"performance"`
}

// Deltas are the rolled changes for one activity, before clamping.
type Deltas struct {
	Energy      int
	Motivation  int
	Performance int
}

type Outcome struct {
	Kind    ActivityKind
	Deltas  Deltas
	Message string
}

var resultMessages = map[ActivityKind]func(Deltas) string{
	ActivityStudy: func(d Deltas) string {
		return fmt.Sprintf("You studied. %+d Energy, %+d Performance.", d.Energy, d.Performance)
	},
	ActivitySocialize: func(d Deltas) string {
		return fmt.Sprintf("You socialized. %+d Energy, %+d Motivation.", d.Energy, d.Motivation)
	},
	ActivityRest: func(d Deltas) string {
		return fmt.Sprintf("You rested. %+d Energy.", d.Energy)
	},
	ActivityExercise: func(d Deltas) string {
		return fmt.Sprintf("You exercised. %+d Energy, %+d Motivation.", d.Energy, d.Motivation)
	},
}

// Roll draws the activity's deltas in energy, motivation, performance order.
func (a Activity) Roll(rng Rand) Deltas {
	return Deltas{
		Energy:      rollRange(rng, a.Energy),
		Motivation:  rollRange(rng, a.Motivation),
		Performance: rollRange(rng, a.Performance),
	}
}

// Perform applies the activity to p and returns the updated player. The
// input value is not modified. The day is left for the caller to advance.
func (a Activity) Perform(p PlayerState, rng Rand) (PlayerState, Outcome) {
	d := a.Roll(rng)
	p.SetEnergy(p.Energy + d.Energy)
	p.SetMotivation(p.Motivation + d.Motivation)
	p.AddPerformance(d.Performance)

	return p, Outcome{
		Kind:    a.Kind,
		Deltas:  d,
		Message: resultMessages[a.Kind](d),
	}
}
