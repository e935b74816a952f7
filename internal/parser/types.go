package parser

import "errors"

var (
	// ErrInputFormat reports input that is not a number (or, with word
	// commands enabled, not a recognised command word).
	ErrInputFormat = errors.New("not a number")
	// ErrInvalidChoice reports a number outside the menu.
	ErrInvalidChoice = errors.New("invalid menu choice")
)

type ChoiceSource string

const (
	SourceNumber ChoiceSource = "number"
	SourceExact  ChoiceSource = "exact"
	SourceAlias  ChoiceSource = "alias"
	SourcePrefix ChoiceSource = "prefix"
	SourceFuzzy  ChoiceSource = "lev"
)

// Choice is a resolved 1-based menu number.
type Choice struct {
	Raw        string
	Number     int
	Source     ChoiceSource
	Confidence float64
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	Number    int
}
