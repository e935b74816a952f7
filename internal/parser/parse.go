package parser

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minConfidence = 0.5
	tieMargin     = 0.05
)

// MenuParser turns a line of input into a menu choice in [1, options].
// Word commands are only consulted when a registry is configured.
type MenuParser struct {
	options  int
	registry *Registry
}

func NewMenuParser(options int) *MenuParser {
	return &MenuParser{options: options}
}

// WithWords enables word commands resolved through r.
func (p *MenuParser) WithWords(r *Registry) *MenuParser {
	p.registry = r
	return p
}

// ParseChoice returns ErrInputFormat for non-numeric input and
// ErrInvalidChoice for numbers outside the menu.
func (p *MenuParser) ParseChoice(raw string) (Choice, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err == nil {
		if n < 1 || n > p.options {
			return Choice{}, fmt.Errorf("%w: %d", ErrInvalidChoice, n)
		}
		return Choice{Raw: raw, Number: n, Source: SourceNumber, Confidence: 1}, nil
	}

	if p.registry != nil {
		if choice, ok, werr := p.parseWord(raw); ok || werr != nil {
			return choice, werr
		}
	}
	return Choice{}, fmt.Errorf("%w: %q", ErrInputFormat, trimmed)
}

func (p *MenuParser) parseWord(raw string) (Choice, bool, error) {
	normalised := normaliseInput(raw)
	best, alternates := p.registry.matchCommand(normalised)
	if best.Canonical == "" || best.Score < minConfidence {
		return Choice{}, false, nil
	}
	if len(alternates) > 0 && (best.Score-alternates[0].Score) < tieMargin && alternates[0].Score > 0.65 {
		return Choice{}, false, fmt.Errorf("%w: %q could mean %s or %s", ErrInvalidChoice, normalised, best.Canonical, alternates[0].Canonical)
	}
	def, ok := p.registry.command(best.Canonical)
	if !ok || def.Number > p.options {
		return Choice{}, false, nil
	}
	return Choice{Raw: raw, Number: def.Number, Source: best.Source, Confidence: best.Score}, true, nil
}

// ParseAge reads an optional age. Blank input yields def. Input that is not
// an integer yields def and invalid=true so the caller can tell the user.
func ParseAge(raw string, def int) (age int, invalid bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return def, true
	}
	return n, false
}
