package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" || c.Number < 1 {
		return
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, commandPhrase{canonical: c.Canonical, alias: c.Canonical})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{canonical: c.Canonical, alias: n})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

type commandCandidate struct {
	Canonical string
	Alias     string
	Score     float64
	Source    ChoiceSource
}

func (r *Registry) matchCommand(in string) (commandCandidate, []commandCandidate) {
	if in == "" {
		return commandCandidate{}, nil
	}
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if in == phrase.alias {
			score := 1.0
			source := SourceExact
			if phrase.alias != phrase.canonical {
				score = 0.97
				source = SourceAlias
			}
			cands = append(cands, commandCandidate{Canonical: phrase.canonical, Alias: phrase.alias, Score: score, Source: source})
			continue
		}

		if strings.HasPrefix(phrase.alias, in) && len(in) >= 2 {
			cands = append(cands, commandCandidate{Canonical: phrase.canonical, Alias: phrase.alias, Score: 0.9, Source: SourcePrefix})
			continue
		}

		// Fuzzy: only when there was no exact/prefix hit for this phrase.
		if len(in) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(in, phrase.alias)
		if dist > levenshteinLimit(len(phrase.alias)) {
			continue
		}
		score := 0.72 - (0.08 * float64(dist))
		if phrase.alias != phrase.canonical {
			score += 0.03
		}
		cands = append(cands, commandCandidate{Canonical: phrase.canonical, Alias: phrase.alias, Score: score, Source: SourceFuzzy})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Canonical < cands[j].Canonical
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) == 0 {
		return commandCandidate{}, nil
	}
	best := cands[0]
	alts := make([]commandCandidate, 0, 4)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

var defaultAliases = map[string][]string{
	"study":     {"learn", "read"},
	"socialize": {"socialise", "social", "hang out"},
	"rest":      {"sleep", "nap"},
	"exercise":  {"workout", "train", "gym"},
	"history":   {"log", "view history"},
	"end":       {"quit", "exit", "end simulation"},
}

// MenuRegistry registers each activity name under its menu number followed
// by the history and end commands.
func MenuRegistry(activityNames []string) *Registry {
	r := NewRegistry()
	for i, name := range activityNames {
		key := normaliseInput(name)
		r.RegisterCommand(CommandDef{Canonical: key, Aliases: defaultAliases[key], Number: i + 1})
	}
	n := len(activityNames)
	r.RegisterCommand(CommandDef{Canonical: "history", Aliases: defaultAliases["history"], Number: n + 1})
	r.RegisterCommand(CommandDef{Canonical: "end", Aliases: defaultAliases["end"], Number: n + 2})
	return r
}
