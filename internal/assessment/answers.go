package assessment

import (
	"strconv"
	"strings"
)

// AnswerKind tags the parsed representation of a response.
type AnswerKind int

const (
	KindYesNo AnswerKind = iota
	KindCount
)

// Answer is the typed form of a single response: either a yes/no flag or a
// numeric count, depending on what the catalog declares for the question.
type Answer struct {
	Kind  AnswerKind
	Yes   bool
	Count int
}

// Answers maps question IDs to parsed answers. Missing entries are treated as
// a non-match by the scoring rules, never as an error.
type Answers map[string]Answer

// ParseAnswers converts a raw string submission into typed answers using the
// catalog's declared question types. Unknown question IDs are ignored, and
// unparseable numeric responses degrade to an absent answer rather than
// raising an error.
func ParseAnswers(raw map[string]string) Answers {
	parsed := make(Answers, len(raw))
	for id, value := range raw {
		q, ok := catalogByID[id]
		if !ok {
			continue
		}
		switch q.Type {
		case TypeYesNo:
			parsed[id] = Answer{Kind: KindYesNo, Yes: strings.EqualFold(strings.TrimSpace(value), "yes")}
		case TypeNumeric:
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				continue
			}
			parsed[id] = Answer{Kind: KindCount, Count: n}
		}
	}
	return parsed
}

// IsYes reports whether the answer for id is a yes/no answer set to yes.
func (a Answers) IsYes(id string) bool {
	ans, ok := a[id]
	return ok && ans.Kind == KindYesNo && ans.Yes
}

// CountOf returns the numeric answer for id, or ok=false when absent.
func (a Answers) CountOf(id string) (int, bool) {
	ans, ok := a[id]
	if !ok || ans.Kind != KindCount {
		return 0, false
	}
	return ans.Count, true
}
