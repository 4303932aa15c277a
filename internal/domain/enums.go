package domain

import "strings"

// Outcome is the learner's self-reported recall quality for one review.
type Outcome string

const (
	OutcomeAgain Outcome = "again"
	OutcomeHard  Outcome = "hard"
	OutcomeGood  Outcome = "good"
	OutcomeEasy  Outcome = "easy"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeAgain, OutcomeHard, OutcomeGood, OutcomeEasy:
		return true
	}
	return false
}

// IsCorrect reports whether the outcome counts as a correct answer in session accuracy.
func (o Outcome) IsCorrect() bool {
	return o == OutcomeGood || o == OutcomeEasy
}

// AllOutcomes returns the outcomes in button order.
func AllOutcomes() []Outcome {
	return []Outcome{OutcomeAgain, OutcomeHard, OutcomeGood, OutcomeEasy}
}

// EventKind distinguishes review events from reset markers in a card's history.
type EventKind string

const (
	EventKindReview EventKind = "review"
	EventKindReset  EventKind = "reset"
)

func (k EventKind) String() string { return string(k) }

func (k EventKind) IsValid() bool {
	return k == EventKindReview || k == EventKindReset
}

// MasteryStage is the coarse classification of a mastery level.
type MasteryStage string

const (
	MasteryStageNew      MasteryStage = "new"
	MasteryStageLearning MasteryStage = "learning"
	MasteryStageMastered MasteryStage = "mastered"
)

func (s MasteryStage) String() string { return string(s) }

// Mastery level bounds.
const (
	MinMasteryLevel = 0
	MaxMasteryLevel = 5
)

// StageOf classifies a mastery level: 0 is new, 1-3 learning, 4-5 mastered.
func StageOf(mastery int) MasteryStage {
	switch {
	case mastery <= 0:
		return MasteryStageNew
	case mastery <= 3:
		return MasteryStageLearning
	default:
		return MasteryStageMastered
	}
}

// Language is a lowercase language tag such as "en", "si" or "ta".
type Language string

func (l Language) String() string { return string(l) }

// IsValid reports whether the tag has 2-8 lowercase ASCII letters.
func (l Language) IsValid() bool {
	if len(l) < 2 || len(l) > 8 {
		return false
	}
	for _, r := range l {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// ParseLanguage normalizes s to a Language. The result may still be invalid.
func ParseLanguage(s string) Language {
	return Language(strings.ToLower(strings.TrimSpace(s)))
}
