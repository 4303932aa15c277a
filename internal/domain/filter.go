package domain

// MaxDueLimit bounds the number of cards a single due query may return.
const MaxDueLimit = 500

// CardFilter narrows card listings. Nil fields match everything.
// Limit 0 means no limit.
type CardFilter struct {
	Language       *Language
	TargetLanguage *Language
	Category       *string
	MasteryLevel   *int
	Limit          int
}
