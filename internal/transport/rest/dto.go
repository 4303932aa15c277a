package rest

import (
	"time"

	"github.com/samber/lo"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study/srs"
)

type flashcardResponse struct {
	ID             string     `json:"id"`
	Word           string     `json:"word"`
	Translation    string     `json:"translation"`
	Language       string     `json:"language"`
	TargetLanguage string     `json:"targetLanguage"`
	Category       string     `json:"category"`
	MasteryLevel   int        `json:"masteryLevel"`
	Stage          string     `json:"stage"`
	Interval       int        `json:"interval"`
	NextReview     time.Time  `json:"nextReview"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
	ReviewCount    int        `json:"reviewCount"`
	Version        int64      `json:"version"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func toFlashcardResponse(c domain.Flashcard) flashcardResponse {
	return flashcardResponse{
		ID:             c.ID.String(),
		Word:           c.Word,
		Translation:    c.Translation,
		Language:       c.Language.String(),
		TargetLanguage: c.TargetLanguage.String(),
		Category:       c.Category,
		MasteryLevel:   c.MasteryLevel,
		Stage:          c.Stage().String(),
		Interval:       c.Interval,
		NextReview:     c.NextReview,
		LastReviewedAt: c.LastReviewedAt,
		ReviewCount:    c.ReviewCount,
		Version:        c.Version,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toFlashcardList(cards []domain.Flashcard) []flashcardResponse {
	return lo.Map(cards, func(c domain.Flashcard, _ int) flashcardResponse {
		return toFlashcardResponse(c)
	})
}

type reviewEventResponse struct {
	ID                 string    `json:"id"`
	CardID             string    `json:"cardId"`
	Kind               string    `json:"kind"`
	Outcome            string    `json:"outcome,omitempty"`
	TimeSpentSeconds   int       `json:"timeSpentSeconds"`
	MasteryLevelBefore int       `json:"masteryLevelBefore"`
	MasteryLevelAfter  int       `json:"masteryLevelAfter"`
	IntervalAfter      int       `json:"intervalAfter"`
	ReviewedAt         time.Time `json:"reviewedAt"`
}

func toReviewEventResponse(e domain.ReviewEvent) reviewEventResponse {
	return reviewEventResponse{
		ID:                 e.ID.String(),
		CardID:             e.CardID.String(),
		Kind:               e.Kind.String(),
		Outcome:            e.Outcome.String(),
		TimeSpentSeconds:   e.TimeSpentSeconds,
		MasteryLevelBefore: e.MasteryLevelBefore,
		MasteryLevelAfter:  e.MasteryLevelAfter,
		IntervalAfter:      e.IntervalAfter,
		ReviewedAt:         e.ReviewedAt,
	}
}

type previewResponse struct {
	Outcome      string    `json:"outcome"`
	MasteryLevel int       `json:"masteryLevel"`
	Interval     int       `json:"interval"`
	NextReview   time.Time `json:"nextReview"`
}

type statsResponse struct {
	TotalCards    int `json:"totalCards"`
	NewCards      int `json:"newCards"`
	LearningCards int `json:"learningCards"`
	MasteredCards int `json:"masteredCards"`
	DueCards      int `json:"dueCards"`
	ReviewedToday int `json:"reviewedToday"`
	Streak        int `json:"streak"`
}

func toStatsResponse(s domain.Stats) statsResponse {
	return statsResponse{
		TotalCards:    s.Total,
		NewCards:      s.New,
		LearningCards: s.Learning,
		MasteredCards: s.Mastered,
		DueCards:      s.Due,
		ReviewedToday: s.ReviewedToday,
		Streak:        s.Streak,
	}
}

type sessionResponse struct {
	ID             string    `json:"id"`
	TotalCards     int       `json:"totalCards"`
	Remaining      int       `json:"remaining"`
	TotalReviewed  int       `json:"totalReviewed"`
	CorrectAnswers int       `json:"correctAnswers"`
	Skipped        int       `json:"skipped"`
	Accuracy       float64   `json:"accuracy"`
	StartedAt      time.Time `json:"startedAt"`
	LastActivityAt time.Time `json:"lastActivityAt"`
}

func toSessionResponse(s study.Session) sessionResponse {
	return sessionResponse{
		ID:             s.ID.String(),
		TotalCards:     s.TotalReviewed + s.Skipped + s.Remaining(),
		Remaining:      s.Remaining(),
		TotalReviewed:  s.TotalReviewed,
		CorrectAnswers: s.CorrectAnswers,
		Skipped:        s.Skipped,
		Accuracy:       s.Accuracy(),
		StartedAt:      s.StartedAt,
		LastActivityAt: s.LastActivityAt,
	}
}

type nextCardResponse struct {
	Card    *flashcardResponse `json:"card"`
	Session sessionResponse    `json:"session"`
}

type reviewResponse struct {
	Card      flashcardResponse   `json:"card"`
	Event     reviewEventResponse `json:"event"`
	Session   sessionResponse     `json:"session"`
	Completed bool                `json:"completed"`
	Accuracy  float64             `json:"accuracy"`
}

type summaryResponse struct {
	SessionID       string    `json:"sessionId"`
	TotalReviewed   int       `json:"totalReviewed"`
	CorrectAnswers  int       `json:"correctAnswers"`
	Skipped         int       `json:"skipped"`
	Accuracy        float64   `json:"accuracy"`
	Completed       bool      `json:"completed"`
	StartedAt       time.Time `json:"startedAt"`
	FinishedAt      time.Time `json:"finishedAt"`
	DurationSeconds int64     `json:"durationSeconds"`
}

func toSummaryResponse(s domain.SessionSummary) summaryResponse {
	return summaryResponse{
		SessionID:       s.SessionID.String(),
		TotalReviewed:   s.TotalReviewed,
		CorrectAnswers:  s.CorrectAnswers,
		Skipped:         s.Skipped,
		Accuracy:        s.Accuracy,
		Completed:       s.Completed,
		StartedAt:       s.StartedAt,
		FinishedAt:      s.FinishedAt,
		DurationSeconds: int64(s.Duration / time.Second),
	}
}

func toPreviewList(previews []srs.OutcomePreview) []previewResponse {
	return lo.Map(previews, func(p srs.OutcomePreview, _ int) previewResponse {
		return previewResponse{
			Outcome:      p.Outcome.String(),
			MasteryLevel: p.MasteryLevel,
			Interval:     p.Interval,
			NextReview:   p.NextReview,
		}
	})
}
