package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type View string

const (
	ViewWelcome       View = "welcome"
	ViewQuestionnaire View = "questionnaire"
	ViewLoading       View = "loading"
	ViewResults       View = "results"
)

// QuestionnaireSteps is the number of pages in the profile form.
const QuestionnaireSteps = 4

// Session holds one visitor's pass through the flow. It lives only in memory.
// Callers must hold the lock while reading or writing any field after the
// session has been stored.
type Session struct {
	mu sync.Mutex

	ID                     uuid.UUID
	View                   View
	Step                   int
	Draft                  UserProfile
	Profile                *UserProfile
	Recommendations        []StudyRecommendation
	SelectedRecommendation string
	Chat                   []ChatMessage
	ChatInFlight           bool
	Error                  string
	// Generation is bumped on reset so that late AI results for a previous
	// pass through the flow are dropped.
	Generation uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		View:      ViewWelcome,
		Step:      1,
		Draft:     DefaultProfile(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// FindRecommendation returns the recommendation with the given id.
func (s *Session) FindRecommendation(id string) (StudyRecommendation, bool) {
	for _, r := range s.Recommendations {
		if r.ID == id {
			return r, true
		}
	}
	return StudyRecommendation{}, false
}
