package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"studiekompas/internal/models"

	"github.com/go-playground/validator/v10"
)

// StepInput carries the fields a client submits for one questionnaire page.
// Nil fields are left untouched.
type StepInput struct {
	Name             *string
	Level            *string
	Track            *string
	FavoriteSubjects *string
	Hobbies          *string
	WorkStyle        *string
	DreamJob         *string
}

// Questionnaire implements the four-page profile form rules.
//
//	1: name, level
//	2: track
//	3: favorite subjects, hobbies
//	4: work style, dream job
type Questionnaire struct {
	validate *validator.Validate
}

func NewQuestionnaire() *Questionnaire {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Questionnaire{validate: v}
}

// Apply merges the fields that belong to step into draft.
func (q *Questionnaire) Apply(draft *models.UserProfile, step int, in StepInput) error {
	if step < 1 || step > models.QuestionnaireSteps {
		return fmt.Errorf("%w: step must be between 1 and %d", ErrValidation, models.QuestionnaireSteps)
	}

	next := *draft
	switch step {
	case 1:
		if in.Name != nil {
			next.Name = *in.Name
		}
		if in.Level != nil {
			if err := q.validate.Var(*in.Level, "oneof=HAVO VWO MBO"); err != nil {
				return fmt.Errorf("%w: level must be one of HAVO, VWO, MBO", ErrValidation)
			}
			next.Level = models.EducationLevel(*in.Level)
		}
	case 2:
		if in.Track != nil {
			if err := q.validate.Var(*in.Track, "oneof=CM EM NG NT OTHER"); err != nil {
				return fmt.Errorf("%w: track must be one of CM, EM, NG, NT, OTHER", ErrValidation)
			}
			next.Track = models.Track(*in.Track)
		}
	case 3:
		if in.FavoriteSubjects != nil {
			next.FavoriteSubjects = *in.FavoriteSubjects
		}
		if in.Hobbies != nil {
			next.Hobbies = *in.Hobbies
		}
	case 4:
		if in.WorkStyle != nil {
			if err := q.validate.Var(*in.WorkStyle, "omitempty,oneof=practical mix theoretical"); err != nil {
				return fmt.Errorf("%w: work_style must be one of practical, mix, theoretical", ErrValidation)
			}
			next.WorkStyle = models.WorkStyle(*in.WorkStyle)
		}
		if in.DreamJob != nil {
			next.DreamJob = *in.DreamJob
		}
	}

	*draft = next
	return nil
}

// CanAdvance reports whether the form may move past step.
func (q *Questionnaire) CanAdvance(draft models.UserProfile, step int) error {
	if step >= models.QuestionnaireSteps {
		return fmt.Errorf("%w: already on the last step", ErrInvalidTransition)
	}
	if step == 1 && strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}

// Complete validates the draft and returns the profile that will be submitted.
func (q *Questionnaire) Complete(draft models.UserProfile) (models.UserProfile, error) {
	profile := models.UserProfile{
		Name:             strings.TrimSpace(draft.Name),
		Level:            draft.Level,
		Track:            draft.Track,
		FavoriteSubjects: strings.TrimSpace(draft.FavoriteSubjects),
		Hobbies:          strings.TrimSpace(draft.Hobbies),
		WorkStyle:        draft.WorkStyle,
		DreamJob:         strings.TrimSpace(draft.DreamJob),
	}

	if err := q.validate.Struct(profile); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return models.UserProfile{}, fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
		}
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return profile, nil
}

// Progress is the completion percentage shown above the form.
func Progress(step int) int {
	return step * 100 / models.QuestionnaireSteps
}
