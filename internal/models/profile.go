package models

type EducationLevel string

const (
	LevelHAVO EducationLevel = "HAVO"
	LevelVWO  EducationLevel = "VWO"
	LevelMBO  EducationLevel = "MBO"
)

// EducationLevels lists the levels in the order the form offers them.
var EducationLevels = []EducationLevel{LevelHAVO, LevelVWO, LevelMBO}

type Track string

const (
	TrackCM    Track = "CM"
	TrackEM    Track = "EM"
	TrackNG    Track = "NG"
	TrackNT    Track = "NT"
	TrackOther Track = "OTHER"
)

var Tracks = []Track{TrackCM, TrackEM, TrackNG, TrackNT, TrackOther}

var trackLabels = map[Track]string{
	TrackCM:    "Cultuur & Maatschappij",
	TrackEM:    "Economie & Maatschappij",
	TrackNG:    "Natuur & Gezondheid",
	TrackNT:    "Natuur & Techniek",
	TrackOther: "Anders/Niet van toepassing",
}

// Label returns the Dutch display name of the track, or the raw code when unknown.
func (t Track) Label() string {
	if l, ok := trackLabels[t]; ok {
		return l
	}
	return string(t)
}

type WorkStyle string

const (
	WorkStylePractical   WorkStyle = "practical"
	WorkStyleMix         WorkStyle = "mix"
	WorkStyleTheoretical WorkStyle = "theoretical"
)

var WorkStyles = []WorkStyle{WorkStylePractical, WorkStyleMix, WorkStyleTheoretical}

var workStyleLabels = map[WorkStyle]string{
	WorkStylePractical:   "Vooral Praktisch",
	WorkStyleMix:         "Mix",
	WorkStyleTheoretical: "Vooral Theoretisch",
}

func (w WorkStyle) Label() string {
	if l, ok := workStyleLabels[w]; ok {
		return l
	}
	return string(w)
}

// UserProfile is the completed questionnaire. It is never mutated after submission.
type UserProfile struct {
	Name             string         `json:"name" validate:"required"`
	Level            EducationLevel `json:"level" validate:"required,oneof=HAVO VWO MBO"`
	Track            Track          `json:"track" validate:"required,oneof=CM EM NG NT OTHER"`
	FavoriteSubjects string         `json:"favorite_subjects" validate:"required"`
	Hobbies          string         `json:"hobbies"`
	WorkStyle        WorkStyle      `json:"work_style" validate:"omitempty,oneof=practical mix theoretical"`
	DreamJob         string         `json:"dream_job"`
}

// DefaultProfile returns the draft the questionnaire starts from.
func DefaultProfile() UserProfile {
	return UserProfile{
		Level: LevelHAVO,
		Track: TrackNG,
	}
}
