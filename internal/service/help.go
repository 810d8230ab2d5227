package service

import (
	"studiekompas/internal/dto"
	"studiekompas/internal/models"
)

// Help returns the "how does it work" content shown from the welcome screen.
func Help() dto.HelpResponse {
	return dto.HelpResponse{
		Title: "Hoe werkt StudieKompas?",
		Steps: []dto.HelpStep{
			{
				Number:      1,
				Title:       "Vul je profiel in",
				Description: "Vertel ons wie je bent, wat je niveau (HAVO/VWO/MBO) is en waar je interesses liggen.",
			},
			{
				Number:      2,
				Title:       "Ontvang studie-advies",
				Description: "Onze slimme AI analyseert je antwoorden en zoekt de beste matches voor jou.",
			},
			{
				Number:      3,
				Title:       "Chat met de coach",
				Description: "Klik op een studie voor details en stel al je vragen aan de ingebouwde AI-studiecoach.",
			},
		},
		DismissLabel: "Ik snap het!",
	}
}

// Options lists the choices offered by the questionnaire.
func Options() dto.OptionsResponse {
	resp := dto.OptionsResponse{
		Levels:     make([]dto.Option, 0, len(models.EducationLevels)),
		Tracks:     make([]dto.Option, 0, len(models.Tracks)),
		WorkStyles: make([]dto.Option, 0, len(models.WorkStyles)),
	}
	for _, l := range models.EducationLevels {
		resp.Levels = append(resp.Levels, dto.Option{Value: string(l), Label: string(l)})
	}
	for _, t := range models.Tracks {
		resp.Tracks = append(resp.Tracks, dto.Option{Value: string(t), Label: t.Label()})
	}
	for _, w := range models.WorkStyles {
		resp.WorkStyles = append(resp.WorkStyles, dto.Option{Value: string(w), Label: w.Label()})
	}
	return resp
}
