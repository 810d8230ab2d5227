package dto

type HelpStep struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HelpResponse struct {
	Title        string     `json:"title"`
	Steps        []HelpStep `json:"steps"`
	DismissLabel string     `json:"dismiss_label"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type OptionsResponse struct {
	Levels     []Option `json:"levels"`
	Tracks     []Option `json:"tracks"`
	WorkStyles []Option `json:"work_styles"`
}
