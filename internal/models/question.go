package models

// QuestionOption is one selectable answer to a clarifying question.
type QuestionOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ClarifyingQuestion is a multiple-choice question generated by the LLM to
// disambiguate an app idea. Questions only exist as response payloads and
// are never persisted.
type ClarifyingQuestion struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Category string           `json:"category"`
	Options  []QuestionOption `json:"options"`
}
