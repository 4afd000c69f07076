package entity

// Question belongs to exactly one Pillar. Identifiers are stable for the
// process lifetime; they come from the embedded fixture catalog.
type Question struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
}

// Pillar is one of the four fixed thematic sections of the questionnaire.
// Static and fixture-defined, never mutated.
type Pillar struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Question returns the pillar's question with the given id.
func (p Pillar) Question(id int) (Question, bool) {
	for _, q := range p.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
