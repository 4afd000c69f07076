package entity

// ResponseMap holds one user's answers: pillar id -> question id -> answer
// text. A missing entry means "unanswered". The whole map is persisted as a
// single JSON value under the user's response key.
type ResponseMap map[int]map[int]string

// Pillar returns the answers recorded for a pillar, never nil.
func (m ResponseMap) Pillar(pillarID int) map[int]string {
	if r, ok := m[pillarID]; ok {
		return r
	}
	return map[int]string{}
}

// Set upserts a single answer, allocating the pillar bucket on first write.
func (m ResponseMap) Set(pillarID, questionID int, answer string) {
	if m[pillarID] == nil {
		m[pillarID] = map[int]string{}
	}
	m[pillarID][questionID] = answer
}
