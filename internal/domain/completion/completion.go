// Package completion holds the charter progress arithmetic. Both the pillar
// and admin services compute percentages through this package so the two
// views can never disagree.
package completion

import (
	"math"
	"strings"

	"github.com/charterforge/charter-forge/internal/domain/entity"
)

// Answered counts the answers in a pillar's response bucket whose trimmed
// text is non-empty.
func Answered(responses map[int]string) int {
	n := 0
	for _, a := range responses {
		if strings.TrimSpace(a) != "" {
			n++
		}
	}
	return n
}

// Percent returns the pillar's completion percentage:
// round(100 * answered / total questions). A pillar without questions is 0.
// Answers for question ids the pillar does not define are ignored.
func Percent(p entity.Pillar, responses map[int]string) int {
	if len(p.Questions) == 0 {
		return 0
	}
	answered := 0
	for _, q := range p.Questions {
		if strings.TrimSpace(responses[q.ID]) != "" {
			answered++
		}
	}
	return int(math.Round(100 * float64(answered) / float64(len(p.Questions))))
}

// IsComplete reports whether every question in the pillar has a non-empty
// trimmed answer.
func IsComplete(p entity.Pillar, responses map[int]string) bool {
	if len(p.Questions) == 0 {
		return false
	}
	for _, q := range p.Questions {
		if strings.TrimSpace(responses[q.ID]) == "" {
			return false
		}
	}
	return true
}

// Overall averages per-pillar percentages and rounds; 0 when there are no
// pillars.
func Overall(percents []int) int {
	if len(percents) == 0 {
		return 0
	}
	sum := 0
	for _, p := range percents {
		sum += p
	}
	return int(math.Round(float64(sum) / float64(len(percents))))
}
