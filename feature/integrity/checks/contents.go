package checks

import (
	"fmt"

	"ingredient-manager/feature/containers/models"
)

// ContentsReport lists the containers whose persisted contents break their
// own limits.
type ContentsReport struct {
	Checked  int                 `json:"checked"`
	Matched  bool                `json:"matched"`
	Problems map[string][]string `json:"problems"`
}

// CheckContents audits persisted container rows: counts must be positive,
// slotless totals and slot counts must fit the capacity, and slot positions
// must be unique and in range.
func CheckContents(list []models.Container) *ContentsReport {
	report := &ContentsReport{
		Checked:  len(list),
		Matched:  true,
		Problems: make(map[string][]string),
	}

	for _, c := range list {
		var problems []string
		seen := make(map[int]bool)

		for _, row := range c.Contents {
			if row.Item == "" {
				problems = append(problems, fmt.Sprintf("position %d: empty item", row.Position))
			}
			if row.Count <= 0 {
				problems = append(problems, fmt.Sprintf("position %d: non-positive count %d", row.Position, row.Count))
			}
			if !c.Slotted() {
				continue
			}
			if row.Position < 0 || row.Position >= c.Slots {
				problems = append(problems, fmt.Sprintf("position %d: outside %d slots", row.Position, c.Slots))
			}
			if seen[row.Position] {
				problems = append(problems, fmt.Sprintf("position %d: duplicated", row.Position))
			}
			seen[row.Position] = true
			if row.Count > c.Capacity {
				problems = append(problems, fmt.Sprintf("position %d: %d exceeds slot capacity %d", row.Position, row.Count, c.Capacity))
			}
		}

		if !c.Slotted() && c.Total() > c.Capacity {
			problems = append(problems, fmt.Sprintf("total %d exceeds capacity %d", c.Total(), c.Capacity))
		}

		if len(problems) > 0 {
			report.Problems[c.Name] = problems
			report.Matched = false
		}
	}

	return report
}
