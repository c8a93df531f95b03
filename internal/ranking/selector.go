package ranking

import (
	"sort"

	"github.com/hyperjump/nukigaki/internal/models"
)

// Caps configures diversity selection.
type Caps struct {
	// Overall is the maximum number of sections admitted in total.
	Overall int
	// PerDocument is the maximum number of sections any one document may contribute.
	PerDocument int
}

// Select walks sections in stable descending-score order and greedily admits
// them under the per-document cap, stopping the instant the overall cap is
// reached. The per-document count is incremented on every visit, admitted or
// not. Admitted sections get ImportanceRank 1..K in admission order, which
// equals descending-score order. The scan can starve a later section from an
// under-represented document once the overall cap is hit; that greedy policy
// is deliberate and must not be reordered into a fairer allocation.
func Select(sections []models.Section, scores []float64, caps Caps) []models.Section {
	order := make([]int, len(sections))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	selected := make([]models.Section, 0, caps.Overall)
	docCounts := make(map[string]int)
	for _, idx := range order {
		sec := sections[idx]
		docCounts[sec.Document]++
		if docCounts[sec.Document] <= caps.PerDocument {
			sec.ImportanceRank = len(selected) + 1
			selected = append(selected, sec)
		}
		if len(selected) >= caps.Overall {
			break
		}
	}
	return selected
}
