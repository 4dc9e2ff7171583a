package presenter

import (
	"sort"
	"strconv"

	"github.com/dsouzarc/incast/internal/models"
)

// Summarize converts a prediction result into an ordered summary for
// rendering. It carries every key/value pair of the predictions map,
// including labels it has never seen, and returns an empty summary for an
// empty (or nil) result.
//
// Ordering is canonical rather than response order: decoded JSON objects
// have no usable key order in Go, so labels of the form P<n> sort
// numerically ascending and any other labels follow lexicographically.
func Summarize(result *models.PredictionResult) models.PrioritySummary {
	if result == nil || len(result.Predictions) == 0 {
		return models.PrioritySummary{}
	}

	summary := make(models.PrioritySummary, 0, len(result.Predictions))
	for label, count := range result.Predictions {
		summary = append(summary, models.PriorityCount{Label: label, Count: count})
	}

	sort.Slice(summary, func(i, j int) bool {
		return labelLess(summary[i].Label, summary[j].Label)
	})
	return summary
}

func labelLess(a, b string) bool {
	ar, aok := priorityRank(a)
	br, bok := priorityRank(b)
	switch {
	case aok && bok:
		if ar != br {
			return ar < br
		}
		return a < b
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

// priorityRank extracts the tier number from a P-prefixed label like "P1".
func priorityRank(label string) (int, bool) {
	if len(label) < 2 || (label[0] != 'P' && label[0] != 'p') {
		return 0, false
	}
	n, err := strconv.Atoi(label[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
