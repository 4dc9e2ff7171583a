package models

// PredictionRequest is the wire shape sent to the prediction service.
type PredictionRequest struct {
	Date            string `json:"date"` // YYYY-MM-DD format
	AssignmentGroup string `json:"assignment_group"`
}

// PredictionResult is the wire shape returned by the prediction service.
// Predictions maps an open-ended set of priority labels (commonly "P1"
// through "P4") to predicted incident counts. Treated as immutable once
// decoded.
type PredictionResult struct {
	Date            string             `json:"date"`
	AssignmentGroup string             `json:"assignment_group"`
	Predictions     map[string]float64 `json:"predictions"`
}

// PriorityCount is one (label, count) pair of a summary.
type PriorityCount struct {
	Label string
	Count float64
}

// PrioritySummary is an ordered view over PredictionResult.Predictions,
// recomputed on demand and never mutated in place.
type PrioritySummary []PriorityCount

// Total returns the sum of all counts in the summary.
func (s PrioritySummary) Total() float64 {
	var total float64
	for _, pc := range s {
		total += pc.Count
	}
	return total
}
