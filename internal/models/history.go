package models

// Record is one stored prediction run. History is a local convenience;
// the request lifecycle never reads it.
type Record struct {
	ID              string             `json:"id"`
	Date            string             `json:"date"` // YYYY-MM-DD format
	AssignmentGroup string             `json:"assignment_group"`
	Predictions     map[string]float64 `json:"predictions"`
	CreatedAt       string             `json:"created_at"` // RFC3339 timestamp
}
