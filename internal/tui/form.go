package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

// NewPredictionForm creates the date / assignment-group form. The form
// layer enforces that both fields are present and the date parses; range
// and group validity stay with the prediction service.
func NewPredictionForm(fm *PredictionFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&fm.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("date is required")
					}
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("date must be YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Assignment group").
				Description("Team or queue the incidents are routed to").
				Value(&fm.Group).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("assignment group is required")
					}
					return nil
				}),
		),
	)
}
