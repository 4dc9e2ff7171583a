package cli

import (
	"fmt"

	"github.com/dsouzarc/incast/internal/models"
	"github.com/dsouzarc/incast/internal/presenter"
	"github.com/dsouzarc/incast/internal/renderer"
)

type HistoryCmd struct {
	Limit int `help:"Maximum number of entries to show." default:"10"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	records, err := ctx.Store.GetRecords(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No predictions recorded yet")
		return nil
	}

	list := renderer.List{}
	for i, record := range records {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s  %s  (requested %s)\n", record.Date, record.AssignmentGroup, record.CreatedAt)
		summary := presenter.Summarize(&models.PredictionResult{
			Date:            record.Date,
			AssignmentGroup: record.AssignmentGroup,
			Predictions:     record.Predictions,
		})
		fmt.Println(list.Render(summary, 0))
	}
	return nil
}

type GroupsCmd struct{}

func (c *GroupsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	groups, err := ctx.Store.GetGroups()
	if err != nil {
		return fmt.Errorf("failed to read groups: %w", err)
	}

	if len(groups) == 0 {
		fmt.Println("No assignment groups recorded yet")
		return nil
	}
	for _, group := range groups {
		fmt.Println(group)
	}
	return nil
}
