package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dsouzarc/incast/internal/controller"
	"github.com/dsouzarc/incast/internal/logger"
	"github.com/dsouzarc/incast/internal/models"
	"github.com/dsouzarc/incast/internal/presenter"
	"github.com/dsouzarc/incast/internal/renderer"
)

type PredictCmd struct {
	Group  string `arg:"" help:"Assignment group to predict for."`
	Date   string `arg:"" help:"Prediction date (YYYY-MM-DD or 'today')." default:"today"`
	Format string `help:"Output format." enum:"chart,list,json" default:"chart"`
	Width  int    `help:"Render width for the chart." default:"60"`
	NoSave bool   `help:"Do not record the prediction in history."`
}

func (c *PredictCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	// One-shot submissions go through the same controller the TUI uses.
	ctrl := controller.New(ctx.Service)
	ctrl.SetDate(date)
	ctrl.SetAssignmentGroup(c.Group)
	run := ctrl.Submit(context.Background())
	ctrl.Resolve(run())

	if ctrl.State() != controller.Succeeded {
		return fmt.Errorf("%s", ctrl.ErrorMessage())
	}
	result := ctrl.Result()

	if c.Format == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
	} else {
		r, err := renderer.ByName(c.Format)
		if err != nil {
			return err
		}
		fmt.Printf("Predicted incidents for %s on %s:\n\n", result.AssignmentGroup, result.Date)
		fmt.Println(r.Render(presenter.Summarize(result), c.Width))
	}

	// History is best-effort; a missing store must not fail the command.
	if !c.NoSave {
		if err := saveRecord(ctx, result); err != nil {
			logger.Warn("could not record prediction: %v", err)
		}
	}
	return nil
}

func saveRecord(ctx *Context, result *models.PredictionResult) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	return ctx.Store.SaveRecord(models.Record{
		ID:              uuid.New().String(),
		Date:            result.Date,
		AssignmentGroup: result.AssignmentGroup,
		Predictions:     result.Predictions,
		CreatedAt:       time.Now().Format(time.RFC3339),
	})
}
