package cli

import (
	"context"
	"fmt"
	"time"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: history storage reachable
	if err := checkStorage(ctx); err != nil {
		fmt.Printf("❌ History storage: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ History storage: OK\n")
	}

	// Check 2: prediction service reachable
	if err := checkService(ctx); err != nil {
		fmt.Printf("❌ Prediction service (%s): FAIL\n", ctx.Config.Service.BaseURL)
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Prediction service (%s): OK\n", ctx.Config.Service.BaseURL)
	}

	// Check 3: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorage(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if _, err := ctx.Store.GetRecords(1); err != nil {
		return fmt.Errorf("history unreadable: %w", err)
	}
	return nil
}

func checkService(ctx *Context) error {
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return ctx.Service.Ping(pingCtx)
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset < -14*3600 || offset > 14*3600 {
		return fmt.Errorf("timezone offset out of range: %d seconds", offset)
	}
	return nil
}
