package cli

import (
	"fmt"
	"time"

	"github.com/dsouzarc/incast/internal/client"
	"github.com/dsouzarc/incast/internal/config"
	"github.com/dsouzarc/incast/internal/storage"
)

type Context struct {
	Config  *config.Config
	Store   storage.Provider
	Service *client.Client
}

// parseDate accepts YYYY-MM-DD or the literal "today" and returns the
// normalized date string.
func parseDate(s string) (string, error) {
	if s == "today" {
		return time.Now().Format("2006-01-02"), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return d.Format("2006-01-02"), nil
}
