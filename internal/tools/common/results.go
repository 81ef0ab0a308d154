package common

import (
	"fmt"

	"github.com/teemow/googleads-mcp/internal/ads"
)

// BatchSummary renders the outcome of a partial-success mutate batch,
// e.g. "Added 3 keywords successfully (1 failed)".
func BatchSummary(verb, noun string, items []ads.BatchItem) string {
	succeeded := ads.SucceededCount(items)
	failed := len(items) - succeeded
	if failed == 0 {
		return fmt.Sprintf("%s %d %s successfully", verb, succeeded, noun)
	}
	summary := fmt.Sprintf("%s %d %s successfully (%d failed)", verb, succeeded, noun, failed)
	for _, item := range items {
		if !item.Succeeded {
			summary += fmt.Sprintf("\n- item %d failed", item.Index)
		}
	}
	return summary
}
