package ads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	t.Run("fields and resource only", func(t *testing.T) {
		q := NewQuery("campaign", "campaign.id", "campaign.name")
		assert.Equal(t, "SELECT campaign.id, campaign.name FROM campaign", q.String())
	})

	t.Run("conditions are AND composed", func(t *testing.T) {
		q := NewQuery("campaign", "campaign.id").
			Where("campaign.status != 'REMOVED'").
			Wheref("campaign.id = %s", "123")
		assert.Equal(t,
			"SELECT campaign.id FROM campaign WHERE campaign.status != 'REMOVED' AND campaign.id = 123",
			q.String())
	})

	t.Run("order by and limit render last", func(t *testing.T) {
		q := NewQuery("ad_group", "ad_group.id").
			Where("ad_group.status = 'ENABLED'").
			OrderBy("ad_group.name").
			Limit(25)
		assert.Equal(t,
			"SELECT ad_group.id FROM ad_group WHERE ad_group.status = 'ENABLED' ORDER BY ad_group.name LIMIT 25",
			q.String())
	})

	t.Run("during sanitizes the date range", func(t *testing.T) {
		q := NewQuery("campaign", "campaign.id").During("last_7_days")
		assert.Equal(t,
			"SELECT campaign.id FROM campaign WHERE segments.date DURING LAST_7_DAYS",
			q.String())
	})
}

func TestSanitizeDateRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty falls back to default", "", "LAST_30_DAYS"},
		{"valid range passes through", "LAST_7_DAYS", "LAST_7_DAYS"},
		{"lowercase is uppercased", "this_month", "THIS_MONTH"},
		{"spaces fall back to default", "LAST 7 DAYS", "LAST_30_DAYS"},
		{"quote injection falls back to default", "X' OR '1'='1", "LAST_30_DAYS"},
		{"dashes fall back to default", "LAST-7-DAYS", "LAST_30_DAYS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeDateRange(tt.input))
		})
	}
}

func TestSanitizeDate(t *testing.T) {
	assert.Equal(t, "2025-01-31", SanitizeDate("2025-01-31"))
	assert.Equal(t, "2025-01-31", SanitizeDate("2025-01-31' OR 'x"))
	assert.Equal(t, "", SanitizeDate("DROP TABLE"))
}

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, "'Berlin'", QuoteLiteral("Berlin"))
	assert.Equal(t, `'O\'Brien'`, QuoteLiteral("O'Brien"))
	assert.Equal(t, "''", QuoteLiteral(""))
}
