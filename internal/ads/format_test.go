package ads

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMicrosConversion(t *testing.T) {
	assert.Equal(t, int64(1_500_000), UnitsToMicros(1.5))
	assert.Equal(t, 2.5, MicrosToUnits(2_500_000))

	// Round trip for whole currency amounts
	assert.Equal(t, 42.0, MicrosToUnits(float64(UnitsToMicros(42.0))))

	// Round trip must survive amounts whose unit value is not exactly
	// representable in binary (0.000249 * 1e6 is 248.999... as a float)
	for _, micros := range []int64{1, 249, 1_333_337, 49_999_999} {
		assert.Equal(t, micros, UnitsToMicros(MicrosToUnits(float64(micros))), "micros=%d", micros)
	}
}

func TestFlatten(t *testing.T) {
	t.Run("nested objects get dotted keys", func(t *testing.T) {
		row := map[string]any{
			"campaign": map[string]any{
				"id":   "123",
				"name": "Brand",
			},
			"metrics": map[string]any{
				"clicks": float64(10),
			},
		}

		flat := Flatten(row)
		assert.Equal(t, "123", flat["campaign.id"])
		assert.Equal(t, "Brand", flat["campaign.name"])
		assert.Equal(t, float64(10), flat["metrics.clicks"])
	})

	t.Run("already flat rows come back unchanged", func(t *testing.T) {
		row := map[string]any{"a": "1", "b": float64(2)}
		flat := Flatten(row)
		assert.Equal(t, row, flat)
		// Flattening is idempotent
		assert.Equal(t, flat, Flatten(flat))
	})

	t.Run("arrays are terminal leaves", func(t *testing.T) {
		row := map[string]any{
			"ad": map[string]any{
				"finalUrls": []any{"https://a.example", "https://b.example"},
			},
		}
		flat := Flatten(row)
		assert.Equal(t, []any{"https://a.example", "https://b.example"}, flat["ad.finalUrls"])
	})
}

func TestFormatTable(t *testing.T) {
	t.Run("empty results yield sentinel", func(t *testing.T) {
		assert.Equal(t, "No results found", FormatTable(nil))
		assert.Equal(t, "No results found", FormatTable([]map[string]any{}))
	})

	t.Run("tab separated with sorted headers from first row", func(t *testing.T) {
		results := []map[string]any{
			{
				"campaign": map[string]any{"name": "Brand", "id": "123"},
				"metrics":  map[string]any{"clicks": float64(7)},
			},
			{
				"campaign": map[string]any{"name": "Generic", "id": "456"},
				"metrics":  map[string]any{"clicks": float64(3)},
			},
		}

		out := FormatTable(results)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "campaign.id\tcampaign.name\tmetrics.clicks", lines[0])
		assert.Equal(t, "123\tBrand\t7", lines[1])
		assert.Equal(t, "456\tGeneric\t3", lines[2])
	})

	t.Run("missing values render empty", func(t *testing.T) {
		results := []map[string]any{
			{"a": "1", "b": "2"},
			{"a": "3"},
		}
		out := FormatTable(results)
		lines := strings.Split(out, "\n")
		assert.Equal(t, "3\t", lines[2])
	})
}

func TestFormatCSV(t *testing.T) {
	t.Run("empty results yield empty string, not the table sentinel", func(t *testing.T) {
		assert.Equal(t, "", FormatCSV(nil))
	})

	t.Run("every value is quoted", func(t *testing.T) {
		results := []map[string]any{
			{"campaign": map[string]any{"id": "123", "name": "Brand"}},
		}
		out := FormatCSV(results)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "campaign.id,campaign.name", lines[0])
		assert.Equal(t, `"123","Brand"`, lines[1])
	})
}

func TestFormatResults(t *testing.T) {
	results := []map[string]any{{"a": "1"}}

	table, err := FormatResults(results, "table")
	require.NoError(t, err)
	assert.Equal(t, "a\n1", table)

	csv, err := FormatResults(results, "csv")
	require.NoError(t, err)
	assert.Equal(t, "a\n\"1\"", csv)

	// Unknown formats fall back to JSON
	for _, format := range []string{"json", "", "yaml"} {
		out, err := FormatResults(results, format)
		require.NoError(t, err)
		var decoded []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, results, decoded)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "text", formatValue("text"))
	assert.Equal(t, "true", formatValue(true))
	assert.Equal(t, "1.5", formatValue(1.5))
	assert.Equal(t, "10", formatValue(float64(10)))
	assert.Equal(t, "a,b", formatValue([]any{"a", "b"}))
}
