package ads

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// MicrosPerUnit is the micro-amount scale used throughout the Google Ads
// API: 1,000,000 micros equal one unit of account currency.
const MicrosPerUnit = 1_000_000

// MicrosToUnits converts a micro-amount into currency units.
func MicrosToUnits(micros float64) float64 {
	return micros / MicrosPerUnit
}

// UnitsToMicros converts currency units into a micro-amount. The product
// is rounded, not truncated, so values that came from MicrosToUnits map
// back to the original integer.
func UnitsToMicros(units float64) int64 {
	return int64(math.Round(units * MicrosPerUnit))
}

// Flatten collapses nested objects into a single-level map with dotted
// keys. Arrays are terminal leaves and are never descended into. A map
// that is already flat comes back unchanged.
func Flatten(row map[string]any) map[string]any {
	flattened := make(map[string]any)
	flattenInto(flattened, "", row)
	return flattened
}

func flattenInto(dst map[string]any, prefix string, obj map[string]any) {
	for key, value := range obj {
		newKey := key
		if prefix != "" {
			newKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(dst, newKey, nested)
			continue
		}
		dst[newKey] = value
	}
}

// flatHeaders returns the sorted flattened keys of the first row. Key
// order must be deterministic so repeated queries render identically.
func flatHeaders(first map[string]any) []string {
	flat := Flatten(first)
	headers := make([]string, 0, len(flat))
	for key := range flat {
		headers = append(headers, key)
	}
	sort.Strings(headers)
	return headers
}

// FormatTable renders result rows as a tab-separated table with a header
// line taken from the first row. Empty input yields the sentinel
// "No results found"; this differs from FormatCSV on purpose.
func FormatTable(results []map[string]any) string {
	if len(results) == 0 {
		return "No results found"
	}

	headers := flatHeaders(results[0])

	var b strings.Builder
	b.WriteString(strings.Join(headers, "\t"))
	for _, row := range results {
		flat := Flatten(row)
		b.WriteByte('\n')
		for i, h := range headers {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(formatValue(flat[h]))
		}
	}
	return b.String()
}

// FormatCSV renders result rows as CSV with every value wrapped in
// double quotes. Values are not escaped. Empty input yields an empty
// string, not the table sentinel.
func FormatCSV(results []map[string]any) string {
	if len(results) == 0 {
		return ""
	}

	headers := flatHeaders(results[0])

	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, row := range results {
		flat := Flatten(row)
		b.WriteByte('\n')
		for i, h := range headers {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(formatValue(flat[h]))
			b.WriteByte('"')
		}
	}
	return b.String()
}

// FormatJSON renders result rows as indented JSON.
func FormatJSON(results []map[string]any) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	return string(data), nil
}

// FormatResults dispatches on the requested output format. Unrecognized
// formats fall back to JSON, matching the query tool's default.
func FormatResults(results []map[string]any, format string) (string, error) {
	switch format {
	case "table":
		return FormatTable(results), nil
	case "csv":
		return FormatCSV(results), nil
	default:
		return FormatJSON(results)
	}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, ",")
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
