package snapshotio

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/selfbiz/costplan/internal/engine"
	"github.com/selfbiz/costplan/internal/models"
)

// CSV sub-field conventions: itemized lists encode as name:amount pairs
// joined by pipes; structured payloads as key=value pairs joined by pipes,
// with nested item lists separated by semicolons. Dates use 2006-01-02.
const dateLayout = "2006-01-02"

func encodeItems(items []models.CostItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s:%v", item.Name, item.Amount))
	}
	return strings.Join(parts, "|")
}

func parseItems(field, sep string) []models.CostItem {
	var items []models.CostItem
	for _, part := range splitNonEmpty(field, sep) {
		name, amount, _ := strings.Cut(part, ":")
		items = append(items, models.CostItem{
			Name:   name,
			Amount: engine.SafeFloat(amount),
		})
	}
	return items
}

func encodePairs(pairs map[string]string) string {
	keys := make([]string, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+pairs[key])
	}
	return strings.Join(parts, "|")
}

func parsePairs(field string) map[string]string {
	pairs := make(map[string]string)
	for _, part := range splitNonEmpty(field, "|") {
		key, value, ok := strings.Cut(part, "=")
		if ok {
			pairs[key] = value
		}
	}
	return pairs
}

func splitNonEmpty(field, sep string) []string {
	var parts []string
	for _, part := range strings.Split(field, sep) {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func encodeDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(field string) time.Time {
	t, err := time.Parse(dateLayout, field)
	if err != nil {
		return time.Time{}
	}
	return t
}
