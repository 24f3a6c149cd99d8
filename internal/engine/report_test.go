package engine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/selfbiz/costplan/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput records every emitted row by topic.
type captureOutput struct {
	rows map[string][]map[string]interface{}
}

func newCaptureOutput() *captureOutput {
	return &captureOutput{rows: make(map[string][]map[string]interface{})}
}

func (c *captureOutput) WriteMessage(topic string, msg []byte) error {
	var row map[string]interface{}
	if err := json.Unmarshal(msg, &row); err != nil {
		return err
	}
	c.rows[topic] = append(c.rows[topic], row)
	return nil
}

func (c *captureOutput) Close() error { return nil }

func reportSnapshot() *models.Snapshot {
	snapshot := beanSnapshot()
	snapshot.Overheads = []*models.Overhead{{
		ID:       "ov-labor",
		Category: models.OverheadLabor,
		Labor:    &models.ItemizedDetail{Items: []models.CostItem{{Name: "staff", Amount: 500000}}},
	}}
	snapshot.Scenarios = []models.SimulationScenario{
		{Name: "steady", MonthlyVolume: 1000, MonthlyRevenue: 4500000, WastePercent: 5},
	}
	return snapshot
}

func TestWriteReports(t *testing.T) {
	e := New(reportSnapshot(), time.Now())
	out := newCaptureOutput()

	tax := &TaxInput{
		SalesAmount: 11000000,
		SalesMode:   models.VATModeInclusive,
		VATRate:     0.1,
		Period:      models.PeriodMonthly,
	}
	require.NoError(t, e.WriteReports(out, tax))

	require.Len(t, out.rows[TopicMenuEconomics], 1)
	menuRow := out.rows[TopicMenuEconomics][0]
	assert.Equal(t, "Americano", menuRow["menuName"])
	assert.InDelta(t, 432, menuRow["ingredientCost"].(float64), 1e-9)
	assert.Equal(t, TopicMenuEconomics, menuRow["reportType"])

	require.Len(t, out.rows[TopicOverheadMonthly], 1)
	assert.InDelta(t, 500000, out.rows[TopicOverheadMonthly][0]["monthlyAmount"].(float64), 1e-9)

	// one allocation row per category the menus actually use
	require.Len(t, out.rows[TopicOverheadAllocation], 1)
	assert.Equal(t, models.MenuCategoryDrink, out.rows[TopicOverheadAllocation][0]["category"])

	// each scenario emits both variants
	require.Len(t, out.rows[TopicScenarioResults], 2)
	variants := []string{
		out.rows[TopicScenarioResults][0]["variant"].(string),
		out.rows[TopicScenarioResults][1]["variant"].(string),
	}
	assert.ElementsMatch(t, []string{"as_configured", "overhead_inclusive"}, variants)

	require.Len(t, out.rows[TopicTaxEstimates], 1)
	assert.InDelta(t, 10000000, out.rows[TopicTaxEstimates][0]["salesSupply"].(float64), 1e-6)
}

func TestWriteReportsNoTax(t *testing.T) {
	e := New(reportSnapshot(), time.Now())
	out := newCaptureOutput()

	require.NoError(t, e.WriteReports(out, nil))
	assert.Empty(t, out.rows[TopicTaxEstimates])
}

func TestMenuCategoriesInUse(t *testing.T) {
	snapshot := reportSnapshot()
	snapshot.Menus = append(snapshot.Menus,
		&models.Menu{ID: "m2", Category: models.MenuCategoryDessert},
		&models.Menu{ID: "m3", Category: models.MenuCategoryDrink},
	)
	e := New(snapshot, time.Now())

	assert.Equal(t,
		[]string{models.MenuCategoryDrink, models.MenuCategoryDessert},
		menuCategoriesInUse(e))
}
