package engine

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/selfbiz/costplan/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputPrecedence(t *testing.T) {
	// no output path means console
	dest, err := DetermineOutput(&models.Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &ConsoleOutput{}, dest)

	dest, err = DetermineOutput(&models.Config{OutputPath: "out", OutputFormat: "json"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &JSONOutput{}, dest)

	dest, err = DetermineOutput(&models.Config{OutputPath: "out", OutputFormat: "csv"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &CSVOutput{}, dest)

	_, err = DetermineOutput(&models.Config{OutputPath: "out", OutputFormat: "xml"}, nil)
	assert.Error(t, err)

	// postgres output needs a report store wired in
	_, err = DetermineOutput(&models.Config{OutputDestination: "postgres"}, nil)
	assert.Error(t, err)
}

func TestJSONOutputWritesNewlineDelimitedRows(t *testing.T) {
	dir := t.TempDir()
	out := NewJSONOutput(dir, "reports")

	require.NoError(t, out.WriteMessage("menu_economics", []byte(`{"menu_name":"Americano"}`)))
	require.NoError(t, out.WriteMessage("menu_economics", []byte(`{"menu_name":"Latte"}`)))
	require.NoError(t, out.Close())

	data, err := os.ReadFile(filepath.Join(dir, "reports", "menu_economics", "data.json"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Americano")
}

func TestCSVOutputWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	out := NewCSVOutput(dir, "reports")

	require.NoError(t, out.WriteMessage("menu_economics", []byte(`{"menu_name":"Americano","cost":432}`)))
	require.NoError(t, out.WriteMessage("menu_economics", []byte(`{"menu_name":"Latte","cost":650}`)))
	require.NoError(t, out.Close())

	file, err := os.Open(filepath.Join(dir, "reports", "menu_economics", "data.csv"))
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// headers come out sorted
	assert.Equal(t, []string{"cost", "menu_name"}, records[0])
	assert.Equal(t, []string{"432", "Americano"}, records[1])
}

func TestConsoleOutput(t *testing.T) {
	out := &ConsoleOutput{}
	assert.NoError(t, out.WriteMessage("menu_economics", []byte(`{}`)))
	assert.NoError(t, out.Close())
}

func TestGetSchemaKnownTopics(t *testing.T) {
	for _, topic := range []string{
		TopicMenuEconomics,
		TopicOverheadMonthly,
		TopicOverheadAllocation,
		TopicScenarioResults,
		TopicTaxEstimates,
	} {
		sc, err := GetSchema(topic)
		require.NoError(t, err, topic)
		assert.NotNil(t, sc, topic)
	}

	_, err := GetSchema("no_such_topic")
	assert.Error(t, err)
}
