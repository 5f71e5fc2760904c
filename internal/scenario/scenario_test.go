package scenario

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
)

func TestNew_StampsIdentity(t *testing.T) {
	result := roi.Calculate(roi.DefaultInputs())

	sc := New("acme-expansion", "Acme Tours", result, true)

	_, err := uuid.Parse(sc.ID)
	require.NoError(t, err, "id should be a valid uuid")
	assert.Equal(t, "acme-expansion", sc.Name)
	assert.Equal(t, "Acme Tours", sc.Company)
	assert.True(t, sc.Draft)
	assert.Equal(t, result.Inputs, sc.Inputs)
	assert.Equal(t, result.Metrics, sc.Metrics)
	assert.Equal(t, result.Interpretation, sc.Interpretation)
	assert.False(t, sc.CreatedAt.IsZero())
	assert.Equal(t, sc.CreatedAt, sc.UpdatedAt)
	assert.Equal(t, time.UTC, sc.CreatedAt.Location())
}

func TestNew_DistinctIDs(t *testing.T) {
	result := roi.Calculate(roi.DefaultInputs())

	a := New("first", "Acme Tours", result, false)
	b := New("second", "Acme Tours", result, false)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestScenarioJSON_RoundTrip(t *testing.T) {
	result := roi.Calculate(roi.DefaultInputs())
	sc := New("benchmark", "AnyRoad", result, false)

	data, err := json.Marshal(sc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"payback_indefinite":false`)

	var got Scenario
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, sc.ID, got.ID)
	assert.Equal(t, sc.Name, got.Name)
	assert.Equal(t, sc.Company, got.Company)
	assert.Equal(t, sc.Inputs, got.Inputs)
	assert.Equal(t, sc.Metrics, got.Metrics)
	assert.Equal(t, sc.Interpretation, got.Interpretation)
	assert.Equal(t, sc.Draft, got.Draft)
	assert.True(t, got.CreatedAt.Equal(sc.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(sc.UpdatedAt))
}

// An indefinite payback is +Inf in memory, which encoding/json cannot
// carry. The wire form lowers it to null plus a flag and the decoder
// restores the sentinel.
func TestScenarioJSON_IndefinitePayback(t *testing.T) {
	inputs := roi.DefaultInputs()
	inputs.Benefits = roi.QuantifiableBenefits{}
	result := roi.Calculate(inputs)
	require.True(t, math.IsInf(result.Metrics.PaybackPeriodYears, 1))

	sc := New("no-benefit", "Acme Tours", result, true)

	data, err := json.Marshal(sc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"payback_period_years":null`)
	assert.Contains(t, string(data), `"payback_indefinite":true`)

	var got Scenario
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, math.IsInf(got.Metrics.PaybackPeriodYears, 1))

	// The sentinel survives a second trip unchanged.
	again, err := json.Marshal(&got)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}
