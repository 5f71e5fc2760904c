package scenario

import (
	"context"
	"math"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/config"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/database"
)

// integrationRepo connects through the real config, skipping when no
// database is available to the test run.
func integrationRepo(t *testing.T) *Repository {
	t.Helper()
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return NewRepository(db.Pool)
}

// saveScenario writes a scenario and schedules its removal.
func saveScenario(t *testing.T, r *Repository, sc *Scenario) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, r.Save(ctx, sc))
	t.Cleanup(func() {
		_ = r.Delete(context.Background(), sc.ID)
	})
}

func TestRepository_SaveGetRoundTrip(t *testing.T) {
	r := integrationRepo(t)
	ctx := context.Background()

	sc := New("acme-expansion", "Acme Tours", roi.Calculate(roi.DefaultInputs()), false)
	saveScenario(t, r, sc)

	got, err := r.Get(ctx, sc.ID)
	require.NoError(t, err)

	assert.Equal(t, sc.ID, got.ID)
	assert.Equal(t, sc.Name, got.Name)
	assert.Equal(t, sc.Company, got.Company)
	assert.Equal(t, sc.Inputs, got.Inputs)
	assert.Equal(t, sc.Metrics, got.Metrics)
	assert.Equal(t, sc.Interpretation, got.Interpretation)
	assert.False(t, got.Draft)
	// timestamptz carries microseconds, not nanoseconds
	assert.WithinDuration(t, sc.CreatedAt, got.CreatedAt, time.Second)
	assert.WithinDuration(t, sc.UpdatedAt, got.UpdatedAt, time.Second)
}

// The +Inf payback sentinel must survive the float8 column unchanged.
func TestRepository_IndefinitePaybackColumn(t *testing.T) {
	r := integrationRepo(t)
	ctx := context.Background()

	inputs := roi.DefaultInputs()
	inputs.Benefits = roi.QuantifiableBenefits{}
	result := roi.Calculate(inputs)
	require.True(t, math.IsInf(result.Metrics.PaybackPeriodYears, 1))

	sc := New("no-benefit", "Acme Tours", result, true)
	saveScenario(t, r, sc)

	got, err := r.Get(ctx, sc.ID)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Metrics.PaybackPeriodYears, 1))
	assert.Equal(t, result.Metrics, got.Metrics)
}

func TestRepository_SaveUpserts(t *testing.T) {
	r := integrationRepo(t)
	ctx := context.Background()

	sc := New("draft-case", "Acme Tours", roi.Calculate(roi.DefaultInputs()), true)
	saveScenario(t, r, sc)
	firstUpdate := sc.UpdatedAt

	sc.Name = "final-case"
	sc.Draft = false
	require.NoError(t, r.Save(ctx, sc))

	got, err := r.Get(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, "final-case", got.Name)
	assert.False(t, got.Draft)
	// created_at is set on insert only; updated_at moves with each save
	assert.WithinDuration(t, sc.CreatedAt, got.CreatedAt, time.Second)
	assert.False(t, got.UpdatedAt.Before(firstUpdate))
}

func TestRepository_GetUnknownID(t *testing.T) {
	r := integrationRepo(t)

	_, err := r.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_DeleteTwice(t *testing.T) {
	r := integrationRepo(t)
	ctx := context.Background()

	sc := New("short-lived", "Acme Tours", roi.Calculate(roi.DefaultInputs()), true)
	saveScenario(t, r, sc)

	require.NoError(t, r.Delete(ctx, sc.ID))
	assert.ErrorIs(t, r.Delete(ctx, sc.ID), ErrNotFound)
}

func TestRepository_ListOrdersByUpdate(t *testing.T) {
	r := integrationRepo(t)
	ctx := context.Background()

	older := New("older-case", "Acme Tours", roi.Calculate(roi.DefaultInputs()), false)
	saveScenario(t, r, older)
	newer := New("newer-case", "Acme Tours", roi.Calculate(roi.DefaultInputs()), false)
	saveScenario(t, r, newer)

	list, err := r.List(ctx, 500, 0)
	require.NoError(t, err)

	positions := map[string]int{}
	for i, sc := range list {
		positions[sc.ID] = i
	}
	newerPos, ok := positions[newer.ID]
	require.True(t, ok, "newer scenario missing from listing")
	olderPos, ok := positions[older.ID]
	require.True(t, ok, "older scenario missing from listing")
	assert.Less(t, newerPos, olderPos, "most recently updated must list first")
}

func TestRepository_PruneDrafts(t *testing.T) {
	r := integrationRepo(t)
	ctx := context.Background()

	staleDraft := New("stale-draft", "Acme Tours", roi.Calculate(roi.DefaultInputs()), true)
	saveScenario(t, r, staleDraft)
	staleKeeper := New("stale-keeper", "Acme Tours", roi.Calculate(roi.DefaultInputs()), false)
	saveScenario(t, r, staleKeeper)
	freshDraft := New("fresh-draft", "Acme Tours", roi.Calculate(roi.DefaultInputs()), true)
	saveScenario(t, r, freshDraft)

	backdate := time.Now().UTC().AddDate(0, 0, -40)
	for _, id := range []string{staleDraft.ID, staleKeeper.ID} {
		_, err := r.pool.Exec(ctx,
			`UPDATE roi.scenarios SET updated_at = $1 WHERE id = $2`, backdate, id)
		require.NoError(t, err)
	}

	removed, err := r.PruneDrafts(ctx, time.Now().UTC().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1))

	_, err = r.Get(ctx, staleDraft.ID)
	assert.ErrorIs(t, err, ErrNotFound, "stale draft must be pruned")

	_, err = r.Get(ctx, staleKeeper.ID)
	assert.NoError(t, err, "named scenarios are never pruned")

	_, err = r.Get(ctx, freshDraft.ID)
	assert.NoError(t, err, "drafts inside the retention window are kept")
}
