package journal

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calm.json")
	s := NewJSONStore(path)

	b := &Book{}
	b.Add(planPosition())
	b.Closed = append(b.Closed, ClosedTrade{
		ID: "99", Ticker: "035720", Name: "카카오",
		EntryDate: "2025-12-01", ExitDate: "2025-12-15",
		EntryPrice: 45000, ExitPrice: 47000, Quantity: 20,
		ActualHoldingDays: 14, ActualReturnPct: 4.44, ActualProfit: 40000,
		ExitReason: EarlyProfitTake, PlannedExitPrice: 48600,
		PlannedProfit: 72000, DisciplineLoss: -32000,
		DisciplineScore: 61.7, DisciplineGrade: "D",
	})

	require.NoError(t, s.Save(b, "2026-01-22 10:00:00"))

	got, last, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "2026-01-22 10:00:00", last)
	require.Len(t, got.Positions, 1)
	require.Len(t, got.Closed, 1)
	assert.Equal(t, b.Positions[0], got.Positions[0])
	assert.Equal(t, b.Closed[0], got.Closed[0])
}

func TestJSONStoreMissingFileIsEmptyBook(t *testing.T) {
	t.Parallel()

	s := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))

	b, last, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, b.Positions)
	assert.Empty(t, b.Closed)
	assert.Equal(t, "", last)
}

func TestJSONStoreSnapshotLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calm.json")
	s := NewJSONStore(path)

	b := &Book{}
	b.Add(planPosition())
	require.NoError(t, s.Save(b, "now"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"positions"`)
	assert.Contains(t, string(data), `"closed"`)
	assert.Contains(t, string(data), `"entryPrice"`)
}

func TestJSONStoreUndefinedScore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calm.json")
	s := NewJSONStore(path)

	// A zero expected return makes the score non-finite; the close must
	// still survive a save. The letter grade is the durable outcome, the
	// non-finite score stores as null and reads back as NaN.
	p := planPosition()
	p.ExpectedReturnPct = 0
	b := &Book{}
	b.Add(p)

	now := time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)
	ct, err := b.Close("1", 677000, StopLossHit, 715000, now)
	require.NoError(t, err)
	require.Equal(t, "F", ct.DisciplineGrade)

	require.NoError(t, s.Save(b, "2026-01-22 10:00:00"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"disciplineScore": null`)

	got, _, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got.Closed, 1)
	assert.True(t, math.IsNaN(got.Closed[0].DisciplineScore))
	assert.Equal(t, "F", got.Closed[0].DisciplineGrade)
	assert.InDelta(t, 0, got.Closed[0].ActualReturnPct, 1e-6)
}

func TestJSONStoreInfiniteScore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calm.json")
	s := NewJSONStore(path)

	// A profitable exit against a zero expected return scores +Inf and
	// grades A. Null flattens the infinity; the grade keeps the letter.
	p := planPosition()
	p.ExpectedReturnPct = 0
	b := &Book{}
	b.Add(p)

	now := time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)
	ct, err := b.Close("1", 715000, GoalReached, 715000, now)
	require.NoError(t, err)
	require.Equal(t, "A", ct.DisciplineGrade)

	require.NoError(t, s.Save(b, ""))

	got, _, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got.Closed, 1)
	assert.True(t, math.IsNaN(got.Closed[0].DisciplineScore))
	assert.Equal(t, "A", got.Closed[0].DisciplineGrade)
}

func TestJSONStoreLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "calm.json")
	s := NewJSONStore(path)
	require.NoError(t, s.Save(&Book{}, ""))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "calm.json", entries[0].Name())
}
