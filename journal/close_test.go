package journal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planPosition() Position {
	return Position{
		ID:                 "1",
		Ticker:             "000660",
		Name:               "SK하이닉스",
		Strategy:           "추세추종",
		EntryDate:          "2026-01-02",
		EntryPrice:         677000,
		Quantity:           10,
		Investment:         6770000,
		TargetPrice:        715000,
		StopPrice:          452000,
		PlannedHoldingDays: 20,
		PlannedExitDate:    "2026-01-22",
		ExpectedReturnPct:  5.61,
		BacktestWinRatePct: 63.6,
		Status:             "보유중",
		CurrentPrice:       677000,
	}
}

func TestCloseOnPlan(t *testing.T) {
	t.Parallel()

	b := &Book{}
	b.Add(planPosition())

	now := time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)
	ct, err := b.Close("1", 715000, GoalReached, 715000, now)
	require.NoError(t, err)

	assert.InDelta(t, 5.61, ct.ActualReturnPct, 0.01)
	assert.InDelta(t, 380000, ct.ActualProfit, 1e-6)
	assert.InDelta(t, 380000, ct.PlannedProfit, 1e-6)
	assert.InDelta(t, 0, ct.DisciplineLoss, 1e-6)
	assert.Equal(t, 20, ct.ActualHoldingDays)
	assert.InDelta(t, 100, ct.DisciplineScore, 0.5)
	assert.Equal(t, "A", ct.DisciplineGrade)
	assert.Equal(t, "2026-01-22", ct.ExitDate)
	assert.Equal(t, "2026-01-02", ct.EntryDate)
	assert.Equal(t, GoalReached, ct.ExitReason)
}

func TestCloseMovesPositionAtomically(t *testing.T) {
	t.Parallel()

	b := &Book{}
	b.Add(planPosition())
	other := planPosition()
	other.ID = "2"
	b.Add(other)

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	ct, err := b.Close("1", 700000, EarlyProfitTake, 715000, now)
	require.NoError(t, err)

	assert.Len(t, b.Positions, 1)
	assert.Len(t, b.Closed, 1)
	assert.Equal(t, "1", ct.ID)
	assert.Equal(t, "1", b.Closed[0].ID)

	_, found := b.Find("1")
	assert.False(t, found)
	_, found = b.Find("2")
	assert.True(t, found)
}

func TestCloseNotFound(t *testing.T) {
	t.Parallel()

	b := &Book{}
	b.Add(planPosition())

	_, err := b.Close("nope", 700000, GoalReached, 715000, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, b.Positions, 1)
	assert.Empty(t, b.Closed)
}

func TestCloseDisciplineLossSign(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	// Early profit take below the planned price: fell short of the plan.
	b := &Book{}
	b.Add(planPosition())
	ct, err := b.Close("1", 700000, EarlyProfitTake, 715000, now)
	require.NoError(t, err)
	assert.Negative(t, ct.DisciplineLoss)
	assert.InDelta(t, (700000-715000)*10.0, ct.DisciplineLoss, 1e-6)

	// Exit above the plan: beat it.
	b = &Book{}
	b.Add(planPosition())
	ct, err = b.Close("1", 720000, EarlyProfitTake, 715000, now)
	require.NoError(t, err)
	assert.Positive(t, ct.DisciplineLoss)
}

func TestCloseHoldingDaysRoundsUp(t *testing.T) {
	t.Parallel()

	b := &Book{}
	b.Add(planPosition())

	// 8 days and one hour after the midnight entry date rounds up to 9.
	now := time.Date(2026, 1, 10, 1, 0, 0, 0, time.UTC)
	ct, err := b.Close("1", 700000, EarlyProfitTake, 715000, now)
	require.NoError(t, err)
	assert.Equal(t, 9, ct.ActualHoldingDays)
}

func TestCloseZeroExpectedReturn(t *testing.T) {
	t.Parallel()

	p := planPosition()
	p.ExpectedReturnPct = 0
	b := &Book{}
	b.Add(p)

	// Flat exit with a zero expected return: 0/0 in the return half of the
	// score. The NaN stays in the record and the grade falls through to F.
	now := time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)
	ct, err := b.Close("1", 677000, StopLossHit, 715000, now)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(ct.DisciplineScore))
	assert.Equal(t, "F", ct.DisciplineGrade)
}

func TestGrade(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", Grade(95))
	assert.Equal(t, "A", Grade(90))
	assert.Equal(t, "B", Grade(85))
	assert.Equal(t, "C", Grade(72.5))
	assert.Equal(t, "D", Grade(60))
	assert.Equal(t, "F", Grade(59.999))
	assert.Equal(t, "F", Grade(-10))

	// Non-finite scores from a zero-denominator plan resolve through the
	// plain comparison chain: NaN fails everything, +Inf tops the scale.
	assert.Equal(t, "F", Grade(math.NaN()))
	assert.Equal(t, "A", Grade(math.Inf(1)))
	assert.Equal(t, "F", Grade(math.Inf(-1)))
}
