package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClosed(t *testing.T, s *SQLite) {
	t.Helper()

	b := &Book{Closed: []ClosedTrade{
		{ID: "T1", Ticker: "000660", Name: "SK하이닉스", ExitDate: "2026-01-10",
			ExitReason: GoalReached, ActualProfit: 380000, DisciplineGrade: "A"},
		{ID: "T2", Ticker: "005930", Name: "삼성전자", ExitDate: "2026-01-11",
			ExitReason: EarlyProfitTake, ActualProfit: 40000, DisciplineGrade: "D"},
		{ID: "T3", Ticker: "035720", Name: "카카오", ExitDate: "2026-01-11",
			ExitReason: StopLossHit, ActualProfit: -50000, DisciplineGrade: "C"},
	}}
	require.NoError(t, s.Save(b, ""))
}

func TestGetClosedTrade(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	defer s.Close()
	seedClosed(t, s)

	c, err := s.GetClosedTrade("T2")
	require.NoError(t, err)
	assert.Equal(t, "T2", c.ID)
	assert.Equal(t, "삼성전자", c.Name)
	assert.Equal(t, EarlyProfitTake, c.ExitReason)
	assert.InDelta(t, 40000, c.ActualProfit, 1e-6)
}

func TestGetClosedTradeNotFound(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	defer s.Close()

	_, err := s.GetClosedTrade("nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListClosedBetween(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	defer s.Close()
	seedClosed(t, s)

	recs, err := s.ListClosedBetween("2026-01-11", "2026-01-12")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "T2", recs[0].ID)
	assert.Equal(t, "T3", recs[1].ID)

	recs, err = s.ListClosedBetween("2026-01-01", "2026-01-11")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "T1", recs[0].ID)

	recs, err = s.ListClosedBetween("2026-02-01", "2026-02-02")
	require.NoError(t, err)
	assert.Empty(t, recs)
}
