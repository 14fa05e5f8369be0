package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCleanPosition(t *testing.T) {
	t.Parallel()

	p := planPosition()
	assert.Empty(t, p.Validate())
}

func TestValidateEnumeratesProblems(t *testing.T) {
	t.Parallel()

	issues := Position{}.Validate()

	fields := map[string]bool{}
	for _, i := range issues {
		fields[i.Field] = true
	}
	assert.True(t, fields["id"])
	assert.True(t, fields["ticker"])
	assert.True(t, fields["entryDate"])
	assert.True(t, fields["entryPrice"])
	assert.True(t, fields["quantity"])
	assert.True(t, fields["plannedHoldingDays"])
	assert.True(t, fields["expectedReturnPct"])
}

func TestValidateInvestmentMismatch(t *testing.T) {
	t.Parallel()

	p := planPosition()
	p.Investment = 1

	issues := p.Validate()
	assert.Len(t, issues, 1)
	assert.Equal(t, "investment", issues[0].Field)
}

func TestValidateZeroInvestmentTolerated(t *testing.T) {
	t.Parallel()

	// Lenient import defaults missing numerics to zero; that alone is not an
	// investment mismatch.
	p := planPosition()
	p.Investment = 0
	assert.Empty(t, p.Validate())
}
