package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDateSerial(t *testing.T) {
	t.Parallel()

	// 46024 - 25569 days after the Unix epoch is 2026-01-02.
	assert.Equal(t, "2026-01-02", NormalizeDate(46024.0))
	assert.Equal(t, "2026-01-01", NormalizeDate(46023))
	assert.Equal(t, "1970-01-01", NormalizeDate(25569.0))
}

func TestNormalizeDateSerialString(t *testing.T) {
	t.Parallel()

	// Spreadsheet readers deliver every cell as a string; an all-numeric
	// string still counts as a serial day-count.
	assert.Equal(t, "2026-01-02", NormalizeDate("46024"))
}

func TestNormalizeDateSerialDropsTimeOfDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-01-02", NormalizeDate(46024.75))
}

func TestNormalizeDateSlash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-01-02", NormalizeDate("1/2/2026"))
	assert.Equal(t, "2025-12-15", NormalizeDate("12/15/2025"))
}

func TestNormalizeDateEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", NormalizeDate(""))
	assert.Equal(t, "", NormalizeDate(nil))
	assert.Equal(t, "", NormalizeDate(0.0))
}

func TestNormalizeDatePassthrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-01-02", NormalizeDate("2026-01-02"))

	// Malformed strings propagate unchanged, silently.
	assert.Equal(t, "not a date", NormalizeDate("not a date"))
	assert.Equal(t, "1/2", NormalizeDate("1/2"))
	assert.Equal(t, "1/2/3/4", NormalizeDate("1/2/3/4"))
}
