package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"DocSpot/models"
)

func TestPastDateKeys(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
	ledger := models.SlotLedger{
		"9_5_2024":   {"10:00 AM"},
		"10_5_2024":  {"11:00 AM"}, // today, keep
		"11_5_2024":  {"12:00 PM"},
		"1_1_2023":   {},
		"not_a_date": {"10:00 AM"}, // unparseable, keep
	}

	stale := PastDateKeys(ledger, now)
	assert.ElementsMatch(t, []string{"9_5_2024", "1_1_2023"}, stale)
}

func TestPastDateKeysEmpty(t *testing.T) {
	assert.Empty(t, PastDateKeys(models.SlotLedger{}, time.Now()))
}

func TestParseDateKey(t *testing.T) {
	date, ok := parseDateKey("1_5_2024")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), date)

	_, ok = parseDateKey("2024-05-01")
	assert.False(t, ok)
	_, ok = parseDateKey("1_5")
	assert.False(t, ok)
}
