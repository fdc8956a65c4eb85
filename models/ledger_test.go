package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerReserveAndConflict(t *testing.T) {
	ledger := SlotLedger{}

	err := ledger.Reserve("1_5_2024", "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00 AM"}, ledger["1_5_2024"])

	// Same slot again must fail and leave the ledger unchanged
	err = ledger.Reserve("1_5_2024", "10:00 AM")
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, []string{"10:00 AM"}, ledger["1_5_2024"])
}

func TestLedgerNoDuplicates(t *testing.T) {
	ledger := SlotLedger{}
	slots := []string{"10:00 AM", "10:30 AM", "11:00 AM", "10:00 AM", "10:30 AM"}
	for _, s := range slots {
		_ = ledger.Reserve("2_5_2024", s)
	}

	seen := map[string]int{}
	for _, s := range ledger["2_5_2024"] {
		seen[s]++
	}
	for slot, count := range seen {
		assert.Equal(t, 1, count, "slot %s appears more than once", slot)
	}
	assert.Len(t, ledger["2_5_2024"], 3)
}

func TestLedgerReleaseRoundTrip(t *testing.T) {
	ledger := SlotLedger{}
	require.NoError(t, ledger.Reserve("1_5_2024", "10:00 AM"))
	require.NoError(t, ledger.Reserve("1_5_2024", "10:30 AM"))

	removed := ledger.Release("1_5_2024", "10:00 AM")
	assert.True(t, removed)
	assert.Equal(t, []string{"10:30 AM"}, ledger["1_5_2024"])

	// Slot is bookable again after release
	assert.NoError(t, ledger.Reserve("1_5_2024", "10:00 AM"))
}

func TestLedgerReleaseAbsentIsNoOp(t *testing.T) {
	ledger := SlotLedger{}

	assert.False(t, ledger.Release("1_5_2024", "10:00 AM"))
	_, exists := ledger["1_5_2024"]
	assert.False(t, exists, "release must not create the date entry")

	ledger["2_5_2024"] = []string{"9:00 AM"}
	assert.False(t, ledger.Release("2_5_2024", "10:00 AM"))
	assert.Equal(t, []string{"9:00 AM"}, ledger["2_5_2024"])
}

func TestLedgerReleaseTwice(t *testing.T) {
	ledger := SlotLedger{}
	require.NoError(t, ledger.Reserve("1_5_2024", "10:00 AM"))

	assert.True(t, ledger.Release("1_5_2024", "10:00 AM"))
	assert.False(t, ledger.Release("1_5_2024", "10:00 AM"))
	assert.Empty(t, ledger["1_5_2024"])
}

func TestLedgerScenario(t *testing.T) {
	// Empty ledger, reserve, conflict, release
	ledger := SlotLedger{}

	require.NoError(t, ledger.Reserve("1_5_2024", "10:00 AM"))
	assert.Equal(t, SlotLedger{"1_5_2024": {"10:00 AM"}}, ledger)

	assert.ErrorIs(t, ledger.Reserve("1_5_2024", "10:00 AM"), ErrSlotTaken)
	assert.Equal(t, SlotLedger{"1_5_2024": {"10:00 AM"}}, ledger)

	assert.True(t, ledger.Release("1_5_2024", "10:00 AM"))
	assert.Equal(t, []string{}, ledger["1_5_2024"])
}

func TestLedgerHas(t *testing.T) {
	ledger := SlotLedger{"1_5_2024": {"10:00 AM"}}

	assert.True(t, ledger.Has("1_5_2024", "10:00 AM"))
	assert.False(t, ledger.Has("1_5_2024", "10:30 AM"))
	assert.False(t, ledger.Has("2_5_2024", "10:00 AM"))
}
