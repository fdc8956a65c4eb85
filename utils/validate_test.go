package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("jane@example.com"))
	assert.Error(t, ValidateEmail("jane@"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
}

func TestValidateSlotDate(t *testing.T) {
	valid := []string{"1_5_2024", "31_12_2025", "05_06_2024"}
	for _, d := range valid {
		assert.NoError(t, ValidateSlotDate(d), d)
	}

	invalid := []string{"", "2024-05-01", "1_5", "32_5_2024", "1_13_2024", "1_5_24", "a_b_c"}
	for _, d := range invalid {
		assert.Error(t, ValidateSlotDate(d), d)
	}
}

func TestValidateSlotTime(t *testing.T) {
	valid := []string{"10:00 AM", "3:30 pm", "12:45 PM", "09:15 am"}
	for _, s := range valid {
		assert.NoError(t, ValidateSlotTime(s), s)
	}

	invalid := []string{"", "10:00", "13:00 PM", "10:60 AM", "10.00 AM", "10:00AM"}
	for _, s := range invalid {
		assert.Error(t, ValidateSlotTime(s), s)
	}
}
