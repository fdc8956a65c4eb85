package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"DocSpot/models"
	"DocSpot/utils"
)

func TestChargeAmount(t *testing.T) {
	cases := []struct {
		fee  float64
		want int64
	}{
		{60, 6000},
		{19.99, 1999},
		{29.99, 2999},
		{0.07, 7},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, chargeAmount(tc.fee), "fee %v", tc.fee)
	}
}

func TestPayableBy(t *testing.T) {
	appointment := &models.Appointment{UserID: "user-1"}
	assert.NoError(t, payableBy(appointment, "user-1"))
	assert.EqualError(t, payableBy(appointment, "user-2"), utils.NOT_AUTHORIZED)

	cancelled := &models.Appointment{UserID: "user-1", Cancelled: true}
	assert.EqualError(t, payableBy(cancelled, "user-1"), utils.APPOINTMENT_CANCELLED)

	paid := &models.Appointment{UserID: "user-1", Payment: true}
	assert.EqualError(t, payableBy(paid, "user-1"), utils.APPOINTMENT_ALREADY_PAID)
}
