package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"DocSpot/models"
	"DocSpot/utils"
)

func TestValidateBookingInput(t *testing.T) {
	valid := BookingInput{UserID: "u1", DocID: "d1", SlotDate: "1_5_2024", SlotTime: "10:00 AM"}
	assert.NoError(t, validateBookingInput(valid))

	cases := []struct {
		name  string
		input BookingInput
		want  string
	}{
		{"missing doctor", BookingInput{SlotDate: "1_5_2024", SlotTime: "10:00 AM"}, utils.MISSING_DETAILS},
		{"missing date", BookingInput{DocID: "d1", SlotTime: "10:00 AM"}, utils.MISSING_DETAILS},
		{"bad date", BookingInput{DocID: "d1", SlotDate: "2024-05-01", SlotTime: "10:00 AM"}, utils.INVALID_DATE_FORMAT},
		{"bad time", BookingInput{DocID: "d1", SlotDate: "1_5_2024", SlotTime: "25:00"}, utils.INVALID_SLOT_FORMAT},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBookingInput(tc.input)
			assert.EqualError(t, err, tc.want)
		})
	}
}

func TestCanCancel(t *testing.T) {
	appointment := models.Appointment{UserID: "user-1", DocID: "doc-1"}

	assert.True(t, canCancel(Requester{Role: "admin"}, appointment))
	assert.True(t, canCancel(Requester{Role: "user", ID: "user-1"}, appointment))
	assert.True(t, canCancel(Requester{Role: "doctor", ID: "doc-1"}, appointment))

	assert.False(t, canCancel(Requester{Role: "user", ID: "user-2"}, appointment))
	assert.False(t, canCancel(Requester{Role: "doctor", ID: "doc-2"}, appointment))
	assert.False(t, canCancel(Requester{Role: "unknown", ID: "user-1"}, appointment))
}

func TestReserveFailure(t *testing.T) {
	fetchErr := errors.New(utils.DOCTOR_NOT_FOUND)
	assert.EqualError(t, reserveFailure(nil, fetchErr), utils.DOCTOR_NOT_FOUND)

	unavailable := &models.Doctor{Available: false}
	assert.EqualError(t, reserveFailure(unavailable, nil), utils.DOCTOR_NOT_AVAILABLE)

	available := &models.Doctor{
		Available:   true,
		SlotsBooked: models.SlotLedger{"1_5_2024": {"10:00 AM"}},
	}
	assert.EqualError(t, reserveFailure(available, nil), utils.SLOT_ALREADY_BOOKED)
}

func TestReleaseSlotQuery(t *testing.T) {
	docOID := primitive.NewObjectID()
	filter, update := releaseSlotQuery(docOID, "1_5_2024", "10:00 AM")

	// matches only while the slot is still booked, so a pull on an absent
	// entry reports released=false instead of counting the write
	assert.Equal(t, bson.M{
		"_id":                   docOID,
		"slots_booked.1_5_2024": "10:00 AM",
	}, filter)
	assert.Equal(t, bson.M{
		"$pull": bson.M{"slots_booked.1_5_2024": "10:00 AM"},
	}, update)
}

func TestSnapshotsDropSecrets(t *testing.T) {
	doctor := models.Doctor{
		Name:        "Dr. John Doe",
		Password:    "hashed",
		SlotsBooked: models.SlotLedger{"1_5_2024": {"10:00 AM"}},
	}
	snap := doctor.Snapshot()
	assert.Empty(t, snap.Password)
	assert.Nil(t, snap.SlotsBooked)
	// the original is untouched
	assert.NotEmpty(t, doctor.Password)

	user := models.User{Name: "Jane Roe", Password: "hashed"}
	assert.Empty(t, user.Snapshot().Password)
}
