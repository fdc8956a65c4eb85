package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"DocSpot/models"
)

func TestGenerateReceiptPDF(t *testing.T) {
	appointment := models.Appointment{
		ID:        primitive.NewObjectID(),
		SlotDate:  "1_5_2024",
		SlotTime:  "10:00 AM",
		UserData:  models.User{Name: "Jane Roe"},
		DocData:   models.Doctor{Name: "Dr. John Doe", Speciality: "Dermatologist"},
		Amount:    60,
		Date:      time.Now(),
		Payment:   true,
		PaymentID: "chrg_test_123",
	}

	pdf, err := GenerateReceiptPDF(appointment)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
