package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"DocSpot/models"
)

func TestBuildDoctorDashboard(t *testing.T) {
	appointments := []models.Appointment{
		{UserID: "u1", Amount: 50, Payment: true},
		{UserID: "u2", Amount: 60, IsCompleted: true},
		{UserID: "u1", Amount: 70, Payment: true, Cancelled: true}, // cancelled, no earnings
		{UserID: "u3", Amount: 80},                                // unpaid, no earnings
	}

	dashboard := BuildDoctorDashboard(appointments)

	assert.Equal(t, float64(110), dashboard.Earnings)
	assert.Equal(t, 4, dashboard.Appointments)
	assert.Equal(t, 3, dashboard.Patients)
	assert.Len(t, dashboard.LatestAppointments, 4)
}

func TestBuildDoctorDashboardLatestCap(t *testing.T) {
	appointments := make([]models.Appointment, 8)
	for i := range appointments {
		appointments[i].UserID = "u1"
	}
	dashboard := BuildDoctorDashboard(appointments)
	assert.Len(t, dashboard.LatestAppointments, 5)
	assert.Equal(t, 8, dashboard.Appointments)
	assert.Equal(t, 1, dashboard.Patients)
}

func TestBuildDoctorDashboardEmpty(t *testing.T) {
	dashboard := BuildDoctorDashboard(nil)
	assert.Zero(t, dashboard.Earnings)
	assert.Zero(t, dashboard.Appointments)
	assert.Zero(t, dashboard.Patients)
	assert.Empty(t, dashboard.LatestAppointments)
}
