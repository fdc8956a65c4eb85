package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"DocSpot/authentication"
	"DocSpot/services"
	"DocSpot/utils"
)

func Doctor(r *gin.RouterGroup) {
	doctor := r.Group("/doctor")
	{
		doctor.GET("/list", DoctorList)
		doctor.POST("/login", LoginDoctor)
		doctor.GET("/appointments", authentication.AuthDoctor(), ListDoctorAppointments)
		doctor.POST("/complete-appointment", authentication.AuthDoctor(), CompleteAppointment)
		doctor.POST("/cancel-appointment", authentication.AuthDoctor(), CancelDoctorAppointment)
		doctor.POST("/change-availability", authentication.AuthDoctor(), DoctorChangeAvailability)
		doctor.GET("/dashboard", authentication.AuthDoctor(), DoctorDashboard)
		doctor.GET("/profile", authentication.AuthDoctor(), DoctorProfile)
		doctor.POST("/update-profile", authentication.AuthDoctor(), UpdateDoctorProfile)
	}
}

/*
* Public listing for the patient frontend
 */
func DoctorList(c *gin.Context) {
	doctors, err := services.FetchDoctorList(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(doctors))
}

func LoginDoctor(c *gin.Context) {
	var data struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	token, err := services.LoginDoctor(c, data.Email, data.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func ListDoctorAppointments(c *gin.Context) {
	appointments, err := services.FetchAppointmentsByDoctor(c, c.GetString("docId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointments))
}

func CompleteAppointment(c *gin.Context) {
	var data struct {
		AppointmentID string `json:"appointmentId"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := services.CompleteAppointment(c, data.AppointmentID, c.GetString("docId")); err != nil {
		c.JSON(cancelStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.MessageResponse("appointment completed"))
}

func CancelDoctorAppointment(c *gin.Context) {
	var data struct {
		AppointmentID string `json:"appointmentId"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	requester := services.Requester{Role: authentication.RoleDoctor, ID: c.GetString("docId")}
	if err := services.CancelAppointment(c, data.AppointmentID, requester); err != nil {
		c.JSON(cancelStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.MessageResponse("appointment cancelled"))
}

/*
* Doctor toggles their own availability
 */
func DoctorChangeAvailability(c *gin.Context) {
	available, err := services.ChangeAvailability(c, c.GetString("docId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"available": available}))
}

func DoctorDashboard(c *gin.Context) {
	dashboard, err := services.FetchDoctorDashboard(c, c.GetString("docId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(dashboard))
}

func DoctorProfile(c *gin.Context) {
	profile, err := services.FetchDoctorProfile(c, c.GetString("docId"))
	if err != nil {
		c.JSON(http.StatusNotFound, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(profile))
}

func UpdateDoctorProfile(c *gin.Context) {
	var update services.DoctorProfileUpdate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := services.UpdateDoctorProfile(c, c.GetString("docId"), update); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.MessageResponse("profile updated"))
}
