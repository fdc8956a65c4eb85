package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"DocSpot/authentication"
	"DocSpot/services"
	"DocSpot/utils"
)

func Admin(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.POST("/login", LoginAdmin)
		admin.POST("/add-doctor", authentication.AuthAdmin(), AddDoctor)
		admin.GET("/all-doctors", authentication.AuthAdmin(), AllDoctors)
		admin.POST("/change-availability", authentication.AuthAdmin(), AdminChangeAvailability)
		admin.GET("/appointments", authentication.AuthAdmin(), ListAllAppointments)
		admin.POST("/cancel-appointment", authentication.AuthAdmin(), CancelAdminAppointment)
		admin.GET("/dashboard", authentication.AuthAdmin(), AdminDashboard)
	}
}

func LoginAdmin(c *gin.Context) {
	var data struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	token, err := services.LoginAdmin(data.Email, data.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

/*
* Multipart form with the doctor fields and the image file
* Pass to the service
 */
func AddDoctor(c *gin.Context) {
	input := services.AddDoctorInput{
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		Password:   c.PostForm("password"),
		Speciality: c.PostForm("speciality"),
		Degree:     c.PostForm("degree"),
		Experience: c.PostForm("experience"),
		About:      c.PostForm("about"),
		Fees:       c.PostForm("fees"),
		Address:    c.PostForm("address"),
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}
	doctor, err := services.AddDoctor(c, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(doctor))
}

func AllDoctors(c *gin.Context) {
	doctors, err := services.FetchAllDoctors(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(doctors))
}

/*
* Toggle a doctor's availability from the admin panel
 */
func AdminChangeAvailability(c *gin.Context) {
	var data struct {
		DocID string `json:"docId"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	available, err := services.ChangeAvailability(c, data.DocID)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"available": available}))
}

func ListAllAppointments(c *gin.Context) {
	appointments, err := services.FetchAllAppointments(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointments))
}

func CancelAdminAppointment(c *gin.Context) {
	var data struct {
		AppointmentID string `json:"appointmentId"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	requester := services.Requester{Role: authentication.RoleAdmin}
	if err := services.CancelAppointment(c, data.AppointmentID, requester); err != nil {
		c.JSON(cancelStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.MessageResponse("appointment cancelled"))
}

func AdminDashboard(c *gin.Context) {
	dashboard, err := services.FetchAdminDashboard(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(dashboard))
}
