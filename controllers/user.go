package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"DocSpot/authentication"
	"DocSpot/services"
	"DocSpot/utils"
)

func User(r *gin.RouterGroup) {
	user := r.Group("/user")
	{
		user.POST("/register", RegisterUser)
		user.POST("/login", LoginUser)
		user.GET("/get-profile", authentication.AuthUser(), GetProfile)
		user.POST("/update-profile", authentication.AuthUser(), UpdateProfile)
		user.POST("/book-appointment", authentication.AuthUser(), BookAppointment)
		user.GET("/appointments", authentication.AuthUser(), ListUserAppointments)
		user.POST("/cancel-appointment", authentication.AuthUser(), CancelUserAppointment)
		user.POST("/pay-appointment", authentication.AuthUser(), PayAppointment)
		user.POST("/verify-payment", authentication.AuthUser(), VerifyPayment)
		user.GET("/receipt/:appointmentId", authentication.AuthUser(), DownloadReceipt)
	}
}

/*
* Bind JSON
* And Pass to the service
 */
func RegisterUser(c *gin.Context) {
	var data struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	token, err := services.RegisterUser(c, data.Name, data.Email, data.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func LoginUser(c *gin.Context) {
	var data struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	token, err := services.LoginUser(c, data.Email, data.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

/*
* Get userId from the context
* Pass to the service
 */
func GetProfile(c *gin.Context) {
	userID := c.GetString("userId")
	user, err := services.FetchUserProfile(c, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(user))
}

/*
* Multipart form: name, phone, address (JSON), gender, dob, optional image
 */
func UpdateProfile(c *gin.Context) {
	update := services.UserProfileUpdate{
		Name:    c.PostForm("name"),
		Phone:   c.PostForm("phone"),
		Address: c.PostForm("address"),
		Gender:  c.PostForm("gender"),
		Dob:     c.PostForm("dob"),
	}
	if file, err := c.FormFile("image"); err == nil {
		update.Image = file
	}
	if err := services.UpdateUserProfile(c, c.GetString("userId"), update); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.MessageResponse("profile updated"))
}

/*
* Bind slot coordinates and pass to the booking service
 */
func BookAppointment(c *gin.Context) {
	var data struct {
		DocID    string `json:"docId"`
		SlotDate string `json:"slotDate"`
		SlotTime string `json:"slotTime"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	appointment, err := services.BookAppointment(c, services.BookingInput{
		UserID:   c.GetString("userId"),
		DocID:    data.DocID,
		SlotDate: data.SlotDate,
		SlotTime: data.SlotTime,
	})
	if err != nil {
		c.JSON(bookingStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointment))
}

func ListUserAppointments(c *gin.Context) {
	appointments, err := services.FetchAppointmentsByUser(c, c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointments))
}

func CancelUserAppointment(c *gin.Context) {
	var data struct {
		AppointmentID string `json:"appointmentId"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	requester := services.Requester{Role: authentication.RoleUser, ID: c.GetString("userId")}
	if err := services.CancelAppointment(c, data.AppointmentID, requester); err != nil {
		c.JSON(cancelStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.MessageResponse("appointment cancelled"))
}

func PayAppointment(c *gin.Context) {
	var data struct {
		AppointmentID string `json:"appointmentId"`
		CardToken     string `json:"cardToken"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	charge, err := services.PayAppointment(c, c.GetString("userId"), data.AppointmentID, data.CardToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"chargeId": charge.ID, "status": charge.Status}))
}

func VerifyPayment(c *gin.Context) {
	var data struct {
		AppointmentID string `json:"appointmentId"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	paid, err := services.VerifyPayment(c, c.GetString("userId"), data.AppointmentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"payment": paid}))
}

/*
* Stream the PDF receipt for a paid appointment
 */
func DownloadReceipt(c *gin.Context) {
	pdf, err := services.AppointmentReceipt(c, c.GetString("userId"), c.Param("appointmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.Header("Content-Disposition", "attachment; filename=receipt.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
