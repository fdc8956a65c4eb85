package routes

import (
	"github.com/gin-gonic/gin"

	"DocSpot/controllers"
)

func Routes(r *gin.Engine) {
	api := r.Group("/api")

	controllers.User(api)
	controllers.Doctor(api)
	controllers.Admin(api)
}
