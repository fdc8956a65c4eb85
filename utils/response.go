package utils

import "github.com/gin-gonic/gin"

/*
* Uniform response envelope
* Every handler answers {"success": bool, ...}
 */
func SuccessResponse(data interface{}) gin.H {
	return gin.H{"success": true, "data": data}
}

func FailedResponse(err error) gin.H {
	return gin.H{"success": false, "message": err.Error()}
}

func MessageResponse(msg string) gin.H {
	return gin.H{"success": true, "message": msg}
}
