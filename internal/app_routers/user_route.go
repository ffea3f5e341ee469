package approuters

import (
	"github.com/SalllesAndr/user-service/internal/configuration"

	"github.com/gin-gonic/gin"
)

func UserRouters(router *gin.Engine, container *configuration.Container) {
	h := container.UserHandler

	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.POST("/createUser", h.CreateUser)
	router.DELETE("/deleteUser/:user_id", h.DeleteUser)
	router.PUT("/updateUser/:user_id", h.UpdateUser)
	router.GET("/getUserByID/:user_id", h.GetUserByID)
	router.GET("/getUsers", h.GetUsers)
	router.GET("/getStudents", h.GetStudents)
	router.GET("/getProfessors", h.GetProfessors)
}
