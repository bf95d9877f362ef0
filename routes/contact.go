package routes

import (
	"github.com/gin-gonic/gin"

	messageControllers "github.com/Renzo49/Prudente-Pharmacy-04/controllers/message"
)

func SetupContactRoutes(r *gin.Engine, d Deps) {
	r.POST("/contact", messageControllers.ContactHandler(d.Messages))
}
