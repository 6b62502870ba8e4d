package routes

import (
	api "pereval-api/internal/api/passes"
	"pereval-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	h := api.NewHandler(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	submit := r.Group("/")
	submit.Use(middleware.SanitizeInputMiddleware())

	submit.POST("/submitData/", h.SubmitData)
	submit.GET("/submitData/", h.ListByEmail)
	submit.GET("/submitData/:id", h.GetByID)
	submit.PATCH("/submitData/:id", h.UpdateData)
}
