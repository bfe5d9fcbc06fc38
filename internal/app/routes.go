package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notepod/core/internal/modules/category"
	"github.com/notepod/core/internal/modules/note"
	"github.com/notepod/core/internal/modules/tag"
	"github.com/notepod/core/internal/modules/user"
	"github.com/notepod/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})

	root := r.Group("")

	note.NewHandler(note.NewService(db, a.logger)).RegisterRoutes(root)
	tag.NewHandler(tag.NewService(db)).RegisterRoutes(root)
	category.NewHandler(category.NewService(db)).RegisterRoutes(root)
	user.NewHandler(user.NewService(db)).RegisterRoutes(root)
}
