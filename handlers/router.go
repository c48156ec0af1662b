package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cartera-web/database"
	"cartera-web/middleware"
	"cartera-web/session"
	"cartera-web/templates"
)

// NewRouter wires the full route surface onto a gin engine.
func NewRouter(store *database.Store, sessions *session.Manager) *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(templates.Parse())

	h := &Handler{Store: store, Sessions: sessions}

	// Public routes
	router.GET("/", h.ShowLogin)
	router.POST("/", h.Login)
	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)
	router.GET("/logout", h.Logout)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Protected routes
	auth := router.Group("/")
	auth.Use(middleware.RequireAuth(sessions))
	{
		auth.GET("/principal", h.Principal)
		auth.GET("/RegistrarCartera", h.RegistrarCartera)
		auth.POST("/GrabarCartera", h.GrabarCartera)
		auth.GET("/ConsultarCartera", h.ConsultarCartera)
		auth.POST("/BuscarCartera", h.BuscarCartera)
	}

	return router
}
