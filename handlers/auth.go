package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cartera-web/database"
	"cartera-web/middleware"
	"cartera-web/session"
)

// Handler bundles the store and session manager the routes need. One value
// serves all requests; it holds no per-request state.
type Handler struct {
	Store    *database.Store
	Sessions *session.Manager
}

const loginFailureMessage = "Usuario o clave incorrectos"

// ShowLogin renders the login form.
func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "Login.html", gin.H{})
}

// Login checks the posted credentials against the usuario table. A match
// establishes the session and sends the user to the main menu; a miss
// re-renders the form with a generic notice.
func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	user, err := h.Store.UserByCredentials(username, password)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		c.HTML(http.StatusOK, "Login.html", gin.H{"Mensaje": loginFailureMessage})
		return
	}

	if err := h.Sessions.Establish(c, *user); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/principal")
}

// Logout clears the session and returns to the login form.
func (h *Handler) Logout(c *gin.Context) {
	h.Sessions.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}

// Principal renders the main menu for the signed-in user.
func (h *Handler) Principal(c *gin.Context) {
	claims := c.MustGet(middleware.ContextClaims).(*session.Claims)
	c.HTML(http.StatusOK, "Principal.html", gin.H{"Username": claims.Username})
}
