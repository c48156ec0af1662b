package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"cartera-web/models"
)

const saveSuccessMessage = "Se grabó el registro satisfactoriamente"

// RegistrarCartera shows the registration form with the type selector.
func (h *Handler) RegistrarCartera(c *gin.Context) {
	tipos, err := h.Store.PortfolioTypes()
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "RegistrarCartera.html", gin.H{"Tipos": tipos})
}

// GrabarCartera inserts one cartera row from the posted form. Non-numeric
// precio or tipo fails the request outright; the date travels as a raw
// string. Re-submitting the form inserts again.
func (h *Handler) GrabarCartera(c *gin.Context) {
	descripcion := strings.TrimSpace(c.PostForm("descripcion"))

	precio, err := decimal.NewFromString(strings.TrimSpace(c.PostForm("precio")))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	fecha := c.PostForm("fecha")
	tipo, err := strconv.Atoi(c.PostForm("tipo"))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	item := models.Cartera{
		Descripcion: descripcion,
		Precio:      precio,
		Fecha:       fecha,
		TipoID:      uint(tipo),
	}
	if err := h.Store.InsertItem(&item); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	tipos, err := h.Store.PortfolioTypes()
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "RegistrarCartera.html", gin.H{
		"Tipos":   tipos,
		"Mensaje": saveSuccessMessage,
	})
}

// ConsultarCartera shows the search form with the type selector.
func (h *Handler) ConsultarCartera(c *gin.Context) {
	tipos, err := h.Store.PortfolioTypes()
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "ConsultarCartera.html", gin.H{"Tipos": tipos})
}

// BuscarCartera lists the cartera rows of the selected type, newest date
// first. An empty result set still renders the page.
func (h *Handler) BuscarCartera(c *gin.Context) {
	tipo, err := strconv.Atoi(c.PostForm("tipo"))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	tipos, err := h.Store.PortfolioTypes()
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	resultados, err := h.Store.ItemsByType(tipo)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "ConsultarCartera.html", gin.H{
		"Tipos":      tipos,
		"Resultados": resultados,
	})
}
