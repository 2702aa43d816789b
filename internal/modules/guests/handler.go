package guests

import (
	"errors"
	"net/http"

	"moorehotels/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/guests", h.List)
	rg.GET("/guests/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	term := c.Query("search")
	guests, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guests": guests})
}

func (h *Handler) Get(c *gin.Context) {
	g, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Guest not found")
			return
		}
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guest": g})
}
