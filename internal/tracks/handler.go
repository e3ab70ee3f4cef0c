package tracks

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/valeevte/PriceTracker/internal/scraper"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register вешает маршруты на группу /api
func (h *Handler) Register(api *gin.RouterGroup) {
	api.POST("/track", h.CreateTrack)
	api.GET("/track", h.ListTracks)
}

func (h *Handler) CreateTrack(c *gin.Context) {
	url := c.PostForm("url")
	email := c.PostForm("email")

	t, err := h.svc.Submit(c.Request.Context(), url, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case scraper.KindOf(err) != 0:
			// подробности уже залогированы в scraper
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  "Failed to get price.",
				"reason": scraper.KindOf(err).String(),
			})
		default:
			log.Printf("CreateTrack: svc.Submit error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save tracking request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tracking started at price ₹" + strconv.FormatFloat(t.Price, 'f', -1, 64),
		"track":   t,
	})
}

func (h *Handler) ListTracks(c *gin.Context) {
	list, err := h.svc.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		if errors.Is(err, ErrEmailRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("ListTracks: svc.ListByEmail error: %T: %v", err, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tracking requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": list})
}
