package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	defaultSupportsLimit = 20
	maxSupportsLimit     = 100
)

type CreatorReader interface {
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	RecentSupports(ctx context.Context, userID string, limit int) ([]models.Support, error)
}

type CreatorHandler struct {
	Creators CreatorReader
}

func NewCreatorHandler(r CreatorReader) *CreatorHandler {
	return &CreatorHandler{Creators: r}
}

// GET /creators/:username
func (h *CreatorHandler) GetProfile(c *gin.Context) {
	profile, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GET /creators/:username/supports
func (h *CreatorHandler) ListSupports(c *gin.Context) {
	limit := defaultSupportsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxSupportsLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	profile, ok := h.lookup(c)
	if !ok {
		return
	}

	supports, err := h.Creators.RecentSupports(c.Request.Context(), profile.UserID, limit)
	if err != nil {
		logrus.WithError(err).WithField("user_id", profile.UserID).Error("Listing supports failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	public := make([]models.Support, 0, len(supports))
	for _, s := range supports {
		public = append(public, s.Public())
	}
	c.JSON(http.StatusOK, gin.H{"supports": public})
}

func (h *CreatorHandler) lookup(c *gin.Context) (*models.Profile, bool) {
	username := strings.ToLower(strings.TrimSpace(c.Param("username")))
	profile, err := h.Creators.GetByUsername(c.Request.Context(), username)
	switch {
	case errors.Is(err, models.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "creator not found"})
		return nil, false
	case err != nil:
		logrus.WithError(err).WithField("username", username).Error("Profile lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return nil, false
	}
	return profile, true
}
