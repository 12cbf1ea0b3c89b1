package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omerdahan/watchlist-api-go/pkg/models"
	"github.com/omerdahan/watchlist-api-go/pkg/scheduler"
)

// validateInput checks a scheduling configuration and returns an empty
// string when it is usable, or the first failure reason.
func validateInput(in models.ScheduleInput) string {
	if len(in.Soldiers) == 0 {
		return "At least one soldier is required"
	}
	if len(in.Posts) == 0 {
		return "At least one post is required"
	}
	if in.Duration <= 0 {
		return "Duration must be positive"
	}

	names := make(map[string]bool)
	for _, s := range in.Soldiers {
		if names[s] {
			return "Duplicate soldier name: " + s
		}
		names[s] = true
	}

	postNames := make(map[string]bool)
	for _, p := range in.Posts {
		if postNames[p.Name] {
			return "Duplicate post name: " + p.Name
		}
		postNames[p.Name] = true
		if p.DayCount < 1 || p.NightCount < 1 {
			return fmt.Sprintf("Post %q needs at least one soldier for day and night", p.Name)
		}
	}

	if _, err := scheduler.WindowFromInput(in); err != nil {
		return err.Error()
	}
	return ""
}

// ValidateInput handles the JSON-based validation request
func (h *Handler) ValidateInput(c *gin.Context) {
	var in models.ScheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if reason := validateInput(in); reason != "" {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": reason,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"soldier_count": len(in.Soldiers),
			"post_count":    len(in.Posts),
			"slot_minutes":  float64(in.Duration) / float64(len(in.Soldiers)),
		},
	})
}
