package handlers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omerdahan/watchlist-api-go/pkg/database"
	"github.com/omerdahan/watchlist-api-go/pkg/models"
)

// CreateWatchListRequest is the body for creating a watch list
type CreateWatchListRequest struct {
	Name string `json:"name"`
	models.ScheduleInput
}

// findWatchList loads a watch list with its posts and roster, writing
// the error response itself on failure.
func (h *Handler) findWatchList(c *gin.Context) (*database.WatchList, bool) {
	team, ok := h.findTeam(c)
	if !ok {
		return nil, false
	}

	var list database.WatchList
	err := h.DB.Preload("Posts").Preload("Roster").
		Where("team_id = ? AND name = ?", team.ID, c.Param("list")).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watch list not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load watch list"})
		return nil, false
	}
	return &list, true
}

// inputFromList rebuilds a ScheduleInput from a stored watch list,
// restoring post and roster order from the Position columns.
func inputFromList(list *database.WatchList) models.ScheduleInput {
	posts := append([]database.PostConfig(nil), list.Posts...)
	sort.Slice(posts, func(i, j int) bool { return posts[i].Position < posts[j].Position })
	roster := append([]database.RosterEntry(nil), list.Roster...)
	sort.Slice(roster, func(i, j int) bool { return roster[i].Position < roster[j].Position })

	in := models.ScheduleInput{
		Start:    list.Start,
		DayStart: list.DayStart,
		DayEnd:   list.DayEnd,
		Duration: list.DurationMinutes,
	}
	for _, p := range posts {
		in.Posts = append(in.Posts, models.Post{Name: p.Name, DayCount: p.DayCount, NightCount: p.NightCount})
	}
	for _, r := range roster {
		in.Soldiers = append(in.Soldiers, r.Name)
	}
	return in
}

// CreateWatchList stores a new scheduling configuration under a team
func (h *Handler) CreateWatchList(c *gin.Context) {
	team, ok := h.findTeam(c)
	if !ok {
		return
	}

	var req CreateWatchListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "List name is required"})
		return
	}
	if reason := validateInput(req.ScheduleInput); reason != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reason})
		return
	}

	list := database.WatchList{
		ID:              uuid.NewString(),
		TeamID:          team.ID,
		Name:            req.Name,
		Start:           req.Start,
		DayStart:        req.DayStart,
		DayEnd:          req.DayEnd,
		DurationMinutes: req.Duration,
	}
	for i, p := range req.Posts {
		list.Posts = append(list.Posts, database.PostConfig{
			Position: i, Name: p.Name, DayCount: p.DayCount, NightCount: p.NightCount,
		})
	}
	for i, name := range req.Soldiers {
		list.Roster = append(list.Roster, database.RosterEntry{Position: i, Name: name})
	}

	if err := h.DB.Create(&list).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Watch list already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Watch list created successfully", "id": list.ID})
}

// ListWatchLists returns the watch lists of a team
func (h *Handler) ListWatchLists(c *gin.Context) {
	team, ok := h.findTeam(c)
	if !ok {
		return
	}

	var lists []database.WatchList
	if err := h.DB.Where("team_id = ?", team.ID).Order("created_at").Find(&lists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list watch lists"})
		return
	}

	out := make([]gin.H, 0, len(lists))
	for _, l := range lists {
		out = append(out, gin.H{"name": l.Name, "created_at": l.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"lists": out})
}

// GetWatchList returns one watch list's full configuration
func (h *Handler) GetWatchList(c *gin.Context) {
	list, ok := h.findWatchList(c)
	if !ok {
		return
	}

	in := inputFromList(list)
	c.JSON(http.StatusOK, gin.H{
		"name":             list.Name,
		"start":            in.Start,
		"day_start":        in.DayStart,
		"day_end":          in.DayEnd,
		"duration_minutes": in.Duration,
		"posts":            in.Posts,
		"soldiers":         in.Soldiers,
		"created_at":       list.CreatedAt,
	})
}

// DeleteWatchList removes a watch list and any schedule stored for it
func (h *Handler) DeleteWatchList(c *gin.Context) {
	list, ok := h.findWatchList(c)
	if !ok {
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var records []database.ScheduleRecord
		if err := tx.Where("watch_list_id = ?", list.ID).Find(&records).Error; err != nil {
			return err
		}
		for _, rec := range records {
			if err := tx.Where("schedule_record_id = ?", rec.ID).Delete(&database.ScheduleRowRecord{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("watch_list_id = ?", list.ID).Delete(&database.ScheduleRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("watch_list_id = ?", list.ID).Delete(&database.PostConfig{}).Error; err != nil {
			return err
		}
		if err := tx.Where("watch_list_id = ?", list.ID).Delete(&database.RosterEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(list).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete watch list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Watch list deleted successfully"})
}
