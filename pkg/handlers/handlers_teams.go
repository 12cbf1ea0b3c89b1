package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/omerdahan/watchlist-api-go/pkg/database"
)

// findTeam looks up a team by its route parameter, writing the error
// response itself when the team does not exist.
func (h *Handler) findTeam(c *gin.Context) (*database.Team, bool) {
	var team database.Team
	err := h.DB.Where("name = ?", c.Param("team")).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load team"})
		return nil, false
	}
	return &team, true
}

// ListTeams returns all team names
func (h *Handler) ListTeams(c *gin.Context) {
	var names []string
	if err := h.DB.Model(&database.Team{}).Order("name").Pluck("name", &names).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list teams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": names})
}

// CreateTeam adds a new team
func (h *Handler) CreateTeam(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Team name is required"})
		return
	}

	if err := h.DB.Create(&database.Team{Name: req.Name}).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Team already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team added successfully"})
}

// DeleteTeam removes a team together with its members
func (h *Handler) DeleteTeam(c *gin.Context) {
	team, ok := h.findTeam(c)
	if !ok {
		return
	}

	h.DB.Where("team_id = ?", team.ID).Delete(&database.Member{})
	if err := h.DB.Delete(team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete team"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

// RenameTeam changes a team's name
func (h *Handler) RenameTeam(c *gin.Context) {
	team, ok := h.findTeam(c)
	if !ok {
		return
	}

	var req struct {
		NewName string `json:"new_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NewName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New team name is required"})
		return
	}

	if err := h.DB.Model(team).Update("name", req.NewName).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Could not rename team"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team renamed successfully"})
}

// GetMembers returns a team's roster pool as a name -> phone map
func (h *Handler) GetMembers(c *gin.Context) {
	team, ok := h.findTeam(c)
	if !ok {
		return
	}

	var members []database.Member
	if err := h.DB.Where("team_id = ?", team.ID).Order("name").Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load members"})
		return
	}

	out := make(map[string]string, len(members))
	for _, m := range members {
		out[m.Name] = m.Phone
	}
	c.JSON(http.StatusOK, gin.H{"members": out})
}

// UpdateMembers replaces a team's roster pool with the given
// name -> phone map
func (h *Handler) UpdateMembers(c *gin.Context) {
	team, ok := h.findTeam(c)
	if !ok {
		return
	}

	var members map[string]string
	if err := c.ShouldBindJSON(&members); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Members map is required"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.ID).Delete(&database.Member{}).Error; err != nil {
			return err
		}
		for name, phone := range members {
			if err := tx.Create(&database.Member{TeamID: team.ID, Name: name, Phone: phone}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Members updated successfully"})
}

// DeleteMember removes a single member from a team
func (h *Handler) DeleteMember(c *gin.Context) {
	team, ok := h.findTeam(c)
	if !ok {
		return
	}

	res := h.DB.Where("team_id = ? AND name = ?", team.ID, c.Param("member")).Delete(&database.Member{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete member"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
