package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omerdahan/watchlist-api-go/pkg/database"
	"github.com/omerdahan/watchlist-api-go/pkg/models"
	"github.com/omerdahan/watchlist-api-go/pkg/scheduler"
)

// GenerateSchedule runs both rotation algorithms over a watch list's
// stored configuration and returns the two candidate schedules. Nothing
// is persisted until the caller picks one and calls SaveSchedule.
func (h *Handler) GenerateSchedule(c *gin.Context) {
	list, ok := h.findWatchList(c)
	if !ok {
		return
	}

	in := inputFromList(list)
	window, err := scheduler.WindowFromInput(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := scheduler.NewScheduler(in.Soldiers, in.Posts, window)
	current, balanced, err := s.RunInParallel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := models.ScheduleResponse{}
	for _, grid := range current {
		rows, err := scheduler.BuildRows(grid, in.Posts, window, models.AlgorithmCurrent, len(in.Soldiers))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp.Current = append(resp.Current, models.Candidate{
			Algorithm: models.AlgorithmCurrent, Grid: grid, Rows: rows,
		})
	}
	for _, grid := range balanced {
		rows, err := scheduler.BuildRows(grid, in.Posts, window, models.AlgorithmBalanced, len(in.Soldiers))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp.Balanced = append(resp.Balanced, models.Candidate{
			Algorithm: models.AlgorithmBalanced, Grid: grid, Rows: rows,
		})
	}

	h.RecordUsage(c, len(resp.Current)+len(resp.Balanced), len(in.Soldiers))

	c.JSON(http.StatusOK, resp)
}

// SaveSchedule persists the chosen schedule rows for a watch list,
// replacing any previous one, and hands the rows to the shift alert
// monitor. Monitor wiring is fire-and-forget: the schedule is saved
// whether or not alerting is available.
func (h *Handler) SaveSchedule(c *gin.Context) {
	list, ok := h.findWatchList(c)
	if !ok {
		return
	}

	var req models.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Algorithm != models.AlgorithmCurrent && req.Algorithm != models.AlgorithmBalanced {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown algorithm label"})
		return
	}
	if len(req.Rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Schedule rows are required"})
		return
	}

	record := database.ScheduleRecord{
		ID:          uuid.NewString(),
		WatchListID: list.ID,
		Algorithm:   req.Algorithm,
	}
	for i, row := range req.Rows {
		cells, err := json.Marshal(row)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not encode schedule row"})
			return
		}
		record.Rows = append(record.Rows, database.ScheduleRowRecord{
			Position: i,
			Time:     row[models.TimeField],
			Cells:    string(cells),
		})
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var old []database.ScheduleRecord
		if err := tx.Where("watch_list_id = ?", list.ID).Find(&old).Error; err != nil {
			return err
		}
		for _, rec := range old {
			if err := tx.Where("schedule_record_id = ?", rec.ID).Delete(&database.ScheduleRowRecord{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("watch_list_id = ?", list.ID).Delete(&database.ScheduleRecord{}).Error; err != nil {
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save schedule"})
		return
	}

	if h.Monitor != nil {
		h.Monitor.Load(req.Rows)
		h.Monitor.Start()
	}

	log.Printf("schedule saved for %s/%s using %s", c.Param("team"), list.Name, req.Algorithm)
	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved successfully", "id": record.ID})
}

// loadSchedule fetches the stored schedule of a watch list together
// with its decoded rows in slot order.
func (h *Handler) loadSchedule(c *gin.Context, list *database.WatchList) (*database.ScheduleRecord, []models.ScheduleRow, bool) {
	var record database.ScheduleRecord
	err := h.DB.Where("watch_list_id = ?", list.ID).Order("created_at desc").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No schedule stored for this watch list"})
		return nil, nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return nil, nil, false
	}

	var rowRecords []database.ScheduleRowRecord
	if err := h.DB.Where("schedule_record_id = ?", record.ID).Order("position").Find(&rowRecords).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule rows"})
		return nil, nil, false
	}

	rows := make([]models.ScheduleRow, 0, len(rowRecords))
	for _, rr := range rowRecords {
		row := models.ScheduleRow{}
		if err := json.Unmarshal([]byte(rr.Cells), &row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode schedule row"})
			return nil, nil, false
		}
		rows = append(rows, row)
	}
	return &record, rows, true
}

// GetSchedule returns the stored schedule of a watch list
func (h *Handler) GetSchedule(c *gin.Context) {
	list, ok := h.findWatchList(c)
	if !ok {
		return
	}

	record, rows, ok := h.loadSchedule(c, list)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"algorithm":  record.Algorithm,
		"created_at": record.CreatedAt,
		"rows":       rows,
	})
}

// ScheduleCSV exports the stored schedule as CSV, one line per time
// slot with a Time column followed by the posts in display order
func (h *Handler) ScheduleCSV(c *gin.Context) {
	list, ok := h.findWatchList(c)
	if !ok {
		return
	}

	_, rows, ok := h.loadSchedule(c, list)
	if !ok {
		return
	}

	in := inputFromList(list)

	var out strings.Builder
	writer := csv.NewWriter(&out)

	header := []string{models.TimeField}
	for _, p := range in.Posts {
		header = append(header, p.Name)
	}
	writer.Write(header)

	for _, row := range rows {
		line := []string{row[models.TimeField]}
		for _, p := range in.Posts {
			line = append(line, row[p.Name])
		}
		writer.Write(line)
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{"csv": out.String()})
}
