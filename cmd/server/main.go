package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/omerdahan/watchlist-api-go/pkg/auth"
	"github.com/omerdahan/watchlist-api-go/pkg/database"
	"github.com/omerdahan/watchlist-api-go/pkg/handlers"
	"github.com/omerdahan/watchlist-api-go/pkg/notify"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)

	monitor := notify.NewMonitor(func(title, message string) {
		log.Printf("ALERT %s: %s", title, message)
	})
	defer monitor.Stop()

	h := &handlers.Handler{DB: db, Monitor: monitor}

	r := gin.Default()

	// Admin interface - serve static files from embedded FS
	r.StaticFS("/static", h.GetStaticFS())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Watch List Scheduler API",
			"version": "1.0.0",
		})
	})

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Scheduler Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.GET("/teams", h.ListTeams)
		api.POST("/teams", h.CreateTeam)
		api.DELETE("/teams/:team", h.DeleteTeam)
		api.PUT("/teams/:team/name", h.RenameTeam)

		api.GET("/teams/:team/members", h.GetMembers)
		api.PUT("/teams/:team/members", h.UpdateMembers)
		api.DELETE("/teams/:team/members/:member", h.DeleteMember)

		api.POST("/teams/:team/lists", h.CreateWatchList)
		api.GET("/teams/:team/lists", h.ListWatchLists)
		api.GET("/teams/:team/lists/:list", h.GetWatchList)
		api.DELETE("/teams/:team/lists/:list", h.DeleteWatchList)

		api.POST("/teams/:team/lists/:list/schedule/generate", h.GenerateSchedule)
		api.POST("/teams/:team/lists/:list/schedule", h.SaveSchedule)
		api.GET("/teams/:team/lists/:list/schedule", h.GetSchedule)
		api.GET("/teams/:team/lists/:list/schedule/csv", h.ScheduleCSV)

		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
