package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/omerdahan/watchlist-api-go/pkg/auth"
	"github.com/omerdahan/watchlist-api-go/pkg/database"
	"github.com/omerdahan/watchlist-api-go/pkg/handlers"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)

	// No alert monitor in the serverless runtime: there is no resident
	// process to poll from, so saved schedules skip the alert hookup.
	h := &handlers.Handler{DB: db}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Static files served from embedded FS
	r.StaticFS("/static", h.GetStaticFS())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Watch List Scheduler API (Vercel)",
			"version": "1.0.0",
		})
	})

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

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
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
