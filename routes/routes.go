package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"drboogie/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, scoreHandler *handlers.ScoreHandler, staticDir string) {
	// API routes
	api := router.Group("/api")
	{
		api.POST("/scores", scoreHandler.SubmitScore)
		api.GET("/scores", scoreHandler.GetScores)
		api.GET("/leaderboard", scoreHandler.GetLeaderboard)
		api.GET("/stats", scoreHandler.GetStats)
	}

	// Standalone leaderboard page for projecting at events
	router.GET("/leaderboard", scoreHandler.LeaderboardPage)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Game front-end
	router.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "index.html"))
	})

	// Remaining GETs are static assets (CSS, JS, images)
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			// Clean against the root first so ".." cannot escape staticDir
			path := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				c.File(path)
				return
			}
		}

		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
