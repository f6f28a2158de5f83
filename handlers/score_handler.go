package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"drboogie/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ScoreHandler struct {
	scoreService *services.ScoreService
}

func NewScoreHandler(scoreService *services.ScoreService) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	TeamName       string `json:"teamName"`
	Score          int    `json:"score"`
	LandmarksSaved int    `json:"landmarksSaved"`
	Difficulty     string `json:"difficulty"`
	Timestamp      string `json:"timestamp"`
}

// SubmitScore handles POST /api/scores. Missing and non-numeric fields both
// come back as 400 naming the offending field; nothing is written in that case.
func (h *ScoreHandler) SubmitScore(c *gin.Context) {
	var req services.SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	score, err := h.scoreService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Score saved successfully",
		"id":      score.ID,
	})
}

// GetScores handles GET /api/scores with optional difficulty and limit.
func (h *ScoreHandler) GetScores(c *gin.Context) {
	difficulty := c.Query("difficulty")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid value for field: limit"})
		return
	}

	scores, err := h.scoreService.List(difficulty, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scores": scores})
}

// GetLeaderboard handles GET /api/leaderboard. Ranks are 1-based positions in
// result order.
func (h *ScoreHandler) GetLeaderboard(c *gin.Context) {
	difficulty := c.DefaultQuery("difficulty", "all")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid value for field: limit"})
		return
	}

	scores, err := h.scoreService.Top(difficulty, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	leaderboard := make([]LeaderboardEntry, 0, len(scores))
	for i, score := range scores {
		leaderboard = append(leaderboard, LeaderboardEntry{
			Rank:           i + 1,
			TeamName:       score.TeamName,
			Score:          score.Score,
			LandmarksSaved: score.LandmarksSaved,
			Difficulty:     score.Difficulty,
			Timestamp:      score.Timestamp,
		})
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": leaderboard})
}

// GetStats handles GET /api/stats.
func (h *ScoreHandler) GetStats(c *gin.Context) {
	stats, err := h.scoreService.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// LeaderboardPage handles GET /leaderboard with a self-contained HTML page
// that loads the leaderboard and stats endpoints client-side.
func (h *ScoreHandler) LeaderboardPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(leaderboardPage))
}

// bindErrorMessage flattens bind failures into a single client-facing message
// that names the first bad field.
func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return "Missing required field: " + jsonFieldName(validationErrs[0].Field())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return "Invalid value for field: " + typeErr.Field
	}

	return "Invalid request body"
}

// jsonFieldName maps a struct field of SubmitScoreRequest back to its JSON
// name so error messages match what the client actually sent.
func jsonFieldName(structField string) string {
	field, ok := reflect.TypeOf(services.SubmitScoreRequest{}).FieldByName(structField)
	if !ok {
		return structField
	}

	tag := strings.Split(field.Tag.Get("json"), ",")[0]
	if tag == "" {
		return structField
	}
	return tag
}
