package services

import (
	"math"
	"time"

	"drboogie/models"

	"gorm.io/gorm"
)

// Fixed-width fraction keeps timestamps lexicographically sortable, which the
// list query relies on for its tie-break.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

type ScoreService struct {
	db *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db}
}

type SubmitScoreRequest struct {
	TeamName       string `json:"teamName" binding:"required"`
	Score          *int   `json:"score" binding:"required"`
	LandmarksSaved *int   `json:"landmarksSaved" binding:"required"`
	Difficulty     string `json:"difficulty"`
	GameDuration   *int   `json:"gameDuration"`
}

type Stats struct {
	TotalGames          int64            `json:"totalGames"`
	AverageScore        float64          `json:"averageScore"`
	HighestScore        int              `json:"highestScore"`
	TotalLandmarksSaved int              `json:"totalLandmarksSaved"`
	GamesByDifficulty   map[string]int64 `json:"gamesByDifficulty"`
}

// Create persists one game result with a server-assigned timestamp and
// returns the stored row with its generated ID. Input validation happens at
// the handler; this only fills in defaults.
func (s *ScoreService) Create(req *SubmitScoreRequest) (*models.Score, error) {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	duration := 60
	if req.GameDuration != nil {
		duration = *req.GameDuration
	}

	score := models.Score{
		TeamName:       req.TeamName,
		Score:          *req.Score,
		LandmarksSaved: *req.LandmarksSaved,
		Difficulty:     difficulty,
		Timestamp:      time.Now().UTC().Format(timestampLayout),
		GameDuration:   duration,
	}

	if err := s.db.Create(&score).Error; err != nil {
		return nil, err
	}

	return &score, nil
}

// List returns scores ordered by score descending, most recent first on ties.
// An empty difficulty means no filter.
func (s *ScoreService) List(difficulty string, limit int) ([]models.Score, error) {
	scores := []models.Score{}

	query := s.db.Order("score DESC, timestamp DESC").Limit(limit)
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	err := query.Find(&scores).Error
	return scores, err
}

// Top returns the highest scores for leaderboard display. "all" (or empty)
// means every difficulty. Ties keep storage order.
func (s *ScoreService) Top(difficulty string, limit int) ([]models.Score, error) {
	scores := []models.Score{}

	query := s.db.Order("score DESC").Limit(limit)
	if difficulty != "" && difficulty != "all" {
		query = query.Where("difficulty = ?", difficulty)
	}

	err := query.Find(&scores).Error
	return scores, err
}

// Stats aggregates over the whole table at query time. Every metric is zero
// (and the difficulty map empty) when no games have been recorded.
func (s *ScoreService) Stats() (*Stats, error) {
	stats := &Stats{GamesByDifficulty: map[string]int64{}}

	if err := s.db.Model(&models.Score{}).Count(&stats.TotalGames).Error; err != nil {
		return nil, err
	}

	var totals struct {
		AvgScore       float64
		MaxScore       int
		TotalLandmarks int
	}
	err := s.db.Model(&models.Score{}).
		Select("COALESCE(AVG(score), 0) AS avg_score, COALESCE(MAX(score), 0) AS max_score, COALESCE(SUM(landmarks_saved), 0) AS total_landmarks").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	stats.AverageScore = math.Round(totals.AvgScore*10) / 10
	stats.HighestScore = totals.MaxScore
	stats.TotalLandmarksSaved = totals.TotalLandmarks

	var byDifficulty []struct {
		Difficulty string
		Count      int64
	}
	err = s.db.Model(&models.Score{}).
		Select("difficulty, COUNT(*) AS count").
		Group("difficulty").
		Scan(&byDifficulty).Error
	if err != nil {
		return nil, err
	}

	for _, row := range byDifficulty {
		stats.GamesByDifficulty[row.Difficulty] = row.Count
	}

	return stats, nil
}
