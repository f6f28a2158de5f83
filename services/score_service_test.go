package services

import (
	"path/filepath"
	"testing"
	"time"

	"drboogie/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "scores.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	if err := db.AutoMigrate(&models.Score{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func intPtr(i int) *int { return &i }

func mustCreate(t *testing.T, s *ScoreService, team string, score, landmarks int, difficulty string) *models.Score {
	t.Helper()

	rec, err := s.Create(&SubmitScoreRequest{
		TeamName:       team,
		Score:          intPtr(score),
		LandmarksSaved: intPtr(landmarks),
		Difficulty:     difficulty,
	})
	if err != nil {
		t.Fatalf("create score for %s: %v", team, err)
	}
	return rec
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	service := NewScoreService(newTestDB(t))

	var lastID uint
	for _, team := range []string{"Alpha", "Beta", "Gamma"} {
		rec := mustCreate(t, service, team, 100, 3, "easy")
		if rec.ID <= lastID {
			t.Fatalf("expected id above %d, got %d", lastID, rec.ID)
		}
		lastID = rec.ID
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	service := NewScoreService(newTestDB(t))

	rec, err := service.Create(&SubmitScoreRequest{
		TeamName:       "Alpha",
		Score:          intPtr(50),
		LandmarksSaved: intPtr(2),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if rec.Difficulty != "medium" {
		t.Errorf("difficulty = %q, want medium", rec.Difficulty)
	}
	if rec.GameDuration != 60 {
		t.Errorf("gameDuration = %d, want 60", rec.GameDuration)
	}
	if _, err := time.Parse(timestampLayout, rec.Timestamp); err != nil {
		t.Errorf("timestamp %q not parseable: %v", rec.Timestamp, err)
	}
}

func TestCreateKeepsUnknownDifficulty(t *testing.T) {
	service := NewScoreService(newTestDB(t))

	rec := mustCreate(t, service, "Alpha", 10, 1, "nightmare")
	if rec.Difficulty != "nightmare" {
		t.Errorf("difficulty = %q, want nightmare", rec.Difficulty)
	}
}

func TestListOrdersByScoreThenRecency(t *testing.T) {
	service := NewScoreService(newTestDB(t))

	mustCreate(t, service, "Low", 50, 1, "easy")
	mustCreate(t, service, "TieOld", 100, 2, "easy")
	time.Sleep(2 * time.Millisecond)
	mustCreate(t, service, "TieNew", 100, 3, "easy")

	scores, err := service.List("", 50)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"TieNew", "TieOld", "Low"}
	if len(scores) != len(want) {
		t.Fatalf("got %d scores, want %d", len(scores), len(want))
	}
	for i, team := range want {
		if scores[i].TeamName != team {
			t.Errorf("scores[%d] = %s, want %s", i, scores[i].TeamName, team)
		}
	}
}

func TestListFiltersByDifficulty(t *testing.T) {
	service := NewScoreService(newTestDB(t))

	mustCreate(t, service, "Alpha", 100, 5, "easy")
	mustCreate(t, service, "Beta", 200, 8, "hard")

	scores, err := service.List("easy", 50)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(scores) != 1 || scores[0].TeamName != "Alpha" {
		t.Fatalf("expected only Alpha, got %+v", scores)
	}

	// Zero matches is an empty list, not an error
	scores, err = service.List("nightmare", 50)
	if err != nil {
		t.Fatalf("list with unmatched filter: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("expected no scores, got %d", len(scores))
	}
}

func TestTopOrdersByScoreAndHonorsLimit(t *testing.T) {
	service := NewScoreService(newTestDB(t))

	points := []int{30, 90, 60, 120, 10}
	for i, p := range points {
		mustCreate(t, service, "Team", p, i, "medium")
	}

	scores, err := service.Top("all", 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	for i := 1; i < len(scores); i++ {
		if scores[i].Score > scores[i-1].Score {
			t.Errorf("scores out of order at %d: %d > %d", i, scores[i].Score, scores[i-1].Score)
		}
	}
}

func TestStatsEmptyStore(t *testing.T) {
	service := NewScoreService(newTestDB(t))

	stats, err := service.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalGames != 0 || stats.AverageScore != 0 || stats.HighestScore != 0 || stats.TotalLandmarksSaved != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
	if len(stats.GamesByDifficulty) != 0 {
		t.Errorf("expected empty difficulty map, got %v", stats.GamesByDifficulty)
	}
}

func TestStatsAggregates(t *testing.T) {
	service := NewScoreService(newTestDB(t))

	mustCreate(t, service, "Alpha", 100, 5, "easy")
	mustCreate(t, service, "Beta", 200, 8, "hard")

	stats, err := service.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalGames != 2 {
		t.Errorf("totalGames = %d, want 2", stats.TotalGames)
	}
	if stats.AverageScore != 150.0 {
		t.Errorf("averageScore = %v, want 150", stats.AverageScore)
	}
	if stats.HighestScore != 200 {
		t.Errorf("highestScore = %d, want 200", stats.HighestScore)
	}
	if stats.TotalLandmarksSaved != 13 {
		t.Errorf("totalLandmarksSaved = %d, want 13", stats.TotalLandmarksSaved)
	}
	if stats.GamesByDifficulty["easy"] != 1 || stats.GamesByDifficulty["hard"] != 1 {
		t.Errorf("gamesByDifficulty = %v", stats.GamesByDifficulty)
	}
}

func TestStatsRoundsAverageToOneDecimal(t *testing.T) {
	service := NewScoreService(newTestDB(t))

	for _, p := range []int{0, 1, 1} {
		mustCreate(t, service, "Team", p, 0, "medium")
	}

	stats, err := service.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.AverageScore != 0.7 {
		t.Errorf("averageScore = %v, want 0.7", stats.AverageScore)
	}
}

func TestMigrateTwiceKeepsRows(t *testing.T) {
	db := newTestDB(t)
	service := NewScoreService(db)

	mustCreate(t, service, "Alpha", 100, 5, "easy")

	if err := db.AutoMigrate(&models.Score{}); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	var count int64
	if err := db.Model(&models.Score{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}
