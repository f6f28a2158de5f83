package models

// Score is one completed game session. Rows are append-only: nothing in the
// backend updates or deletes a score once it is saved.
type Score struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	TeamName       string `json:"teamName" gorm:"not null"`
	Score          int    `json:"score" gorm:"not null"`
	LandmarksSaved int    `json:"landmarksSaved" gorm:"not null"`
	Difficulty     string `json:"difficulty" gorm:"not null"` // easy, medium, hard (free-form, stored as sent)
	Timestamp      string `json:"timestamp" gorm:"not null"`  // RFC 3339, assigned server-side
	GameDuration   int    `json:"gameDuration"`
}
