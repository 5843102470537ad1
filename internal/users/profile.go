package users

import "time"

// Training levels assignable to a profile (and referenced by routines).
const (
	LevelBeginner     = "Principiante"
	LevelIntermediate = "Intermedio"
	LevelAdvanced     = "Avanzado"
)

// UserProfile is the user's own document: identity, onboarding answers
// (level, goals, body metrics, training locations) and progress milestones.
type UserProfile struct {
	UID               string    `json:"uid"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	RegisteredAt      time.Time `json:"registeredAt"`
	Level             string    `json:"level"`
	Goals             []string  `json:"goals"`
	WeightKilos       float64   `json:"weightKilos"`
	HeightCentimeters float64   `json:"heightCentimeters"`
	Age               int       `json:"age"`
	Sex               string    `json:"sex"`
	WeeklyFrequency   int       `json:"weeklyFrequency"`
	TrainingLocations []string  `json:"trainingLocations"`
	Badges            []string  `json:"badges"`
	CompletedRoutines int       `json:"completedRoutines"`
}

// ProfileUpdate carries the fields a user can change after registration,
// at onboarding completion or through profile edits.
type ProfileUpdate struct {
	Name              string   `json:"name"`
	Level             string   `json:"level"`
	Goals             []string `json:"goals"`
	WeightKilos       float64  `json:"weightKilos"`
	HeightCentimeters float64  `json:"heightCentimeters"`
	Age               int      `json:"age"`
	Sex               string   `json:"sex"`
	WeeklyFrequency   int      `json:"weeklyFrequency"`
	TrainingLocations []string `json:"trainingLocations"`
}
