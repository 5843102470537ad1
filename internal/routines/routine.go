package routines

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// MuscleGroup is a closed set; tags read from storage that do not map to
// one of these values are dropped (with a warning) instead of failing the
// whole routine load.
type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "PECHO"
	MuscleGroupBack      MuscleGroup = "ESPALDA"
	MuscleGroupLegs      MuscleGroup = "PIERNAS"
	MuscleGroupArms      MuscleGroup = "BRAZOS"
	MuscleGroupAbs       MuscleGroup = "ABDOMEN"
	MuscleGroupShoulders MuscleGroup = "HOMBROS"
	MuscleGroupFullBody  MuscleGroup = "FULL_BODY"
)

// Training location tags used across routines and profiles.
const (
	LocationHome         = "Casa"
	LocationGym          = "Gimnasio"
	LocationOutdoor      = "Exterior"
	LocationCalisthenics = "Calistenia"
)

var knownMuscleGroups = map[string]MuscleGroup{
	string(MuscleGroupChest):     MuscleGroupChest,
	string(MuscleGroupBack):      MuscleGroupBack,
	string(MuscleGroupLegs):      MuscleGroupLegs,
	string(MuscleGroupArms):      MuscleGroupArms,
	string(MuscleGroupAbs):       MuscleGroupAbs,
	string(MuscleGroupShoulders): MuscleGroupShoulders,
	string(MuscleGroupFullBody):  MuscleGroupFullBody,
}

// ParseMuscleGroups maps raw tag strings into the closed enum, discarding
// unknown tags with a warning.
func ParseMuscleGroups(raw []string) []MuscleGroup {
	groups := make([]MuscleGroup, 0, len(raw))
	for _, tag := range raw {
		group, ok := knownMuscleGroups[strings.ToUpper(strings.TrimSpace(tag))]
		if !ok {
			log.Warnf("unknown muscle group tag [%s], skipping", tag)
			continue
		}
		groups = append(groups, group)
	}
	return groups
}

// Exercise is one movement within a routine. Duration and repetitions both
// exist; zero means "not applicable". Both can be zero, or both positive,
// the model does not enforce exclusivity.
type Exercise struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	ImageURL        string        `json:"imageUrl,omitempty"`
	DurationSeconds int           `json:"durationSeconds"`
	Reps            int           `json:"reps"`
	Sets            int           `json:"sets"`
	MuscleGroups    []MuscleGroup `json:"muscleGroups"`
	Equipment       []string      `json:"equipment"`
	Locations       []string      `json:"locations"`
	OrderIndex      int           `json:"orderIndex"`
}

// Routine is a named, ordered collection of exercises tagged with
// level / goal / location applicability. Routines are content-owner
// maintained, read-only from the app's point of view (the upsert
// endpoint exists for content management, not end users).
type Routine struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	ImageURL          string     `json:"imageUrl,omitempty"`
	RecommendedLevels []string   `json:"recommendedLevels"`
	Goals             []string   `json:"goals"`
	Locations         []string   `json:"locations"`
	Exercises         []Exercise `json:"exercises,omitempty"`
}
