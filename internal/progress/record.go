package progress

// ExerciseDone is the simplified per-exercise summary stored inside a
// progress record. Zero means "not applicable" for both fields.
type ExerciseDone struct {
	Name            string `json:"name"`
	DurationSeconds int    `json:"durationSeconds"`
	Reps            int    `json:"reps"`
}

// Record is one immutable log entry of a completed routine session.
// Date is an ISO-8601 (RFC 3339) string, kept as a string on purpose:
// historical records with broken dates must load and simply fall out of
// the weekly window instead of failing the whole history read.
type Record struct {
	ID           string         `json:"id"`
	Date         string         `json:"date"`
	Level        string         `json:"level"`
	Goals        []string       `json:"goals"`
	Exercises    []ExerciseDone `json:"exercises"`
	TotalSeconds int            `json:"totalSeconds"`
}

// WeeklySummary is derived on demand from the last 7 days of records,
// never persisted.
type WeeklySummary struct {
	Routines       int      `json:"routines"`
	TotalSeconds   int      `json:"totalSeconds"`
	RecurringGoals []string `json:"recurringGoals"`
	TotalExercises int      `json:"totalExercises"`
	TimeBased      int      `json:"timeBased"`
	RepBased       int      `json:"repBased"`
}
