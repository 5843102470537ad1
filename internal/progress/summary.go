package progress

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	summaryWindow     = 7 * 24 * time.Hour
	recurringGoalsTop = 2
)

// Summarize reduces the given progress records into a 7-day rolling
// summary relative to "now". Pure function: no side effects beyond a
// warning log for records whose date does not parse (those are dropped,
// not surfaced as errors).
func Summarize(records []Record, now time.Time) WeeklySummary {
	windowStart := now.Add(-summaryWindow)

	summary := WeeklySummary{
		RecurringGoals: []string{},
	}

	// first-encountered order of distinct goals, for a deterministic
	// tie-break in the ranking below
	goalCounts := map[string]int{}
	var goalOrder []string

	for _, record := range records {
		date, err := time.Parse(time.RFC3339, record.Date)
		if err != nil {
			log.Warnf("progress record %s has unparseable date [%s], skipping", record.ID, record.Date)
			continue
		}
		if !date.After(windowStart) || date.After(now) {
			continue
		}

		summary.Routines++
		summary.TotalSeconds += record.TotalSeconds

		for _, goal := range record.Goals {
			if _, seen := goalCounts[goal]; !seen {
				goalOrder = append(goalOrder, goal)
			}
			goalCounts[goal]++
		}

		for _, exercise := range record.Exercises {
			summary.TotalExercises++
			switch {
			case exercise.Reps > 0:
				summary.RepBased++
			case exercise.DurationSeconds > 0:
				summary.TimeBased++
			}
		}
	}

	sort.SliceStable(goalOrder, func(i, j int) bool {
		return goalCounts[goalOrder[i]] > goalCounts[goalOrder[j]]
	})
	if len(goalOrder) > recurringGoalsTop {
		goalOrder = goalOrder[:recurringGoalsTop]
	}
	summary.RecurringGoals = append(summary.RecurringGoals, goalOrder...)

	return summary
}
