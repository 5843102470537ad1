package routines

import "strings"

// Filter carries a user's matching criteria. Empty fields mean "no
// constraint": a completely empty filter matches every routine.
type Filter struct {
	Level     string
	Goals     []string
	Locations []string
}

func (f Filter) IsEmpty() bool {
	return f.Level == "" && len(f.Goals) == 0 && len(f.Locations) == 0
}

// Match selects the routines relevant to the given filter. All string
// comparison is case-insensitive, and a routine is included only when
// level AND goals AND locations all match (no weighted scoring).
func Match(candidates []Routine, filter Filter) []Routine {
	matched := make([]Routine, 0, len(candidates))
	for _, routine := range candidates {
		if !levelMatches(routine, filter.Level) {
			continue
		}
		if !anyOverlap(routine.Locations, filter.Locations) {
			continue
		}
		if !anyOverlap(routine.Goals, filter.Goals) {
			continue
		}
		matched = append(matched, routine)
	}
	return matched
}

func levelMatches(routine Routine, level string) bool {
	if level == "" {
		return true
	}
	for _, recommended := range routine.RecommendedLevels {
		if strings.EqualFold(recommended, level) {
			return true
		}
	}
	return false
}

// anyOverlap is true when the user gave no tags, or when the two tag sets
// intersect (case-insensitively).
func anyOverlap(routineTags, userTags []string) bool {
	if len(userTags) == 0 {
		return true
	}
	for _, rt := range routineTags {
		for _, ut := range userTags {
			if strings.EqualFold(rt, ut) {
				return true
			}
		}
	}
	return false
}
