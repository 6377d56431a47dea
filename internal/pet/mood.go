package pet

// Mood is derived from happiness and energy; it is never stored
// independently of them.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// Mood thresholds on the happiness/energy average. Both comparisons are
// strict: an average of exactly 0.7 is neutral, exactly 0.4 is sad.
const (
	happyThreshold   = 0.7
	neutralThreshold = 0.4
)

// ComputeMood maps a (happiness, energy) pair to a mood.
func ComputeMood(happiness, energy float64) Mood {
	avg := (happiness + energy) / 2
	switch {
	case avg > happyThreshold:
		return MoodHappy
	case avg > neutralThreshold:
		return MoodNeutral
	default:
		return MoodSad
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
