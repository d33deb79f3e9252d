package generator

import (
	"sort"
	"time"

	"tradecoach/internal/catalog"
	"tradecoach/internal/models"
)

// sessionPlan assigns a session to each decision index.
type sessionPlan struct {
	primary   models.Session
	secondary models.Session
	split     int // first index covered by secondary; -1 when there is none
}

func planSessions(rng Rand, n int, secondaryProbability float64) sessionPlan {
	all := models.AllSessions()
	plan := sessionPlan{primary: pick(rng, all), split: -1}
	if !chance(rng, secondaryProbability) {
		return plan
	}
	var rest []models.Session
	for _, s := range all {
		if s != plan.primary {
			rest = append(rest, s)
		}
	}
	plan.secondary = pick(rng, rest)
	plan.split = (n + 1) / 2
	return plan
}

func (p sessionPlan) at(i int) models.Session {
	if p.split >= 0 && i >= p.split {
		return p.secondary
	}
	return p.primary
}

type clockSlot struct {
	hour   int
	lo, hi int // minute range [lo, hi)
}

func slots(windows []catalog.ClockWindow) []clockSlot {
	var out []clockSlot
	for _, w := range windows {
		for h := w.StartHour; h < w.EndHour || (h == w.EndHour && w.EndMinute > 0); h++ {
			s := clockSlot{hour: h, lo: 0, hi: 60}
			if h == w.StartHour {
				s.lo = w.StartMinute
			}
			if h == w.EndHour {
				s.hi = w.EndMinute
			}
			if s.hi > s.lo {
				out = append(out, s)
			}
		}
	}
	return out
}

// SessionTime draws a wall-clock time inside the session windows on the
// calendar day of date, in UTC. The hour is uniform over the window hours and
// the minute uniform over the part of that hour inside the window.
func SessionTime(rng Rand, windows []catalog.ClockWindow, date time.Time) time.Time {
	date = date.UTC()
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	candidates := slots(windows)
	if len(candidates) == 0 {
		return midnight
	}
	s := pick(rng, candidates)
	minute := s.lo + rng.IntN(s.hi-s.lo)
	return midnight.Add(time.Duration(s.hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// InSession reports whether t falls inside one of the windows.
func InSession(windows []catalog.ClockWindow, t time.Time) bool {
	m := t.UTC().Hour()*60 + t.UTC().Minute()
	for _, w := range windows {
		if m >= w.StartHour*60+w.StartMinute && m < w.EndHour*60+w.EndMinute {
			return true
		}
	}
	return false
}

// orderTimestamps sorts the drawn times ascending within each contiguous run
// of decisions in the same session, so a session reads forward in time. The
// decisions themselves keep their order.
func orderTimestamps(decisions []models.TraderDecision) {
	for start := 0; start < len(decisions); {
		end := start + 1
		for end < len(decisions) && decisions[end].Session == decisions[start].Session {
			end++
		}
		times := make([]time.Time, 0, end-start)
		for i := start; i < end; i++ {
			times = append(times, decisions[i].Timestamp)
		}
		sort.Slice(times, func(a, b int) bool { return times[a].Before(times[b]) })
		for i := start; i < end; i++ {
			decisions[i].Timestamp = times[i-start]
		}
		start = end
	}
}
