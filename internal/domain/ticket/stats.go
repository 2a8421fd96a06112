package ticket

import (
	"math"
	"time"
)

const (
	trendFirstHour = 8
	trendLastHour  = 16

	minEstimatedWait   = 5
	minutesPerWaitSlot = 3
)

type CategoryStat struct {
	Category  Category
	Label     string
	Total     int
	Completed int
}

type StatusStat struct {
	Status Status
	Count  int
}

type HourStat struct {
	Hour  int
	Count int
}

type Stats struct {
	Total          int
	Waiting        int
	Calling        int
	Completed      int
	Skipped        int
	CompletionRate int
	ByCategory     []CategoryStat
	// StatusBreakdown omits statuses with no tickets. Calling is not part of it.
	StatusBreakdown []StatusStat
	HourlyTrend     []HourStat
}

// Summarize aggregates tickets for the dashboard. Hours are taken in loc.
func Summarize(tickets []*Ticket, loc *time.Location) Stats {
	if loc == nil {
		loc = time.Local
	}

	stats := Stats{Total: len(tickets)}
	byCategory := make(map[Category]*CategoryStat, len(categories))
	for _, c := range Categories() {
		byCategory[c] = &CategoryStat{Category: c, Label: c.Label()}
	}
	hours := make(map[int]int, trendLastHour-trendFirstHour+1)

	for _, t := range tickets {
		switch t.status {
		case StatusWaiting:
			stats.Waiting++
		case StatusCalling:
			stats.Calling++
		case StatusCompleted:
			stats.Completed++
		case StatusSkipped:
			stats.Skipped++
		}
		if cs, ok := byCategory[t.category]; ok {
			cs.Total++
			if t.status == StatusCompleted {
				cs.Completed++
			}
		}
		hours[t.createdAt.In(loc).Hour()]++
	}

	for _, c := range Categories() {
		stats.ByCategory = append(stats.ByCategory, *byCategory[c])
	}
	for _, s := range []StatusStat{
		{Status: StatusWaiting, Count: stats.Waiting},
		{Status: StatusCompleted, Count: stats.Completed},
		{Status: StatusSkipped, Count: stats.Skipped},
	} {
		if s.Count > 0 {
			stats.StatusBreakdown = append(stats.StatusBreakdown, s)
		}
	}
	for h := trendFirstHour; h <= trendLastHour; h++ {
		stats.HourlyTrend = append(stats.HourlyTrend, HourStat{Hour: h, Count: hours[h]})
	}
	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

// EstimatedWaitMinutes is the rough wait shown to a customer joining the queue.
func EstimatedWaitMinutes(waiting int) int {
	return max(minEstimatedWait, waiting*minutesPerWaitSlot)
}
