package analytics

import (
	"fmt"
	"time"

	"github.com/threadcount/backend/internal/models"
)

// View is the calendar granularity for heatmap and analytics queries
type View string

const (
	ViewMonth   View = "month"
	ViewQuarter View = "quarter"
	ViewYear    View = "year"
)

// Days within which an upcoming season change triggers an alert
const transitionAlertWindowDays = 14

// seasonStarts maps each season to the month its fixed range begins
var seasonStarts = []struct {
	season models.Season
	month  time.Month
}{
	{models.SeasonSpring, time.March},
	{models.SeasonSummer, time.June},
	{models.SeasonFall, time.September},
	{models.SeasonWinter, time.December},
}

// GetDateRange computes the inclusive start/end calendar dates of the
// period containing ref. Month and year boundaries are leap-aware via
// time.Date day-zero normalization; quarters snap to the Jan/Apr/Jul/Oct
// boundaries.
func GetDateRange(view View, ref time.Time) models.PeriodRange {
	y, m, _ := ref.Date()

	var start, end time.Time
	switch view {
	case ViewQuarter:
		qStart := time.Month((int(m)-1)/3*3 + 1)
		start = time.Date(y, qStart, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(y, qStart+3, 0, 0, 0, 0, 0, time.UTC)
	case ViewYear:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC)
	default: // month
		start = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC)
	}

	return models.PeriodRange{
		Start: start.Format(DateLayout),
		End:   end.Format(DateLayout),
		Label: PeriodLabel(view, ref),
	}
}

// NavigateDate shifts ref by one unit of the view in the given
// direction (+1 forward, -1 back). The reference is anchored to the
// first of its month so end-of-month dates cannot skip a period.
func NavigateDate(view View, ref time.Time, dir int) time.Time {
	y, m, _ := ref.Date()
	anchor := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	switch view {
	case ViewQuarter:
		return anchor.AddDate(0, 3*dir, 0)
	case ViewYear:
		return anchor.AddDate(dir, 0, 0)
	default:
		return anchor.AddDate(0, dir, 0)
	}
}

// PeriodLabel renders the human label for the period containing ref:
// "January 2026", "Q1 2026", or "2026".
func PeriodLabel(view View, ref time.Time) string {
	switch view {
	case ViewQuarter:
		quarter := (int(ref.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", quarter, ref.Year())
	case ViewYear:
		return fmt.Sprintf("%d", ref.Year())
	default:
		return fmt.Sprintf("%s %d", ref.Month(), ref.Year())
	}
}

// CheckTransitionAlert returns an alert when the nearest upcoming
// season start is within the alert window, and nil otherwise. Each
// season's distance is measured to its own next occurrence, so a
// boundary day counts as zero days only for the season starting that
// day.
func CheckTransitionAlert(today time.Time) *models.TransitionAlert {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	best := -1
	var bestSeason models.Season
	for _, s := range seasonStarts {
		next := time.Date(day.Year(), s.month, 1, 0, 0, 0, 0, time.UTC)
		if next.Before(day) {
			next = next.AddDate(1, 0, 0)
		}
		until := int(next.Sub(day).Hours() / 24)
		if best == -1 || until < best {
			best = until
			bestSeason = s.season
		}
	}

	if best < 0 || best > transitionAlertWindowDays {
		return nil
	}

	return &models.TransitionAlert{
		Season:    bestSeason,
		DaysUntil: best,
		Message:   transitionMessage(bestSeason, best),
	}
}

func transitionMessage(season models.Season, days int) string {
	switch days {
	case 0:
		return fmt.Sprintf("%s starts today! Time to rotate your wardrobe.", titleSeason(season))
	case 1:
		return fmt.Sprintf("%s starts in 1 day. Time to rotate your wardrobe.", titleSeason(season))
	default:
		return fmt.Sprintf("%s starts in %d days. Time to rotate your wardrobe.", titleSeason(season), days)
	}
}

func titleSeason(season models.Season) string {
	switch season {
	case models.SeasonSpring:
		return "Spring"
	case models.SeasonSummer:
		return "Summer"
	case models.SeasonFall:
		return "Fall"
	case models.SeasonWinter:
		return "Winter"
	default:
		return string(season)
	}
}
