package domain

import "time"

// DateLayout is the wire format for all calendar dates (goal target dates,
// journal entry dates, week boundaries).
const DateLayout = "2006-01-02"

// Program window: the fixed internship calendar range. Goal and journal dates
// outside this range are substituted with today by the planner.
const (
	ProgramStart = "2026-02-02"
	ProgramEnd   = "2026-06-30"
)

func ProgramWindow() (start, end time.Time) {
	start, _ = time.Parse(DateLayout, ProgramStart)
	end, _ = time.Parse(DateLayout, ProgramEnd)
	return start, end
}

// InProgramWindow reports whether the date (YYYY-MM-DD) falls inside the
// program window. Malformed dates are out of the window by definition.
func InProgramWindow(dateStr string) bool {
	d, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return false
	}
	start, end := ProgramWindow()
	return !d.Before(start) && !d.After(end)
}

// ClampPlannerDate returns dateStr if it is a valid date inside the program
// window, otherwise today's date formatted as YYYY-MM-DD.
func ClampPlannerDate(dateStr string, now time.Time) string {
	if InProgramWindow(dateStr) {
		return dateStr
	}
	return now.Format(DateLayout)
}

// ProgramProgress computes the dashboard progress numbers for a given "now":
// the whole-day program span, elapsed days floored at zero, and the percent
// elapsed capped at 100.
func ProgramProgress(now time.Time) (progressPercent, currentDay, totalDays int) {
	start, end := ProgramWindow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	totalDays = int(end.Sub(start).Hours() / 24)
	currentDay = int(today.Sub(start).Hours() / 24)
	if currentDay < 0 {
		currentDay = 0
	}

	progressPercent = int(float64(currentDay)/float64(totalDays)*100 + 0.5)
	if progressPercent > 100 {
		progressPercent = 100
	}
	return progressPercent, currentDay, totalDays
}
