// README: Fee engine types: rate plan snapshot, request, day segments, result.
package fee

import (
	"errors"

	"parkfee/internal/types"
)

// RatePlan is the per-area pricing snapshot resolved by the caller.
// The engine only ever reads it.
type RatePlan struct {
	WeekdayRate     float64
	WeekendRate     float64
	DiscountPercent float64
}

type Request struct {
	AreaID    types.ID
	Date      string // "2006-01-02"
	StartTime string // "15:04"
	EndTime   string // "15:04"
}

// DaySegment is the portion of a session falling on a single calendar date:
// offset 0 is the request date, offset 1 the immediately following date.
type DaySegment struct {
	DayOffset int
	Minutes   int
}

type Result struct {
	TotalMinutes int
	TotalPrice   types.Money
}

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidTime  = errors.New("invalid time format")
	ErrInvalidDate  = errors.New("invalid date format")
	ErrAreaNotFound = errors.New("area not found")
)
