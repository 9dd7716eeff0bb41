// README: Fee service drives clock parsing, day classification and the split into a priced result.
package fee

import "parkfee/internal/types"

const priceCurrency = "EUR"

// Service computes parking fees. It holds no state and is safe for
// concurrent use; identical inputs always yield identical results.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Calculate prices a session against the resolved rate plan. The day-0
// segment is charged at the weekend rate when the request date is a
// Saturday or Sunday, the day-1 segment when the following date is; the
// discount is applied multiplicatively and the price rounded to hundredths.
func (s *Service) Calculate(req Request, plan RatePlan) (Result, error) {
	if req.AreaID == "" || req.StartTime == "" || req.EndTime == "" || req.Date == "" {
		return Result{}, ErrMissingField
	}

	startMinutes, err := toMinutes(req.StartTime)
	if err != nil {
		return Result{}, err
	}
	endMinutes, err := toMinutes(req.EndTime)
	if err != nil {
		return Result{}, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return Result{}, err
	}

	first, second := split(startMinutes, endMinutes)

	rate0 := plan.WeekdayRate
	if isWeekend(date) {
		rate0 = plan.WeekendRate
	}
	rate1 := plan.WeekdayRate
	if isWeekendNextDay(date) {
		rate1 = plan.WeekendRate
	}

	raw := (float64(first.Minutes)*rate0 + float64(second.Minutes)*rate1) / 60
	discounted := raw * (1 - plan.DiscountPercent/100)

	return Result{
		TotalMinutes: first.Minutes + second.Minutes,
		TotalPrice:   types.MoneyFromFloat(discounted, priceCurrency),
	}, nil
}
