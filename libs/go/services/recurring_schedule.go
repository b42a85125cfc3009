package services

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
	"github.com/robfig/cron/v3"
)

var scheduleParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// scheduleFor returns the schedule that repeats start's wall clock at the
// given frequency.
func scheduleFor(frequency string, start time.Time) (cron.Schedule, error) {
	clock := fmt.Sprintf("%d %d %d", start.Second(), start.Minute(), start.Hour())
	switch frequency {
	case constants.FrequencyDaily:
		return scheduleParser.Parse(clock + " * * *")
	case constants.FrequencyWeekly:
		return scheduleParser.Parse(fmt.Sprintf("%s * * %d", clock, int(start.Weekday())))
	case constants.FrequencyMonthly:
		return monthlySchedule{day: start.Day()}, nil
	}
	return nil, fmt.Errorf("unsupported frequency %q", frequency)
}

// monthlySchedule fires on day of every month at the wall clock of the
// previous occurrence, falling back to the last day of shorter months.
type monthlySchedule struct {
	day int
}

func (s monthlySchedule) Next(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month()+1, 1, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(s.day, last)-1)
}

// OccurrenceDates lists the charge dates of a recurring donation. The first
// charge happens at start and each later one a day, a week or a calendar
// month after the previous one.
func OccurrenceDates(frequency string, start time.Time, occurrences int) ([]time.Time, error) {
	if occurrences < constants.MinOccurrences || occurrences > constants.MaxOccurrences {
		return nil, fmt.Errorf("occurrences must be between %d and %d", constants.MinOccurrences, constants.MaxOccurrences)
	}
	start = start.Truncate(time.Second)
	schedule, err := scheduleFor(frequency, start)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, occurrences)
	dates = append(dates, start)
	next := start
	for len(dates) < occurrences {
		next = schedule.Next(next)
		dates = append(dates, next)
	}
	return dates, nil
}

// ScheduleBook records accepted recurring donations. It never executes
// future charges.
type ScheduleBook struct {
	mu        sync.RWMutex
	schedules []business.RecurringSchedule
	now       func() time.Time
}

// NewScheduleBook creates an empty book.
func NewScheduleBook() *ScheduleBook {
	return &ScheduleBook{now: time.Now}
}

// Record adds a schedule for a recurring donation of amount (stable-token
// micro units) per occurrence.
func (b *ScheduleBook) Record(donor, shelter string, amount *big.Int, frequency string, occurrences int, mode string) (business.RecurringSchedule, error) {
	createdAt := b.now().UTC().Truncate(time.Second)
	dates, err := OccurrenceDates(frequency, createdAt, occurrences)
	if err != nil {
		return business.RecurringSchedule{}, err
	}
	total := new(big.Int).Mul(amount, big.NewInt(int64(occurrences)))

	schedule := business.RecurringSchedule{
		ID:              uuid.New(),
		Donor:           helpers.NormalizeAddress(donor),
		Shelter:         helpers.NormalizeAddress(shelter),
		Amount:          helpers.FormatUnits(amount, constants.StableTokenDecimals),
		Frequency:       frequency,
		Occurrences:     occurrences,
		Total:           helpers.FormatUnits(total, constants.StableTokenDecimals),
		Mode:            mode,
		CreatedAt:       createdAt,
		OccurrenceDates: dates,
	}

	b.mu.Lock()
	b.schedules = append(b.schedules, schedule)
	b.mu.Unlock()
	return schedule, nil
}

// List returns all schedules, oldest first.
func (b *ScheduleBook) List() []business.RecurringSchedule {
	b.mu.RLock()
	out := make([]business.RecurringSchedule, len(b.schedules))
	copy(out, b.schedules)
	b.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
