package planning

import (
	"testing"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func validRequest() MealPlanRequest {
	return MealPlanRequest{
		Start:   day("2026-03-02"),
		End:     day("2026-03-04"),
		Slots:   []catalog.MealSlot{catalog.MealLunch, catalog.MealDinner},
		Profile: Profile{DietKey: "default"},
	}
}

func TestMealPlanRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MealPlanRequest)
		want   error
	}{
		{"valid", func(r *MealPlanRequest) {}, nil},
		{"missing diet key", func(r *MealPlanRequest) { r.Profile.DietKey = "" }, ErrDietKeyRequired},
		{"zero start", func(r *MealPlanRequest) { r.Start = time.Time{} }, ErrEmptyDateRange},
		{"inverted range", func(r *MealPlanRequest) { r.Start, r.End = r.End, r.Start }, ErrDateRangeInverted},
		{"no slots", func(r *MealPlanRequest) { r.Slots = nil }, ErrNoMealSlots},
		{"duplicate slot", func(r *MealPlanRequest) {
			r.Slots = []catalog.MealSlot{catalog.MealLunch, catalog.MealLunch}
		}, ErrDuplicateMealSlot},
		{"unknown slot", func(r *MealPlanRequest) {
			r.Slots = []catalog.MealSlot{catalog.MealSlot("brunch")}
		}, ErrUnknownMealSlot},
		{"negative calories", func(r *MealPlanRequest) { r.Profile.CalorieTarget = -1 }, ErrNegativeCalories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.Equal(t, tt.want, req.Validate())
		})
	}
}

func TestMealPlanRequestRangeCap(t *testing.T) {
	req := validRequest()
	req.End = req.Start.AddDate(0, 0, MaxPlanDays-1) // 31 days inclusive
	assert.NoError(t, req.Validate())

	req.End = req.Start.AddDate(0, 0, MaxPlanDays) // 32 days inclusive
	assert.Equal(t, ErrDateRangeTooLong, req.Validate())
}

func TestMealPlanRequestDays(t *testing.T) {
	req := validRequest()
	days := req.Days()

	require.Len(t, days, 3)
	assert.Equal(t, day("2026-03-02"), days[0])
	assert.Equal(t, day("2026-03-03"), days[1])
	assert.Equal(t, day("2026-03-04"), days[2])
	for _, d := range days {
		assert.Equal(t, time.UTC, d.Location())
	}
}

func TestMealPlanRequestDaysTruncatesTimestamps(t *testing.T) {
	req := validRequest()
	req.Start = time.Date(2026, 3, 2, 23, 55, 0, 0, time.UTC)
	req.End = time.Date(2026, 3, 3, 0, 5, 0, 0, time.UTC)

	days := req.Days()
	require.Len(t, days, 2)
	assert.Equal(t, day("2026-03-02"), days[0])
	assert.Equal(t, day("2026-03-03"), days[1])
}
