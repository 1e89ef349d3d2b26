package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"liveboard.app/internal/models"
)

//nolint:exhaustruct //other fields are optional
func dayEvent() models.Event {
	return models.Event{
		ID:              "evt-1",
		EventDate:       "2025-03-01",
		EventStartDate:  "2025-03-01",
		StartTime:       "9",
		StartMinuteTime: "00",
		StartTimeType:   "AM",
		EndTime:         "5",
		EndMinuteTime:   "00",
		EndTimeType:     "PM",
	}
}

func TestParseClock(t *testing.T) {
	reading, ok := models.ParseClock("9", "00", "AM")
	assert.True(t, ok)
	assert.Equal(t, 9, reading.Hour)
	assert.Equal(t, 0, reading.Minute)
	assert.Equal(t, models.AM, reading.Meridiem)

	_, ok = models.ParseClock("", "00", "AM")
	assert.False(t, ok)
	_, ok = models.ParseClock("9", "", "AM")
	assert.False(t, ok)
	_, ok = models.ParseClock("9", "00", "")
	assert.False(t, ok)
	_, ok = models.ParseClock("0", "00", "AM")
	assert.False(t, ok)
	_, ok = models.ParseClock("13", "00", "PM")
	assert.False(t, ok)
	_, ok = models.ParseClock("9", "60", "AM")
	assert.False(t, ok)
	_, ok = models.ParseClock("9", "0", "AM")
	assert.False(t, ok)
}

func TestHour24(t *testing.T) {
	midnight, _ := models.ParseClock("12", "00", "AM")
	assert.Equal(t, 0, midnight.Hour24())

	noon, _ := models.ParseClock("12", "00", "PM")
	assert.Equal(t, 12, noon.Hour24())

	afternoon, _ := models.ParseClock("1", "00", "PM")
	assert.Equal(t, 13, afternoon.Hour24())

	morning, _ := models.ParseClock("9", "30", "AM")
	assert.Equal(t, 9, morning.Hour24())
}

func TestIsLiveWithinWindow(t *testing.T) {
	event := dayEvent()

	noon := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, event.IsLive(noon))

	evening := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	assert.False(t, event.IsLive(evening))
	assert.False(t, event.IsUpcoming(evening))
}

func TestIsLiveInclusiveBounds(t *testing.T) {
	event := dayEvent()

	exactStart := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	assert.True(t, event.IsLive(exactStart))

	exactEnd := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	assert.True(t, event.IsLive(exactEnd))

	justBefore := exactStart.Add(-time.Second)
	assert.False(t, event.IsLive(justBefore))

	justAfter := exactEnd.Add(time.Second)
	assert.False(t, event.IsLive(justAfter))
}

func TestIsLiveMultiDay(t *testing.T) {
	event := dayEvent()
	event.EventStartDate = "2025-03-01"
	event.EventDate = "2025-03-03"

	middleNight := time.Date(2025, 3, 2, 3, 0, 0, 0, time.UTC)
	assert.True(t, event.IsLive(middleNight))

	// IsUpcoming anchors on EventDate, so near its first day a multi-day
	// event can read as both live and upcoming.
	beforeLastDayStart := time.Date(2025, 3, 2, 3, 0, 0, 0, time.UTC)
	assert.True(t, event.IsUpcoming(beforeLastDayStart))
}

func TestIsUpcoming(t *testing.T) {
	event := dayEvent()

	dayBefore := time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC)
	assert.True(t, event.IsUpcoming(dayBefore))

	exactStart := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	assert.False(t, event.IsUpcoming(exactStart))
}

func TestMalformedFieldsNeverLive(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, clear := range []func(event *models.Event){
		func(event *models.Event) { event.StartTime = "" },
		func(event *models.Event) { event.StartMinuteTime = "" },
		func(event *models.Event) { event.StartTimeType = "" },
		func(event *models.Event) { event.EventStartDate = "" },
		func(event *models.Event) { event.EventDate = "" },
	} {
		event := dayEvent()
		clear(&event)
		assert.False(t, event.IsLive(now))
	}

	event := dayEvent()
	event.StartTimeType = "XM"
	assert.False(t, event.IsLive(now))
	assert.False(t, event.IsUpcoming(now))
}

func TestNilEvent(t *testing.T) {
	var event *models.Event

	now := time.Now()
	assert.False(t, event.IsLive(now))
	assert.False(t, event.IsUpcoming(now))
	assert.Equal(t, float64(0), event.ExpectedCheckIns(now))
}

func TestExpectedCheckIns(t *testing.T) {
	event := dayEvent()
	event.ExpectedGuests = 400

	beforeStart := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, float64(0), event.ExpectedCheckIns(beforeStart))

	halfway := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)
	assert.InDelta(t, 200, event.ExpectedCheckIns(halfway), 0.01)

	afterEnd := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, float64(400), event.ExpectedCheckIns(afterEnd))
}
