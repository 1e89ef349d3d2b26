package liveboard_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"liveboard.app/internal/dtos"
	"liveboard.app/internal/models"
)

//nolint:exhaustruct //other fields are optional
func testEvent(id string) *models.Event {
	return &models.Event{
		ID:              id,
		UserID:          userID,
		Name:            "Launch Day",
		Venue:           "Main Hall",
		ExpectedGuests:  100,
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

func TestGetEventsHandler(t *testing.T) {
	event := testEvent("a3f0c1d2-5b7e-4f90-8a21-64c6f1f6f001")
	err := testApp.Repositories.Events.Create(context.Background(), event)
	if err != nil {
		panic(err)
	}
	//nolint:errcheck //cleanup
	defer testApp.Repositories.Events.Delete(
		context.Background(),
		event.ID,
		userID,
	)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/events",
	)

	tReq.AddCookie(&accessToken)
	tReq.AddCookie(&refreshToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestGetEventsHandlerUnauthorized(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/events",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnauthorized, rs.StatusCode)
}

func TestCreateEventHandler(t *testing.T) {
	websiteURL := "https://example.com/launch"
	//nolint:exhaustruct //other fields are optional
	createEventDto := dtos.CreateEventDto{
		Name:            "Launch Day",
		Venue:           "Main Hall",
		WebsiteURL:      &websiteURL,
		ExpectedGuests:  100,
		EventDate:       "2025-03-01",
		EventStartDate:  "2025-03-01",
		StartTime:       "9",
		StartMinuteTime: "00",
		StartTimeType:   "AM",
		EndTime:         "5",
		EndMinuteTime:   "00",
		EndTimeType:     "PM",
	}

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/api/events",
	)

	tReq.AddCookie(&accessToken)
	tReq.AddCookie(&refreshToken)

	tReq.SetContentType(test.JSONContentType)
	tReq.SetData(createEventDto)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var event models.Event
	err := httptools.ReadJSON(rs.Body, &event)
	assert.Nil(t, err)
	//nolint:errcheck //cleanup
	defer testApp.Repositories.Events.Delete(
		context.Background(),
		event.ID,
		userID,
	)

	assert.Equal(t, "Launch Day", event.Name)
	// preview comes from the mocked scraper
	assert.Equal(t, "Example Event", *event.PreviewTitle)
	assert.Equal(t, "An example event landing page.", *event.PreviewDesc)
}

func TestCreateEventHandlerValidation(t *testing.T) {
	//nolint:exhaustruct //deliberately incomplete
	createEventDto := dtos.CreateEventDto{
		Name:      "No times",
		EventDate: "2025-03-01",
	}

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/api/events",
	)

	tReq.AddCookie(&accessToken)
	tReq.AddCookie(&refreshToken)

	tReq.SetContentType(test.JSONContentType)
	tReq.SetData(createEventDto)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestEventPaceHandler(t *testing.T) {
	event := testEvent("a3f0c1d2-5b7e-4f90-8a21-64c6f1f6f002")
	err := testApp.Repositories.Events.Create(context.Background(), event)
	if err != nil {
		panic(err)
	}
	//nolint:errcheck //cleanup
	defer testApp.Repositories.Events.Delete(
		context.Background(),
		event.ID,
		userID,
	)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/events/"+event.ID+"/pace",
	)

	tReq.AddCookie(&accessToken)
	tReq.AddCookie(&refreshToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var pace dtos.CheckInPaceDto
	err = httptools.ReadJSON(rs.Body, &pace)
	assert.Nil(t, err)
	assert.Equal(t, event.ID, pace.EventUUID)
	assert.Equal(t, 0, pace.CheckInCount)
}
