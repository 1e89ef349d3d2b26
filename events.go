package liveboard

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"liveboard.app/internal/constants"
	"liveboard.app/internal/dtos"
	"liveboard.app/internal/models"
)

func (app *Liveboard) eventsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events", prefix),
		app.Services.Auth.Access(app.getEventsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events", prefix),
		app.Services.Auth.Access(app.createEventHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/{id}/pace", prefix),
		app.Services.Auth.Access(app.eventPaceHandler),
	)
}

func (app *Liveboard) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	events, err := app.Services.Events.GetAll(r.Context(), user.ID)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, events, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Liveboard) createEventHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	var createEventDto dtos.CreateEventDto

	err := httptools.ReadJSON(r.Body, &createEventDto)
	if err != nil {
		httptools.BadRequestResponse(w, r, err)
		return
	}

	if ok, errs := createEventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	event, err := app.Services.Events.Create(r.Context(), user.ID, &createEventDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusCreated, event, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Liveboard) eventPaceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	pace, err := app.Services.Events.Pace(r.Context(), id, user.ID, time.Now())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, pace, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}
