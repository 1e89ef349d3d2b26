package liveboard

import (
	"errors"
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"liveboard.app/internal/constants"
	"liveboard.app/internal/dtos"
	"liveboard.app/internal/models"
)

func (app *Liveboard) checkInRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events/{id}/checkin", prefix),
		app.Services.Auth.Access(app.checkInHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/{id}/checkins", prefix),
		app.Services.Auth.Access(app.getCheckInsHandler),
	)
}

func (app *Liveboard) checkInHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	var checkInDto dtos.CheckInDto

	err = httptools.ReadJSON(r.Body, &checkInDto)
	if err != nil {
		httptools.BadRequestResponse(w, r, err)
		return
	}

	if ok, errs := checkInDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	checkIn, count, err := app.Services.CheckIns.CheckIn(
		r.Context(),
		id,
		user.ID,
		&checkInDto,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	response := struct {
		CheckIn             *models.CheckIn `json:"checkIn"`
		UpdatedCheckInCount int             `json:"updatedCheckInCount"`
	}{
		CheckIn:             checkIn,
		UpdatedCheckInCount: count,
	}

	err = httptools.WriteJSON(w, http.StatusCreated, response, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Liveboard) getCheckInsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	checkIns, err := app.Services.CheckIns.GetAllForEvent(r.Context(), id, user.ID)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, checkIns, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}
