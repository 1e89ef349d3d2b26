package liveboard_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"liveboard.app/pkg/livesync"
)

func TestRoomChannelEndToEnd(t *testing.T) {
	testServer := httptest.NewServer(testApp.Routes())
	defer testServer.Close()

	eventID := "0f8fad5b-d9cb-469f-a165-70867728950e"
	testApp.Services.Rooms.RegisterEvent(eventID)
	testApp.Services.Rooms.UpdateCount(eventID, 5)

	wsURL := "ws" + strings.TrimPrefix(testServer.URL, "http") + "/api/ws"
	transport := livesync.NewWebSocketTransport(
		logging.NewNopLogger(),
		wsURL,
		100*time.Millisecond, //nolint:mnd //no magic number
	)

	syncer := livesync.New(logging.NewNopLogger(), transport)
	//nolint:errcheck //cleanup
	defer syncer.Close()

	syncer.Subscribe([]livesync.EventRef{
		{UUID: eventID, OwnerID: userID},
	})

	// joining delivers the current count right away
	assert.Eventually(t, func() bool {
		return syncer.Count(eventID) == 5
	}, 2*time.Second, 10*time.Millisecond)

	testApp.Services.Rooms.UpdateCount(eventID, 8)

	assert.Eventually(t, func() bool {
		return syncer.Count(eventID) == 8
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRoomChannelUnknownEvent(t *testing.T) {
	testServer := httptest.NewServer(testApp.Routes())
	defer testServer.Close()

	wsURL := "ws" + strings.TrimPrefix(testServer.URL, "http") + "/api/ws"
	transport := livesync.NewWebSocketTransport(
		logging.NewNopLogger(),
		wsURL,
		100*time.Millisecond, //nolint:mnd //no magic number
	)

	syncer := livesync.New(logging.NewNopLogger(), transport)
	//nolint:errcheck //cleanup
	defer syncer.Close()

	syncer.Subscribe([]livesync.EventRef{
		{UUID: "b2c9a5e7-3d61-48f2-90ab-5a2c8d1e4f77", OwnerID: userID},
	})

	// the join is dropped server-side, nothing arrives and the count
	// stays at its default
	time.Sleep(200 * time.Millisecond) //nolint:mnd //no magic number

	assert.Equal(t, 0, syncer.Count("b2c9a5e7-3d61-48f2-90ab-5a2c8d1e4f77"))
}
