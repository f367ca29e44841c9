package webui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"serviceBooker/internal/client"
	"serviceBooker/internal/lib/clock"
	"serviceBooker/internal/lib/logger/handlers/slogdiscard"
	"serviceBooker/internal/localcache"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)

func newTestServer(t *testing.T, simulate bool) (http.Handler, *localcache.Memory, *client.Handler) {
	t.Helper()

	cache := localcache.NewMemory()
	h := client.NewHandler(
		slogdiscard.NewDiscardLogger(),
		nil,
		cache,
		client.NewPanel(),
		clock.NewMockClock(testNow),
		client.Timings{
			Confirmation:   time.Minute,
			Simulated:      time.Minute,
			Error:          time.Minute,
			SimulatedDelay: time.Millisecond,
		},
	)
	t.Cleanup(h.Panel().Close)

	return New(slogdiscard.NewDiscardLogger(), h, simulate), cache, h
}

func validValues() url.Values {
	return url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"phone":   {"555-0100"},
		"service": {"consultation"},
		"date":    {"2025-01-10"},
		"time":    {"14:30"},
	}
}

func postForm(t *testing.T, srv http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	return rr
}

func get(t *testing.T, srv http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	return rr
}

func TestIndex(t *testing.T) {
	t.Parallel()

	srv, _, _ := newTestServer(t, false)

	rr := get(t, srv, "/")
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, "Book a Service")
	assert.Contains(t, body, `min="2025-01-10"`)
	assert.NotContains(t, body, `id="confirmation"`)
}

func TestBookConfirms(t *testing.T) {
	t.Parallel()

	srv, cache, _ := newTestServer(t, false)

	rr := postForm(t, srv, "/book", validValues())
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	all, err := cache.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Jane Doe", all[0].Name)

	body := get(t, srv, "/").Body.String()
	assert.Contains(t, body, "Booking Confirmed!")
	assert.Contains(t, body, "Room Cleaning")
	assert.Contains(t, body, "Friday, January 10, 2025")
	assert.Contains(t, body, "2:30 PM")
	assert.Contains(t, body, "1 booking(s) saved on this device")
}

func TestBookRejected(t *testing.T) {
	t.Parallel()

	srv, cache, _ := newTestServer(t, false)

	values := validValues()
	values.Set("email", "foo.com")

	rr := postForm(t, srv, "/book", values)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `value="foo.com" class="invalid"`)
	assert.Contains(t, body, `value="Jane Doe"`)
	assert.Contains(t, body, client.RejectionMessage)

	all, _ := cache.ReadAll(context.Background())
	assert.Empty(t, all)
}

func TestBookSimulated(t *testing.T) {
	t.Parallel()

	srv, cache, _ := newTestServer(t, true)

	rr := postForm(t, srv, "/book", validValues())
	require.Equal(t, http.StatusSeeOther, rr.Code)

	all, _ := cache.ReadAll(context.Background())
	assert.Empty(t, all)

	body := get(t, srv, "/").Body.String()
	assert.Contains(t, body, "Thank you Jane Doe!")
}

func TestClosePanel(t *testing.T) {
	t.Parallel()

	srv, _, h := newTestServer(t, false)

	postForm(t, srv, "/book", validValues())
	require.True(t, h.Panel().State().Visible)

	rr := postForm(t, srv, "/panel/close", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, h.Panel().State().Visible)
}

func TestValidateField(t *testing.T) {
	t.Parallel()

	srv, _, _ := newTestServer(t, false)

	cases := []struct {
		query string
		want  client.FieldState
	}{
		{query: "field=email&value=foo@&required=true", want: client.FieldInvalid},
		{query: "field=email&value=jane@example.com&required=true", want: client.FieldValid},
		{query: "field=text&value=&required=false", want: client.FieldNone},
		{query: "field=date&value=2025-01-09&required=true", want: client.FieldInvalid},
		{query: "field=date&value=2025-01-10&required=true", want: client.FieldValid},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			rr := get(t, srv, "/validate?"+tc.query)
			require.Equal(t, http.StatusOK, rr.Code)

			var resp FieldStateResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.want, resp.State)
		})
	}
}

func TestListAndClearBookings(t *testing.T) {
	t.Parallel()

	srv, _, _ := newTestServer(t, false)

	postForm(t, srv, "/book", validValues())
	postForm(t, srv, "/book", validValues())

	rr := get(t, srv, "/bookings")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp BookingsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 2)

	del := httptest.NewRecorder()
	srv.ServeHTTP(del, httptest.NewRequest(http.MethodDelete, "/bookings", nil))
	require.Equal(t, http.StatusOK, del.Code)

	rr = get(t, srv, "/bookings")
	resp = BookingsResponse{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Bookings)
	assert.NotNil(t, resp.Bookings)
}
