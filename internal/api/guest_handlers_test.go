package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchGuest_Found(t *testing.T) {
	ts := setupTestServer(t, testRows(), "")

	resp := ts.api.Get("/api/v1/guests/search?q=naruto+uzumaki&side=bride")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := decode[SearchGuestResponse](t, resp.Body.Bytes())
	require.True(t, body.Found)
	require.NotNil(t, body.Result)
	assert.Equal(t, "Naruto Uzumaki", body.Result.Name)
	assert.Equal(t, "Mimosa", body.Result.TableLabel)
	assert.Equal(t, "Seat number 3", body.Result.SeatText)
	assert.Equal(t, []string{"Sakura Haruno"}, body.Result.Tablemates)
	assert.Equal(t, "exact", body.Result.Match)
}

func TestSearchGuest_Localized(t *testing.T) {
	ts := setupTestServer(t, testRows(), "")

	resp := ts.api.Get("/api/v1/guests/search?q=naruto+uzumaki&lang=vi")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[SearchGuestResponse](t, resp.Body.Bytes())
	require.True(t, body.Found)
	assert.Equal(t, "Số ghế của bạn là: 3", body.Result.SeatText)
}

func TestSearchGuest_AcceptLanguageHeader(t *testing.T) {
	ts := setupTestServer(t, testRows(), "")

	resp := ts.api.Get("/api/v1/guests/search?q=boa+hancock", "Accept-Language: vi")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[SearchGuestResponse](t, resp.Body.Bytes())
	require.True(t, body.Found)
	assert.Equal(t, "Bàn VIP", body.Result.TableLabel)
}

func TestSearchGuest_NoMatchIsNormalResponse(t *testing.T) {
	ts := setupTestServer(t, testRows(), "")

	resp := ts.api.Get("/api/v1/guests/search?q=zzzz")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[SearchGuestResponse](t, resp.Body.Bytes())
	assert.False(t, body.Found)
	assert.Nil(t, body.Result)
	assert.NotEmpty(t, body.Message)
}

func TestSearchGuest_FuzzyNotice(t *testing.T) {
	ts := setupTestServer(t, testRows(), "")

	resp := ts.api.Get("/api/v1/guests/search?q=narutoo+uzumaki&side=bride")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[SearchGuestResponse](t, resp.Body.Bytes())
	require.True(t, body.Found)
	assert.Equal(t, "fuzzy", body.Result.Match)
	assert.Greater(t, body.Result.Score, 0.4)
	assert.Contains(t, body.Result.Notice, "Showing closest match for")
}

func TestSearchGuest_MissingQuery(t *testing.T) {
	ts := setupTestServer(t, testRows(), "")

	resp := ts.api.Get("/api/v1/guests/search")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestSearchGuest_DirectoryNotLoaded(t *testing.T) {
	ts := setupTestServer(t, nil, "")

	resp := ts.api.Get("/api/v1/guests/search?q=anyone")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestListGuestMatches(t *testing.T) {
	rows := append(testRows(), testRows()[0])
	rows[len(rows)-1].Side = "groom"
	rows[len(rows)-1].TableID = "9"
	rows[len(rows)-1].TableName = ""
	ts := setupTestServer(t, rows, "")

	resp := ts.api.Get("/api/v1/guests/matches?q=naruto+uzumaki")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[ListGuestMatchesResponse](t, resp.Body.Bytes())
	assert.Equal(t, "naruto uzumaki", body.Query)
	require.Len(t, body.Matches, 2)
	assert.Equal(t, "bride", body.Matches[0].Side)
	assert.Equal(t, "groom", body.Matches[1].Side)
	assert.Equal(t, "Table 9", body.Matches[1].TableLabel)
}

func TestListGuestMatches_Empty(t *testing.T) {
	ts := setupTestServer(t, testRows(), "")

	resp := ts.api.Get("/api/v1/guests/matches?q=zzzz")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[ListGuestMatchesResponse](t, resp.Body.Bytes())
	assert.Empty(t, body.Matches)
}

func TestGetGuest(t *testing.T) {
	ts := setupTestServer(t, testRows(), "")

	guest := ts.holder.Get().Directory.Guests()[0]

	resp := ts.api.Get("/api/v1/guests/" + guest.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[GuestResult](t, resp.Body.Bytes())
	assert.Equal(t, guest.ID, body.ID)
	assert.Equal(t, "Naruto Uzumaki", body.Name)
	assert.Equal(t, "Mimosa", body.TableLabel)
}

func TestGetGuest_NotFound(t *testing.T) {
	ts := setupTestServer(t, testRows(), "")

	resp := ts.api.Get("/api/v1/guests/gst-missing")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	body := decode[APIError](t, resp.Body.Bytes())
	assert.Equal(t, "NOT_FOUND", body.Code)
}
