package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisanmitra/agri"
)

func testApp(geocoderURL string) *App {
	return &App{
		cfg:       Config{GeocoderURL: geocoderURL},
		geocoder:  NewGeocoderClient(geocoderURL),
		responder: &offlineResponder{},
		language:  agri.DefaultLanguage,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeResolve(t *testing.T, w *httptest.ResponseRecorder) resolveRegionResp {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out resolveRegionResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestResolveRegion_QueryMatchesState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"13.08","lon":"80.27","address":{"state":"Tamil Nadu","city":"Chennai"}}]`))
	}))
	defer srv.Close()

	app := testApp(srv.URL)
	out := decodeResolve(t, postJSON(t, app.handleResolveRegion, `{"query":"chennai"}`))

	assert.Equal(t, "TamilNadu", out.Region)
	assert.False(t, out.Generic)
	assert.Equal(t, "Chennai, Tamil Nadu", out.Location)
	assert.Equal(t, agri.SoilData["TamilNadu"], out.Soil)
}

func TestResolveRegion_QueryUnknownStateUsesLatitudeBand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"26.9","lon":"80.9","address":{"state":"Awadh Province","city":"Lucknow"}}]`))
	}))
	defer srv.Close()

	app := testApp(srv.URL)
	out := decodeResolve(t, postJSON(t, app.handleResolveRegion, `{"query":"lucknow"}`))

	assert.Equal(t, "UttarPradesh", out.Region)
	assert.False(t, out.Generic)
}

func TestResolveRegion_QueryGeocoderDownFallsBackToGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	app := testApp(srv.URL)
	out := decodeResolve(t, postJSON(t, app.handleResolveRegion, `{"query":"anywhere"}`))

	assert.Equal(t, agri.GenericRegion, out.Region)
	assert.True(t, out.Generic)
	assert.Equal(t, agri.GenericSoil, out.Soil)
	assert.Contains(t, out.Location, "Generic Data")
}

func TestResolveRegion_CoordinateGeocoderDownUsesLatitudeBand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	app := testApp(srv.URL)
	// Ludhiana's coordinates: the latitude alone is enough to band into
	// Punjab, so the generic profile must NOT be used.
	out := decodeResolve(t, postJSON(t, app.handleResolveRegion, `{"lat":30.9,"lng":75.8}`))

	assert.Equal(t, "Punjab", out.Region)
	assert.False(t, out.Generic)
	assert.Equal(t, agri.SoilData["Punjab"], out.Soil)
}

func TestResolveRegion_CoordinateReverseMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lat":"18.52","lon":"73.85","address":{"state":"Maharashtra","city":"Pune"}}`))
	}))
	defer srv.Close()

	app := testApp(srv.URL)
	out := decodeResolve(t, postJSON(t, app.handleResolveRegion, `{"lat":18.52,"lng":73.85}`))

	assert.Equal(t, "Maharashtra", out.Region)
	assert.Equal(t, "Pune, Maharashtra", out.Location)
}

func TestResolveRegion_Validation(t *testing.T) {
	app := testApp("http://127.0.0.1:0")

	w := postJSON(t, app.handleResolveRegion, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, app.handleResolveRegion, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommend(t *testing.T) {
	app := testApp("http://127.0.0.1:0")

	t.Run("known region returns its crop list", func(t *testing.T) {
		w := postJSON(t, app.handleRecommend, `{"region":"Punjab"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var out recommendResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.NotEmpty(t, out.Recommendations)
		assert.Equal(t, "wheat", out.Recommendations[0].Name)
		assert.Equal(t, 98, out.Recommendations[0].Score)
	})

	t.Run("manual soil inputs get the balanced list", func(t *testing.T) {
		w := postJSON(t, app.handleRecommend, `{"n":90,"p":40,"k":40,"ph":6.5}`)
		require.Equal(t, http.StatusOK, w.Code)

		var out recommendResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, agri.GenericRecommendations, out.Recommendations)
	})

	t.Run("unknown region is a 404", func(t *testing.T) {
		w := postJSON(t, app.handleRecommend, `{"region":"Atlantis"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing soil fields are rejected", func(t *testing.T) {
		w := postJSON(t, app.handleRecommend, `{"k":40}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
