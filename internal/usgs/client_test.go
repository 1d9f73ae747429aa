package usgs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fixture = `{
  "type": "FeatureCollection",
  "features": [
    {"id": "a", "geometry": {"type": "Point", "coordinates": [-118.24, 34.05, 10.5]},
     "properties": {"mag": 5.2, "time": 1736000000000, "place": "10 km N of Los Angeles, CA"}},
    {"id": "b", "geometry": {"type": "Point", "coordinates": [139.69, 35.68, null]},
     "properties": {"mag": null, "time": 1736000001000, "place": null}}
  ]
}`

func testClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     zap.NewNop(),
	}
}

func TestClient_FetchEvents_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "geojson", q.Get("format"))
		assert.Equal(t, "2025-01-01", q.Get("starttime"))
		assert.Equal(t, "2025-02-01", q.Get("endtime"))
		assert.Equal(t, "4.5", q.Get("minmagnitude"))
		assert.Equal(t, "time", q.Get("orderby"))
		assert.Equal(t, "50", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fixture))
	}))
	defer srv.Close()

	fc, err := testClient(srv.URL).FetchEvents(context.Background(), Query{
		StartTime: "2025-01-01", EndTime: "2025-02-01", MinMagnitude: 4.5, Limit: 50,
	})
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	require.NotNil(t, first.Geometry)
	require.Len(t, first.Geometry.Coordinates, 3)
	assert.Equal(t, -118.24, *first.Geometry.Coordinates[0])
	assert.Equal(t, 5.2, *first.Properties.Mag)
	assert.Equal(t, int64(1736000000000), *first.Properties.Time)
	assert.Equal(t, "10 km N of Los Angeles, CA", *first.Properties.Place)

	second := fc.Features[1]
	assert.Nil(t, second.Geometry.Coordinates[2])
	assert.Nil(t, second.Properties.Mag)
	assert.Nil(t, second.Properties.Place)
}

func TestClient_FetchEvents_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchEvents(context.Background(), Query{Limit: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "503")
}

func TestClient_FetchEvents_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchEvents(context.Background(), Query{Limit: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_FetchEvents_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := testClient(url).FetchEvents(context.Background(), Query{Limit: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usgs feed request")
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("", time.Second, zap.NewNop())
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, time.Second, c.httpClient.Timeout)
}
