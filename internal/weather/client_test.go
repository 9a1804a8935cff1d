package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrismart/backend/internal/weather"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_PassesThroughUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Pune", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		switch r.URL.Path {
		case "/weather":
			w.Write([]byte(`{"main":{"temp":28.5}}`))
		case "/forecast":
			w.Write([]byte(`{"list":[{"dt":1}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := weather.NewClientWithBaseURL("test-key", srv.URL)
	snap, err := c.Snapshot(context.Background(), "Pune")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"main":{"temp":28.5}}`, string(snap.Current))
	assert.JSONEq(t, `{"list":[{"dt":1}]}`, string(snap.Forecast))
}

func TestSnapshot_Non200BecomesEmptyObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := weather.NewClientWithBaseURL("bad-key", srv.URL)
	snap, err := c.Snapshot(context.Background(), "Pune")
	assert.NoError(t, err)
	assert.JSONEq(t, `{}`, string(snap.Current))
	assert.JSONEq(t, `{}`, string(snap.Forecast))
}

func TestSnapshot_TransportErrorSurfaces(t *testing.T) {
	c := weather.NewClientWithBaseURL("test-key", "http://127.0.0.1:1")
	_, err := c.Snapshot(context.Background(), "Pune")
	assert.Error(t, err)
}
