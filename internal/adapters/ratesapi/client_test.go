package ratesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LatestRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","base_code":"USD","time_last_update_unix":1700000000,"rates":{"USD":1,"EUR":0.9213,"JPY":149.5}}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/latest", time.Second, nil)
	rates, updated, err := c.LatestRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.9213")))
	assert.True(t, rates["JPY"].Equal(decimal.RequireFromString("149.5")))
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), updated)
	assert.Equal(t, ProviderName, c.Name())
}

func TestClient_LatestRates_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"provider error", http.StatusOK, `{"result":"error","error-type":"unsupported-code"}`},
		{"bad status", http.StatusBadGateway, `oops`},
		{"bad json", http.StatusOK, `{"result":`},
		{"wrong base", http.StatusOK, `{"result":"success","base_code":"EUR","rates":{"EUR":1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, _, err := New(srv.URL, time.Second, nil).LatestRates(context.Background(), "USD")
			assert.Error(t, err)
		})
	}
}
