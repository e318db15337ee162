package hvakoster_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"forecast24/internal/hvakoster"
	"forecast24/internal/models"

	"github.com/stretchr/testify/require"
)

func TestClient_FetchDay(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		handler   http.HandlerFunc
		area      models.Area
		wantLen   int
		wantErr   bool
		wantNoDat bool
	}{
		{
			name: "Success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/2025/01-02_NO1.json", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[
					{"NOK_per_kWh":0.85,"EUR_per_kWh":0.074,"EXR":11.45,
					 "time_start":"2025-01-02T00:00:00+01:00","time_end":"2025-01-02T01:00:00+01:00"},
					{"NOK_per_kWh":0.91,"EUR_per_kWh":0.079,"EXR":11.45,
					 "time_start":"2025-01-02T01:00:00+01:00","time_end":"2025-01-02T02:00:00+01:00"}
				]`))
			},
			area:    models.AreaNO1,
			wantLen: 2,
		},
		{
			name: "Missing Day Is NoData",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			area:      models.AreaNO3,
			wantErr:   true,
			wantNoDat: true,
		},
		{
			name: "Server Error Is NoData Class",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			area:      models.AreaNO1,
			wantErr:   true,
			wantNoDat: true,
		},
		{
			name: "Malformed Body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not":"a list"`))
			},
			area:    models.AreaNO1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := hvakoster.NewClient(srv.URL)
			records, err := client.FetchDay(context.Background(), tt.area, day)

			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, tt.wantNoDat, errors.Is(err, hvakoster.ErrNoData))
				return
			}
			require.NoError(t, err)
			require.Len(t, records, tt.wantLen)
			require.Equal(t, "2025-01-02T00:00:00+01:00", records[0].TimeStart)
			require.Equal(t, "2025-01-02T01:00:00+01:00", records[0].TimeEnd)
		})
	}
}

func TestClient_FetchDayInvalidArea(t *testing.T) {
	client := hvakoster.NewClient("http://localhost:0")
	_, err := client.FetchDay(context.Background(), models.Area("SE1"), time.Now())
	require.Error(t, err)
	require.False(t, errors.Is(err, hvakoster.ErrNoData))
}

func TestClient_FetchDayTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := hvakoster.NewClient(srv.URL)
	_, err := client.FetchDay(context.Background(), models.AreaNO1, time.Now())
	require.Error(t, err)
	require.False(t, errors.Is(err, hvakoster.ErrNoData))
}
