package zoom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-scheduler/pkg/config"
)

func newTestServer(t *testing.T, tokenCalls *int32, meetingStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "account_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "acct-1", r.PostForm.Get("account_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"zoom-token","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/v2/users/me/meetings", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer zoom-token", r.Header.Get("Authorization"))

		var req CreateMeetingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if meetingStatus != http.StatusCreated {
			w.WriteHeader(meetingStatus)
			_, _ = w.Write([]byte(`{"code":300,"message":"Invalid meeting type"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":         int64(85746065432),
			"topic":      req.Topic,
			"type":       req.Type,
			"start_time": req.StartTime,
			"duration":   req.Duration,
			"join_url":   "https://zoom.us/j/85746065432",
			"settings":   map[string]interface{}{"waiting_room": true},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(srv *httptest.Server) config.ZoomConfig {
	return config.ZoomConfig{
		AccountID:    "acct-1",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     srv.URL + "/oauth/token",
		APIBaseURL:   srv.URL + "/v2/",
		Timeout:      5 * time.Second,
	}
}

func TestClient_CreateMeeting(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, http.StatusCreated)
	client := NewClient(testConfig(srv), srv.Client())

	req := &CreateMeetingRequest{Topic: "Kickoff", Type: 2, StartTime: "2026-03-02T10:00:00Z", Duration: 60}
	meeting, err := client.CreateMeeting(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(85746065432), meeting.ID)
	assert.Equal(t, "https://zoom.us/j/85746065432", meeting.JoinURL)
	assert.Contains(t, string(meeting.Raw), "waiting_room")

	_, err = client.CreateMeeting(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&tokenCalls))
}

func TestClient_CreateMeeting_APIError(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, http.StatusBadRequest)
	client := NewClient(testConfig(srv), srv.Client())

	_, err := client.CreateMeeting(context.Background(), &CreateMeetingRequest{Topic: "x", Type: 9})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid meeting type", apiErr.Msg)
}

func TestClient_CreateMeeting_TokenFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"reason":"Invalid client_id or client_secret","error":"invalid_client"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv), srv.Client())
	_, err := client.CreateMeeting(context.Background(), &CreateMeetingRequest{Topic: "x", Type: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zoom access token")
}
