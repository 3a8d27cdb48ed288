package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/screenhunt/internal/api"
	"github.com/velmark/screenhunt/internal/api/response"
	"github.com/velmark/screenhunt/internal/factory"
)

const testAdminToken = "test-admin-token"

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Registry:   app.Registry,
		Ledger:     app.Ledger,
		Report:     app.Report,
		Event:      app.Event,
		Payout:     app.Payout,
		AdminToken: testAdminToken,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) registerPlayer(t *testing.T, identity, staticID, nickname string) response.Player {
	t.Helper()

	body := map[string]string{"identity": identity, "static_id": staticID, "nickname": nickname}
	rr := ts.request(http.MethodPost, "/api/v1/players", body, "")
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	return player
}

func (ts *testServer) createSubmission(t *testing.T, owner, url string) response.Submission {
	t.Helper()

	body := map[string]string{"owner": owner, "resource_url": url}
	rr := ts.request(http.MethodPost, "/api/v1/submissions", body, "")
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var sub response.Submission
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sub))
	return sub
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterPlayer(t *testing.T) {
	ts := newTestServer(t)

	player := ts.registerPlayer(t, "1001", "S1", "Alice")
	assert.Equal(t, "1001", player.Identity)
	assert.Equal(t, "S1", player.StaticID)
	assert.Equal(t, "Alice", player.Nickname)
	assert.False(t, player.Disqualified)
	assert.Equal(t, ts.app.MockClock.CurrentTime, player.RegisteredAt)
}

func TestRegisterPlayerValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing identity", map[string]string{"static_id": "S1", "nickname": "Alice"}},
		{"missing static_id", map[string]string{"identity": "1001", "nickname": "Alice"}},
		{"blank nickname", map[string]string{"identity": "1001", "static_id": "S1", "nickname": "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/players", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
		})
	}
}

func TestRegisterPlayerDuplicate(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1001", "S1", "Alice")

	body := map[string]string{"identity": "1001", "static_id": "S2", "nickname": "Other"}
	rr := ts.request(http.MethodPost, "/api/v1/players", body, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "PLAYER_EXISTS")
}

func TestGetPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/9999", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "PLAYER_NOT_FOUND")
}

func TestCreateSubmission(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1001", "S1", "Alice")
	sub := ts.createSubmission(t, "1001", "https://img.example/a.png")

	assert.Equal(t, int64(1), sub.ID)
	assert.Equal(t, "1001", sub.Owner)
	assert.True(t, sub.Valid)
	assert.Equal(t, "pending", sub.Approval)
	assert.Equal(t, 1, sub.Ordinal)

	ts.app.MockClock.Advance(time.Minute)
	second := ts.createSubmission(t, "1001", "https://img.example/b.png")
	assert.Equal(t, 2, second.Ordinal)
}

func TestCreateSubmissionUnknownOwner(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"owner": "9999", "resource_url": "https://img.example/a.png"}
	rr := ts.request(http.MethodPost, "/api/v1/submissions", body, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "PLAYER_NOT_FOUND")
}

func TestCreateSubmissionDisqualifiedOwner(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1001", "S1", "Alice")
	rr := ts.request(http.MethodPost, "/api/v1/players/1001/disqualify", nil, testAdminToken)
	require.Equal(t, http.StatusNoContent, rr.Code)

	body := map[string]string{"owner": "1001", "resource_url": "https://img.example/a.png"}
	rr = ts.request(http.MethodPost, "/api/v1/submissions", body, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "PLAYER_DISQUALIFIED")
}

func TestCreateSubmissionOutsideEventWindow(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1001", "S1", "Alice")

	// Jump past the end of the event
	ts.app.MockClock.Set(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	body := map[string]string{"owner": "1001", "resource_url": "https://img.example/a.png"}
	rr := ts.request(http.MethodPost, "/api/v1/submissions", body, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "EVENT_CLOSED")
}

func TestListSubmissionsNewestFirst(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1001", "S1", "Alice")
	first := ts.createSubmission(t, "1001", "https://img.example/a.png")
	ts.app.MockClock.Advance(time.Minute)
	second := ts.createSubmission(t, "1001", "https://img.example/b.png")

	rr := ts.request(http.MethodGet, "/api/v1/players/1001/submissions", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var list response.SubmissionList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Submissions, 2)
	assert.Equal(t, second.ID, list.Submissions[0].ID)
	assert.Equal(t, first.ID, list.Submissions[1].ID)
}

func TestModerationFlow(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1001", "S1", "Alice")
	sub := ts.createSubmission(t, "1001", "https://img.example/a.png")

	// Approve
	rr := ts.request(http.MethodPost, "/api/v1/submissions/1/approve", nil, testAdminToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/submissions/1", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var fetched response.Submission
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, sub.ID, fetched.ID)
	assert.Equal(t, "approved", fetched.Approval)

	// Reverse the decision
	rr = ts.request(http.MethodPost, "/api/v1/submissions/1/reject", nil, testAdminToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/submissions/1", nil, "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, "rejected", fetched.Approval)
}

func TestModerationRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1001", "S1", "Alice")

	paths := []string{
		"/api/v1/players/1001/disqualify",
		"/api/v1/players/1001/reinstate",
		"/api/v1/submissions/1/approve",
		"/api/v1/submissions/1/reject",
		"/api/v1/admin/reset",
	}

	for _, path := range paths {
		rr := ts.request(http.MethodPost, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "path: %s", path)

		rr = ts.request(http.MethodPost, path, nil, "wrong-token")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "path: %s", path)
	}

	rr := ts.request(http.MethodGet, "/api/v1/stats/payouts", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSubmissionIDMustBeInteger(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/submissions/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestStatsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1", "S1", "Alice")
	ts.registerPlayer(t, "2", "S2", "Bob")
	ts.createSubmission(t, "1", "https://img.example/a.png")
	ts.app.MockClock.Advance(time.Minute)
	ts.createSubmission(t, "1", "https://img.example/b.png")

	rr := ts.request(http.MethodGet, "/api/v1/stats/players", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var count response.PlayerCount
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &count))
	assert.Equal(t, 2, count.PlayerCount)

	rr = ts.request(http.MethodGet, "/api/v1/stats/leaderboard", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var board response.Leaderboard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &board))
	require.Len(t, board.Entries, 2)
	assert.Equal(t, "Alice", board.Entries[0].Nickname)
	assert.Equal(t, 2, board.Entries[0].ValidCount)
	assert.Equal(t, 0, board.Entries[1].ValidCount)

	// Approve one, then check approved stats and the approved leaderboard
	rr = ts.request(http.MethodPost, "/api/v1/submissions/1/approve", nil, testAdminToken)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/stats/approved", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var stats response.ApprovedStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	require.Len(t, stats.Stats, 1)
	assert.Equal(t, "S1", stats.Stats[0].StaticID)
	assert.Equal(t, 1, stats.Stats[0].ApprovedCount)

	rr = ts.request(http.MethodGet, "/api/v1/stats/leaderboard-by-approved", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var approvedBoard response.ApprovedLeaderboard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &approvedBoard))
	require.Len(t, approvedBoard.Entries, 1)
	assert.Equal(t, "Alice", approvedBoard.Entries[0].Nickname)
	assert.Equal(t, 2, approvedBoard.Entries[0].TotalValid)
	assert.Equal(t, 1, approvedBoard.Entries[0].ApprovedCount)
}

func TestPayouts(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1", "S1", "Alice")
	ts.createSubmission(t, "1", "https://img.example/a.png")
	ts.app.MockClock.Advance(time.Minute)
	ts.createSubmission(t, "1", "https://img.example/b.png")

	rr := ts.request(http.MethodPost, "/api/v1/submissions/1/approve", nil, testAdminToken)
	require.Equal(t, http.StatusNoContent, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/submissions/2/approve", nil, testAdminToken)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/stats/payouts", nil, testAdminToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var payouts response.PayoutSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payouts))
	require.Len(t, payouts.Lines, 1)
	assert.Equal(t, "S1", payouts.Lines[0].StaticID)
	assert.Equal(t, 2, payouts.Lines[0].ApprovedCount)
	assert.Equal(t, 2*payouts.AmountPerItem, payouts.Lines[0].Amount)
	assert.Equal(t, 2, payouts.TotalApproved)
	assert.Equal(t, 2*payouts.AmountPerItem, payouts.TotalAmount)
}

func TestEventStatus(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/event", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var status response.EventStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.True(t, status.Active)
	require.NotNil(t, status.Start)
	require.NotNil(t, status.End)

	// Past the window the event reports closed
	ts.app.MockClock.Set(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	rr = ts.request(http.MethodGet, "/api/v1/event", nil, "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.False(t, status.Active)
}

func TestDisqualificationCascade(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1", "S1", "Alice")
	ts.createSubmission(t, "1", "https://img.example/a.png")

	rr := ts.request(http.MethodPost, "/api/v1/players/1/disqualify", nil, testAdminToken)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/submissions/1", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var sub response.Submission
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sub))
	assert.False(t, sub.Valid)

	rr = ts.request(http.MethodPost, "/api/v1/players/1/reinstate", nil, testAdminToken)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/submissions/1", nil, "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sub))
	assert.True(t, sub.Valid)
}

func TestAdminReset(t *testing.T) {
	ts := newTestServer(t)

	ts.registerPlayer(t, "1", "S1", "Alice")
	ts.createSubmission(t, "1", "https://img.example/a.png")

	rr := ts.request(http.MethodPost, "/api/v1/admin/reset", nil, testAdminToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/1", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/stats/players", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var count response.PlayerCount
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &count))
	assert.Equal(t, 0, count.PlayerCount)
}

func TestModerationDisabledWithoutConfiguredToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:   logger,
		Registry: app.Registry,
		Ledger:   app.Ledger,
		Report:   app.Report,
		Event:    app.Event,
		Payout:   app.Payout,
	})
	ts := &testServer{handler: router, app: app}

	ts.registerPlayer(t, "1", "S1", "Alice")

	// No token matches when none is configured
	rr := ts.request(http.MethodPost, "/api/v1/players/1/disqualify", nil, "anything")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
