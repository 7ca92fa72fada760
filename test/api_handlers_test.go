package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gramkeeper/dto"
	"gramkeeper/logic"
	"gramkeeper/server"
	"gramkeeper/shared"
	"gramkeeper/test/mocks"
)

const testApiKey = "test-api-key"

type apiHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMetrics *mocks.MockIMetrics
	router      http.Handler
	reconciler  logic.IReconciler
	sweeper     logic.ISweeper
}

func setupApiTest(t *testing.T) (*gomock.Controller, *apiHarness) {

	ctrl := gomock.NewController(t)

	h := &apiHarness{
		cfg: &shared.Config{
			Secrets: shared.Secrets{ApiKeys: []string{testApiKey}},
			Automation: shared.Automation{
				DaysLimit: 7,
			},
		},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)

	repo := newTestRepo(t, ctrl)
	h.reconciler = logic.NewReconciler(h.cfg, h.mockLogger, repo, h.mockMetrics)
	h.sweeper = logic.NewSweeper(h.cfg, h.mockLogger, repo, h.mockMetrics)

	group := server.NewApiHandlerGroup(h.cfg, h.mockLogger, repo, h.reconciler, h.sweeper)
	h.router = server.NewMux([]server.IHandlerGroup{group})

	return ctrl, h
}

func doRequest(h *apiHarness, method, path, body string, withKey bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if withKey {
		req.Header.Set("X-API-KEY", testApiKey)
	}
	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, req)
	return recorder
}

func TestApi_RejectsMissingKey(t *testing.T) {

	// Setup
	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	// Exercise
	recorder := doRequest(h, "GET", "/api/accounts", "", false)

	// Verify
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestApi_ReconcileAndRead(t *testing.T) {

	// Setup
	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	// Exercise: commit one reconciliation through the API
	reqBody := `{"followers": ["alice", "bob"], "following": ["bob"]}`
	recorder := doRequest(h, "POST", "/api/reconcile", reqBody, true)

	// Verify
	assert.Equal(t, http.StatusOK, recorder.Code)
	var recResp dto.ReconcileResponse
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &recResp))
	assert.Equal(t, 2, recResp.FollowersCount)
	assert.Equal(t, 1, recResp.FollowingCount)
	assert.Equal(t, 1, recResp.MutualsCount)

	// Exercise: the committed state is visible through the read endpoints
	recorder = doRequest(h, "GET", "/api/accounts", "", true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var page dto.Page[dto.Account]
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Total)

	recorder = doRequest(h, "GET", "/api/mutuals", "", true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var mutuals []string
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &mutuals))
	assert.Equal(t, []string{"bob"}, mutuals)

	recorder = doRequest(h, "GET", "/api/history", "", true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var history dto.Page[dto.HistoryEntry]
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &history))
	assert.Equal(t, 1, history.Total)
}

func TestApi_GetAccount(t *testing.T) {

	// Setup
	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()
	reqBody := `{"followers": ["alice"], "following": []}`
	recorder := doRequest(h, "POST", "/api/reconcile", reqBody, true)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Exercise + verify: existing account
	recorder = doRequest(h, "GET", "/api/accounts/alice", "", true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var acct dto.Account
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &acct))
	assert.Equal(t, "alice", acct.Username)
	assert.True(t, acct.FollowsMe)

	// Exercise + verify: unknown account
	recorder = doRequest(h, "GET", "/api/accounts/nobody", "", true)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestApi_Sweep(t *testing.T) {

	// Setup: no open requests, so the sweep is a no-op
	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	// Exercise: daysLimit 0 falls back to the configured limit
	recorder := doRequest(h, "POST", "/api/sweep", `{}`, true)

	// Verify
	assert.Equal(t, http.StatusOK, recorder.Code)
	var resp dto.SweepResponse
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Empty(t, resp.Blacklisted)
}

func TestApi_ReconcileRejectsBadJson(t *testing.T) {

	// Setup
	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	// Exercise
	recorder := doRequest(h, "POST", "/api/reconcile", `{"followers": [`, true)

	// Verify
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
