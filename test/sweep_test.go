package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gramkeeper/dal"
	"gramkeeper/logic"
	"gramkeeper/shared"
	"gramkeeper/test/mocks"
)

type sweepHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMetrics *mocks.MockIMetrics
	repo        dal.IRepo
}

func setupSweepTest(t *testing.T) (*gomock.Controller, *sweepHarness, logic.ISweeper) {

	ctrl := gomock.NewController(t)

	h := &sweepHarness{
		cfg:         &shared.Config{},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)
	h.repo = newTestRepo(t, ctrl)

	sw := logic.NewSweeper(h.cfg, h.mockLogger, h.repo, h.mockMetrics)

	return ctrl, h, sw
}

func seedRequest(t *testing.T, repo dal.IRepo, username string, followsMe bool, age time.Duration) {
	assert.Nil(t, repo.UpsertRelationship(username, followsMe, true))
	requestTime := time.Now().UTC().Add(-age)
	assert.Nil(t, repo.SetRequestTimeAndBlacklist(username, &requestTime, false))
}

func TestSweep_ExpiryScenario(t *testing.T) {

	// Setup: "ghost" never followed back, "latecomer" did; both requests are
	// 10 days old against a 7 day limit. "fresh" is 2 days old.
	ctrl, h, sw := setupSweepTest(t)
	defer ctrl.Finish()
	seedRequest(t, h.repo, "ghost", false, 10*24*time.Hour)
	seedRequest(t, h.repo, "latecomer", true, 10*24*time.Hour)
	seedRequest(t, h.repo, "fresh", false, 2*24*time.Hour)

	// Exercise
	blacklisted, err := sw.SweepExpired(7)

	// Verify
	assert.Nil(t, err)
	assert.Equal(t, []string{"ghost"}, blacklisted)

	ghost, err := h.repo.GetAccount("ghost")
	assert.Nil(t, err)
	assert.Nil(t, ghost.RequestTime)
	assert.True(t, ghost.Blacklisted)

	latecomer, err := h.repo.GetAccount("latecomer")
	assert.Nil(t, err)
	assert.Nil(t, latecomer.RequestTime)
	assert.False(t, latecomer.Blacklisted)

	fresh, err := h.repo.GetAccount("fresh")
	assert.Nil(t, err)
	assert.NotNil(t, fresh.RequestTime)
	assert.False(t, fresh.Blacklisted)
}

func TestSweep_NoOpenRequests(t *testing.T) {

	// Setup
	ctrl, h, sw := setupSweepTest(t)
	defer ctrl.Finish()
	assert.Nil(t, h.repo.UpsertRelationship("quiet", true, true))

	// Exercise
	blacklisted, err := sw.SweepExpired(7)

	// Verify
	assert.Nil(t, err)
	assert.Empty(t, blacklisted)
}

func TestSweep_ReturnsOnlyNewlyBlacklisted(t *testing.T) {

	// Setup: one account already blacklisted from an earlier sweep, one newly
	// expired now
	ctrl, h, sw := setupSweepTest(t)
	defer ctrl.Finish()
	seedRequest(t, h.repo, "old_offender", false, 20*24*time.Hour)
	_, err := sw.SweepExpired(7)
	assert.Nil(t, err)
	seedRequest(t, h.repo, "new_offender", false, 10*24*time.Hour)

	// Exercise
	blacklisted, err := sw.SweepExpired(7)

	// Verify: the earlier blacklist does not reappear in the result
	assert.Nil(t, err)
	assert.Equal(t, []string{"new_offender"}, blacklisted)
}

func TestSweep_ErrorsPropagate(t *testing.T) {

	// Setup: a mocked repo standing in for a failing store
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	setupDummyLogger(mockLogger)
	setupDummyMetrics(mockMetrics)
	storageErr := &dal.StorageError{Op: "get open requests", Err: assert.AnError}
	mockRepo.EXPECT().GetAccountsWithOpenRequest().Return(nil, storageErr)

	sw := logic.NewSweeper(&shared.Config{}, mockLogger, mockRepo, mockMetrics)

	// Exercise
	blacklisted, err := sw.SweepExpired(7)

	// Verify
	assert.Nil(t, blacklisted)
	assert.ErrorIs(t, err, assert.AnError)
}
