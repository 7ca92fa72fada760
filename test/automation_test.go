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

const ownerName = "test_owner"

type automationHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockRepo       *mocks.MockIRepo
	mockReconciler *mocks.MockIReconciler
	mockSweeper    *mocks.MockISweeper
	mockLedger     *mocks.MockIActionLedger
	mockSession    *mocks.MockISession
	mockMetrics    *mocks.MockIMetrics
}

func setupAutomationTest(t *testing.T) (*gomock.Controller, *automationHarness, logic.IAutomation) {

	ctrl := gomock.NewController(t)

	h := &automationHarness{
		cfg: &shared.Config{
			Owner: ownerName,
			Automation: shared.Automation{
				DaysLimit:           7,
				MutualLimit:         20,
				UpdateDaysLimit:     100,
				ViewsPerHour:        20,
				InteractionsPerHour: 10,
				InteractionsPerDay:  50,
				LoginsPerDay:        3,
				LoopPauseSec:        60,
			},
		},
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockRepo:       mocks.NewMockIRepo(ctrl),
		mockReconciler: mocks.NewMockIReconciler(ctrl),
		mockSweeper:    mocks.NewMockISweeper(ctrl),
		mockLedger:     mocks.NewMockIActionLedger(ctrl),
		mockSession:    mocks.NewMockISession(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)

	au := logic.NewAutomation(h.cfg, h.mockLogger, h.mockRepo, h.mockReconciler,
		h.mockSweeper, h.mockLedger, h.mockSession, h.mockMetrics)

	return ctrl, h, au
}

func TestCycle_QuietPass(t *testing.T) {

	// Setup: fresh lists come in, nothing is expired, no candidates, no stale
	// profiles, one mutual whose followers get pulled
	ctrl, h, au := setupAutomationTest(t)
	defer ctrl.Finish()

	followers := []string{"alice", "bob"}
	following := []string{"bob"}
	pairs := []dal.StatusPair{
		{Username: "newface", Status: "Follow"},
		{Username: "bob", Status: "Following"},
	}

	h.mockSession.EXPECT().FetchFollowersAndFollowing().Return(followers, following, nil)
	h.mockLedger.EXPECT().RecordAction(ownerName, "fetchLists", gomock.Any()).Return(nil)
	h.mockReconciler.EXPECT().Reconcile(followers, following).Return(&logic.ReconcileOutcome{}, nil)
	h.mockSweeper.EXPECT().SweepExpired(7).Return([]string{}, nil)
	h.mockRepo.EXPECT().GetFollowCandidates(20).Return([]*dal.Account{}, nil)
	h.mockRepo.EXPECT().GetProfilesToRefresh(gomock.Any()).Return([]*dal.Account{}, nil)
	h.mockRepo.EXPECT().GetMutuals().Return([]string{"bob"}, nil)
	h.mockSession.EXPECT().GetFollowersWithStatus("bob", 20).Return(pairs, nil)
	h.mockRepo.EXPECT().UpsertFollowingStatuses(pairs).Return(nil)

	// Exercise + verify
	err := au.RunCycle()
	assert.Nil(t, err)
}

func TestCycle_UnfollowsExpired(t *testing.T) {

	// Setup: the sweep blacklists one account; the cycle unfollows it
	ctrl, h, au := setupAutomationTest(t)
	defer ctrl.Finish()

	h.mockSession.EXPECT().FetchFollowersAndFollowing().Return([]string{}, []string{}, nil)
	h.mockLedger.EXPECT().RecordAction(ownerName, "fetchLists", gomock.Any()).Return(nil)
	h.mockReconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(&logic.ReconcileOutcome{}, nil)
	h.mockSweeper.EXPECT().SweepExpired(7).Return([]string{"ghost"}, nil)
	h.mockSession.EXPECT().UnfollowUser("ghost").Return("unfollow", nil)
	h.mockLedger.EXPECT().RecordAction("ghost", "unfollow", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().GetFollowCandidates(20).Return([]*dal.Account{}, nil)
	h.mockRepo.EXPECT().GetProfilesToRefresh(gomock.Any()).Return([]*dal.Account{}, nil)
	h.mockRepo.EXPECT().GetMutuals().Return([]string{}, nil)

	// Exercise + verify
	err := au.RunCycle()
	assert.Nil(t, err)
}

func TestCycle_FollowsCandidate(t *testing.T) {

	// Setup: one stored account passes the mutual threshold; the cycle views
	// its profile, follows it, and records the outstanding request
	ctrl, h, au := setupAutomationTest(t)
	defer ctrl.Finish()

	candidate := &dal.Account{Username: "promising", MutualsCount: 25}
	info := &logic.ProfileInfo{
		Username:       "promising",
		PostsCount:     40,
		FollowersCount: 900,
		FollowingCount: 850,
		MutualsCount:   25,
	}

	h.mockSession.EXPECT().FetchFollowersAndFollowing().Return([]string{}, []string{}, nil)
	h.mockLedger.EXPECT().RecordAction(ownerName, "fetchLists", gomock.Any()).Return(nil)
	h.mockReconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(&logic.ReconcileOutcome{}, nil)
	h.mockSweeper.EXPECT().SweepExpired(7).Return([]string{}, nil)
	h.mockRepo.EXPECT().GetFollowCandidates(20).Return([]*dal.Account{candidate}, nil)
	h.mockSession.EXPECT().ViewProfile("promising").Return(info, nil)
	h.mockRepo.EXPECT().UpdateProfileSnapshot("promising", gomock.Any()).Return(nil)
	h.mockLedger.EXPECT().RecordAction("promising", "view", gomock.Any()).Return(nil)
	h.mockSession.EXPECT().FollowUser("promising").Return(nil)
	h.mockRepo.EXPECT().SetRequestTimeAndBlacklist("promising", gomock.Any(), false).Return(nil)
	h.mockLedger.EXPECT().RecordAction("promising", "follow", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().GetProfilesToRefresh(gomock.Any()).Return([]*dal.Account{}, nil)
	h.mockRepo.EXPECT().GetMutuals().Return([]string{}, nil)

	// Exercise + verify
	err := au.RunCycle()
	assert.Nil(t, err)
}

func TestCycle_NoActionPauseWhenUnconfigured(t *testing.T) {

	// Setup: two unfollows go out back to back; with no pause bounds in the
	// config the cycle must not sleep between them
	ctrl, h, au := setupAutomationTest(t)
	defer ctrl.Finish()

	h.mockSession.EXPECT().FetchFollowersAndFollowing().Return([]string{}, []string{}, nil)
	h.mockLedger.EXPECT().RecordAction(ownerName, "fetchLists", gomock.Any()).Return(nil)
	h.mockReconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(&logic.ReconcileOutcome{}, nil)
	h.mockSweeper.EXPECT().SweepExpired(7).Return([]string{"ghost1", "ghost2"}, nil)
	h.mockSession.EXPECT().UnfollowUser("ghost1").Return("unfollow", nil)
	h.mockLedger.EXPECT().RecordAction("ghost1", "unfollow", gomock.Any()).Return(nil)
	h.mockSession.EXPECT().UnfollowUser("ghost2").Return("unfollow", nil)
	h.mockLedger.EXPECT().RecordAction("ghost2", "unfollow", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().GetFollowCandidates(20).Return([]*dal.Account{}, nil)
	h.mockRepo.EXPECT().GetProfilesToRefresh(gomock.Any()).Return([]*dal.Account{}, nil)
	h.mockRepo.EXPECT().GetMutuals().Return([]string{}, nil)

	// Exercise + verify
	start := time.Now()
	err := au.RunCycle()
	assert.Nil(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCycle_FetchFailureAborts(t *testing.T) {

	// Setup
	ctrl, h, au := setupAutomationTest(t)
	defer ctrl.Finish()
	h.mockSession.EXPECT().FetchFollowersAndFollowing().Return(nil, nil, assert.AnError)

	// Exercise + verify: nothing else gets called
	err := au.RunCycle()
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCycle_InteractionBudget(t *testing.T) {

	// Setup: per-hour budget of 1, two expired accounts; only the first gets
	// unfollowed, and the follow stage is skipped entirely
	ctrl, h, _ := setupAutomationTest(t)
	defer ctrl.Finish()
	h.cfg.Automation.InteractionsPerHour = 1
	au := logic.NewAutomation(h.cfg, h.mockLogger, h.mockRepo, h.mockReconciler,
		h.mockSweeper, h.mockLedger, h.mockSession, h.mockMetrics)

	h.mockSession.EXPECT().FetchFollowersAndFollowing().Return([]string{}, []string{}, nil)
	h.mockLedger.EXPECT().RecordAction(ownerName, "fetchLists", gomock.Any()).Return(nil)
	h.mockReconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(&logic.ReconcileOutcome{}, nil)
	h.mockSweeper.EXPECT().SweepExpired(7).Return([]string{"ghost1", "ghost2"}, nil)
	h.mockSession.EXPECT().UnfollowUser("ghost1").Return("unfollow", nil)
	h.mockLedger.EXPECT().RecordAction("ghost1", "unfollow", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().GetFollowCandidates(20).Return([]*dal.Account{
		{Username: "promising", MutualsCount: 25},
	}, nil)
	h.mockRepo.EXPECT().GetProfilesToRefresh(gomock.Any()).Return([]*dal.Account{}, nil)
	h.mockRepo.EXPECT().GetMutuals().Return([]string{}, nil)

	// Exercise + verify
	err := au.RunCycle()
	assert.Nil(t, err)
}
