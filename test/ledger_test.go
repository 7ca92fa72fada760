package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gramkeeper/logic"
	"gramkeeper/test/mocks"
)

func TestLedger_AppendsRepeatedRows(t *testing.T) {

	// Setup
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)
	repo := newTestRepo(t, ctrl)
	ledger := logic.NewActionLedger(mockLogger, repo)

	// Exercise: the same action twice; this is an audit trail, not a set
	when := time.Now().UTC()
	assert.Nil(t, ledger.RecordAction("alice", "view", when))
	assert.Nil(t, ledger.RecordAction("alice", "view", when.Add(time.Minute)))
	assert.Nil(t, ledger.RecordAction("test_owner", "login", when.Add(2*time.Minute)))

	// Verify: three rows, newest first
	entries, total, err := repo.GetActionsPage(0, 10)
	assert.Nil(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 3, len(entries))
	assert.Equal(t, "login", entries[0].ActionType)
	assert.Equal(t, "test_owner", entries[0].Username)
	assert.Equal(t, "view", entries[1].ActionType)
	assert.Equal(t, "view", entries[2].ActionType)
	assert.Equal(t, "alice", entries[2].Username)
}

func TestLedger_WriteFailureSurfaces(t *testing.T) {

	// Setup
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)
	mockRepo := mocks.NewMockIRepo(ctrl)
	mockRepo.EXPECT().AddAction(gomock.Any()).Return(assert.AnError)
	ledger := logic.NewActionLedger(mockLogger, mockRepo)

	// Exercise
	err := ledger.RecordAction("bob", "follow", time.Now().UTC())

	// Verify
	assert.NotNil(t, err)
	var ledgerErr *logic.LedgerError
	assert.ErrorAs(t, err, &ledgerErr)
	assert.Equal(t, "bob", ledgerErr.Username)
	assert.Equal(t, "follow", ledgerErr.ActionType)
	assert.ErrorIs(t, err, assert.AnError)
}
