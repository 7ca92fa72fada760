package logic

import (
	"fmt"
	"time"

	"gramkeeper/dal"
	"gramkeeper/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_ledger.go -package mocks gramkeeper/logic IActionLedger

type IActionLedger interface {
	// RecordAction appends one row to the action trail. Repeated identical
	// actions append repeated rows; this is an audit trail, not a set.
	RecordAction(username, actionType string, when time.Time) error
}

// LedgerError wraps a failed action append.
type LedgerError struct {
	Username   string
	ActionType string
	Err        error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger: failed to record '%s' for '%s': %v", e.ActionType, e.Username, e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

type actionLedger struct {
	logger shared.ILogger
	repo   dal.IRepo
}

func NewActionLedger(logger shared.ILogger, repo dal.IRepo) IActionLedger {
	return &actionLedger{
		logger: logger,
		repo:   repo,
	}
}

func (al *actionLedger) RecordAction(username, actionType string, when time.Time) error {

	entry := dal.ActionEntry{
		Username:   username,
		ActionType: actionType,
		Time:       when,
	}
	if err := al.repo.AddAction(&entry); err != nil {
		return &LedgerError{Username: username, ActionType: actionType, Err: err}
	}
	al.logger.Debugf("Action recorded: %s for %s", actionType, username)
	return nil
}
