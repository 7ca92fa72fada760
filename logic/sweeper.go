package logic

import (
	"time"

	"gramkeeper/dal"
	"gramkeeper/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_sweeper.go -package mocks gramkeeper/logic ISweeper

type ISweeper interface {
	// SweepExpired resolves follow requests older than daysLimit days.
	// Accounts that never followed back get blacklisted and are returned;
	// accounts that did follow back just get their request cleared.
	SweepExpired(daysLimit int) ([]string, error)
}

type sweeper struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	metrics IMetrics
}

func NewSweeper(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	metrics IMetrics,
) ISweeper {
	return &sweeper{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		metrics: metrics,
	}
}

func (sw *sweeper) SweepExpired(daysLimit int) ([]string, error) {

	obs := sw.metrics.StartSweep()
	defer obs.Finish()

	open, err := sw.repo.GetAccountsWithOpenRequest()
	if err != nil {
		return nil, err
	}

	maxAge := time.Duration(daysLimit) * 24 * time.Hour
	now := time.Now()

	clearOnly := make([]string, 0)
	blacklist := make([]string, 0)
	for _, acct := range open {
		if acct.RequestTime == nil {
			continue
		}
		if now.Sub(*acct.RequestTime) <= maxAge {
			continue
		}
		if acct.FollowsMe {
			// They followed back in the meantime; no penalty
			clearOnly = append(clearOnly, acct.Username)
		} else {
			blacklist = append(blacklist, acct.Username)
		}
	}

	if len(clearOnly) == 0 && len(blacklist) == 0 {
		return blacklist, nil
	}

	if err = sw.repo.ResolveRequests(clearOnly, blacklist); err != nil {
		return nil, err
	}

	sw.metrics.RequestsExpired(len(blacklist))
	sw.logger.Infof("Sweep: %d requests cleared, %d expired and blacklisted", len(clearOnly), len(blacklist))

	return blacklist, nil
}
