package logic

import (
	"fmt"
	"strings"
	"time"

	"gramkeeper/dal"
	"gramkeeper/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_reconciler.go -package mocks gramkeeper/logic IReconciler

type IReconciler interface {
	// Reconcile takes complete follower/following snapshots (possibly with
	// duplicates) and commits the resulting relationship flags plus one
	// history entry as a single transaction.
	Reconcile(followersList, followingList []string) (*ReconcileOutcome, error)
}

// ReconcileOutcome reports what one reconciliation run found and committed.
type ReconcileOutcome struct {
	FollowersCount int
	FollowingCount int
	MutualsCount   int
	NewFollowers   []string
	LostFollowers  []string
	NewFollowing   []string
	UnFollowing    []string
}

// ReconcileError wraps the storage failure that aborted a reconciliation run.
// The store is guaranteed to be unchanged when one of these comes back.
type ReconcileError struct {
	Stage string
	Err   error
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("reconciliation failed (%s): %v", e.Stage, e.Err)
}

func (e *ReconcileError) Unwrap() error {
	return e.Err
}

type reconciler struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	metrics IMetrics
}

func NewReconciler(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	metrics IMetrics,
) IReconciler {
	return &reconciler{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		metrics: metrics,
	}
}

func (rec *reconciler) Reconcile(followersList, followingList []string) (*ReconcileOutcome, error) {

	obs := rec.metrics.StartReconcile()
	defer obs.Finish()

	prior, err := rec.repo.GetAllAccounts()
	if err != nil {
		return nil, &ReconcileError{Stage: "load prior accounts", Err: err}
	}

	followers := dedupe(followersList)
	following := dedupe(followingList)

	groups := classify(followers, following, prior)
	outcome := computeDeltas(followers, following, prior)
	outcome.MutualsCount = len(groups.Mutual)

	entry := &dal.HistoryEntry{
		Time:           time.Now().UTC(),
		FollowersCount: outcome.FollowersCount,
		FollowingCount: outcome.FollowingCount,
		NewFollowers:   strings.Join(outcome.NewFollowers, ","),
		LostFollowers:  strings.Join(outcome.LostFollowers, ","),
		NewFollowing:   strings.Join(outcome.NewFollowing, ","),
		UnFollowing:    strings.Join(outcome.UnFollowing, ","),
	}

	if err = rec.repo.ApplyReconciliation(groups, entry); err != nil {
		return nil, &ReconcileError{Stage: "commit", Err: err}
	}

	rec.metrics.TotalFollowers(outcome.FollowersCount)
	rec.metrics.TotalFollowing(outcome.FollowingCount)
	rec.metrics.TotalMutuals(outcome.MutualsCount)
	rec.metrics.NewFollowers(len(outcome.NewFollowers))
	rec.metrics.LostFollowers(len(outcome.LostFollowers))

	rec.logger.Infof("Reconciled: %d followers, %d following, %d mutuals; +%d/-%d followers, +%d/-%d following",
		outcome.FollowersCount, outcome.FollowingCount, outcome.MutualsCount,
		len(outcome.NewFollowers), len(outcome.LostFollowers),
		len(outcome.NewFollowing), len(outcome.UnFollowing))

	return outcome, nil
}

// dedupe returns the unique elements of list in first-occurrence order.
func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	res := make([]string, 0, len(list))
	for _, item := range list {
		if seen[item] {
			continue
		}
		seen[item] = true
		res = append(res, item)
	}
	return res
}

func toSet(list []string) map[string]bool {
	res := make(map[string]bool, len(list))
	for _, item := range list {
		res[item] = true
	}
	return res
}

// classify partitions every username mentioned in either deduplicated input
// list, plus every username already stored, into the four relationship groups.
// Membership is pure set arithmetic, so no username can land in two groups.
func classify(followers, following []string, prior []*dal.Account) *dal.RelationshipGroups {

	followersSet := toSet(followers)
	followingSet := toSet(following)

	groups := dal.RelationshipGroups{}
	for _, username := range followers {
		if followingSet[username] {
			groups.Mutual = append(groups.Mutual, username)
		} else {
			groups.OnlyTheyFollow = append(groups.OnlyTheyFollow, username)
		}
	}
	for _, username := range following {
		if !followersSet[username] {
			groups.OnlyIFollow = append(groups.OnlyIFollow, username)
		}
	}
	for _, acct := range prior {
		if !followersSet[acct.Username] && !followingSet[acct.Username] {
			groups.Neither = append(groups.Neither, acct.Username)
		}
	}
	return &groups
}

// computeDeltas diffs the deduplicated snapshots against the flags recorded
// before this run. On the very first run there is no baseline, so all four
// delta sets are empty rather than "everyone".
func computeDeltas(followers, following []string, prior []*dal.Account) *ReconcileOutcome {

	followersSet := toSet(followers)
	followingSet := toSet(following)

	origFollowers := make(map[string]bool)
	origFollowing := make(map[string]bool)
	for _, acct := range prior {
		if acct.FollowsMe {
			origFollowers[acct.Username] = true
		}
		if acct.IFollow {
			origFollowing[acct.Username] = true
		}
	}

	outcome := ReconcileOutcome{
		FollowersCount: len(followers),
		FollowingCount: len(following),
	}
	firstRun := len(prior) == 0
	if !firstRun {
		for _, username := range followers {
			if !origFollowers[username] {
				outcome.NewFollowers = append(outcome.NewFollowers, username)
			}
		}
		for _, username := range following {
			if !origFollowing[username] {
				outcome.NewFollowing = append(outcome.NewFollowing, username)
			}
		}
	}
	for _, acct := range prior {
		if acct.FollowsMe && !followersSet[acct.Username] {
			outcome.LostFollowers = append(outcome.LostFollowers, acct.Username)
		}
		if acct.IFollow && !followingSet[acct.Username] {
			outcome.UnFollowing = append(outcome.UnFollowing, acct.Username)
		}
	}
	return &outcome
}
