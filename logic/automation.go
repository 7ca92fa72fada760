package logic

import (
	"math/rand"
	"time"

	"gramkeeper/dal"
	"gramkeeper/shared"
)

const followersPerMutual = 20

type IAutomation interface {
	Start()
	Stop()
	// RunCycle performs one pass of the decision loop: refresh + reconcile
	// the relationship lists, sweep expired requests, unfollow the expired,
	// follow promising candidates, refresh stale profiles, and pull in a
	// random mutual's followers.
	RunCycle() error
}

// actionBudget is a rolling hour/day allowance for externally visible actions.
type actionBudget struct {
	perHour   int
	perDay    int
	hourStart time.Time
	dayStart  time.Time
	usedHour  int
	usedDay   int
}

func (b *actionBudget) take(now time.Time) bool {
	if now.Sub(b.hourStart) >= time.Hour {
		b.hourStart = now
		b.usedHour = 0
	}
	if now.Sub(b.dayStart) >= 24*time.Hour {
		b.dayStart = now
		b.usedDay = 0
	}
	if b.perHour > 0 && b.usedHour >= b.perHour {
		return false
	}
	if b.perDay > 0 && b.usedDay >= b.perDay {
		return false
	}
	b.usedHour++
	b.usedDay++
	return true
}

type automation struct {
	cfg          *shared.Config
	logger       shared.ILogger
	repo         dal.IRepo
	reconciler   IReconciler
	sweeper      ISweeper
	ledger       IActionLedger
	session      ISession
	metrics      IMetrics
	interactions actionBudget
	views        actionBudget
	logins       actionBudget
	stop         chan struct{}
}

func NewAutomation(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	reconciler IReconciler,
	sweeper ISweeper,
	ledger IActionLedger,
	session ISession,
	metrics IMetrics,
) IAutomation {
	now := time.Now()
	return &automation{
		cfg:        cfg,
		logger:     logger,
		repo:       repo,
		reconciler: reconciler,
		sweeper:    sweeper,
		ledger:     ledger,
		session:    session,
		metrics:    metrics,
		interactions: actionBudget{
			perHour:   cfg.Automation.InteractionsPerHour,
			perDay:    cfg.Automation.InteractionsPerDay,
			hourStart: now,
			dayStart:  now,
		},
		views: actionBudget{
			perHour:   cfg.Automation.ViewsPerHour,
			hourStart: now,
			dayStart:  now,
		},
		logins: actionBudget{
			perDay:    cfg.Automation.LoginsPerDay,
			hourStart: now,
			dayStart:  now,
		},
		stop: make(chan struct{}),
	}
}

func (au *automation) Start() {
	go au.loop()
}

func (au *automation) Stop() {
	close(au.stop)
}

func (au *automation) loop() {

	if !au.logIn() {
		au.logger.Errorf("Failed to log in; automation loop not starting")
		return
	}

	pause := time.Duration(au.cfg.Automation.LoopPauseSec) * time.Second
	for {
		if err := au.RunCycle(); err != nil {
			// State is intact after a failed cycle; try again next time.
			// The session may have gone stale, so refresh it if we still can.
			au.logger.Errorf("Automation cycle failed: %v", err)
			au.logIn()
		}
		select {
		case <-au.stop:
			au.logger.Printf("Automation loop stopping")
			return
		case <-time.After(pause):
		}
	}
}

func (au *automation) logIn() bool {
	if !au.logins.take(time.Now()) {
		au.logger.Warn("Login budget exhausted for today")
		return false
	}
	if err := au.session.LogIn(); err != nil {
		au.logger.Errorf("Failed to log in: %v", err)
		return false
	}
	au.recordAction(au.cfg.Owner, "login")
	return true
}

func (au *automation) RunCycle() error {

	au.logger.Debug("Automation cycle starting")

	followers, following, err := au.session.FetchFollowersAndFollowing()
	if err != nil {
		return err
	}
	au.recordAction(au.cfg.Owner, "fetchLists")

	if _, err = au.reconciler.Reconcile(followers, following); err != nil {
		return err
	}

	expired, err := au.sweeper.SweepExpired(au.cfg.Automation.DaysLimit)
	if err != nil {
		return err
	}
	au.unfollowExpired(expired)
	au.followCandidates()
	au.visitStaleProfiles()
	au.pullMutualFollowers()

	au.logger.Debug("Automation cycle finished")
	return nil
}

// unfollowExpired removes the accounts the sweep just blacklisted. Per-user
// failures are logged and skipped; the next cycle picks up the stragglers.
func (au *automation) unfollowExpired(expired []string) {
	for _, username := range expired {
		if !au.interactions.take(time.Now()) {
			au.logger.Infof("Interaction budget exhausted; %s and later unfollows deferred", username)
			return
		}
		actionType, err := au.session.UnfollowUser(username)
		if err != nil {
			au.logger.Warnf("Failed to unfollow %s: %v", username, err)
			continue
		}
		au.recordAction(username, actionType)
		au.metrics.UnfollowSent()
		au.humanPause()
	}
}

// followCandidates sends follow requests to stored accounts with enough
// mutual connections, visiting each profile first for a fresh snapshot.
func (au *automation) followCandidates() {

	candidates, err := au.repo.GetFollowCandidates(au.cfg.Automation.MutualLimit)
	if err != nil {
		au.logger.Errorf("Failed to query follow candidates: %v", err)
		return
	}
	for _, acct := range candidates {
		if !au.interactions.take(time.Now()) {
			au.logger.Info("Interaction budget exhausted; follows deferred")
			return
		}
		if err = au.visitProfile(acct.Username); err != nil {
			au.logger.Warnf("Failed to view profile of %s: %v", acct.Username, err)
		}
		if err = au.session.FollowUser(acct.Username); err != nil {
			au.logger.Warnf("Failed to follow %s: %v", acct.Username, err)
			continue
		}
		now := time.Now()
		if err = au.repo.SetRequestTimeAndBlacklist(acct.Username, &now, false); err != nil {
			au.logger.Errorf("Failed to record follow request for %s: %v", acct.Username, err)
			continue
		}
		au.recordAction(acct.Username, "follow")
		au.metrics.FollowSent()
		au.logger.Infof("Followed %s", acct.Username)
		au.humanPause()
	}
}

func (au *automation) visitStaleProfiles() {

	cutoff := time.Now().Add(-time.Duration(au.cfg.Automation.UpdateDaysLimit) * 24 * time.Hour)
	stale, err := au.repo.GetProfilesToRefresh(cutoff)
	if err != nil {
		au.logger.Errorf("Failed to query stale profiles: %v", err)
		return
	}
	for _, acct := range stale {
		if !au.views.take(time.Now()) {
			au.logger.Info("View budget exhausted; profile visits deferred")
			return
		}
		if err = au.visitProfile(acct.Username); err != nil {
			au.logger.Warnf("Failed to refresh profile of %s: %v", acct.Username, err)
			continue
		}
		au.humanPause()
	}
}

func (au *automation) visitProfile(username string) error {

	info, err := au.session.ViewProfile(username)
	if err != nil {
		return err
	}
	snap := dal.ProfileSnapshot{
		PostsCount:     info.PostsCount,
		FollowersCount: info.FollowersCount,
		FollowingCount: info.FollowingCount,
		MutualsCount:   info.MutualsCount,
		Biography:      info.Biography,
		LastUpdated:    time.Now().UTC(),
	}
	if err = au.repo.UpdateProfileSnapshot(username, &snap); err != nil {
		return err
	}
	au.recordAction(username, "view")
	au.metrics.ProfileViewed()
	return nil
}

// pullMutualFollowers scrapes the followers of one randomly chosen mutual and
// records each with the follow-button label seen next to them. This is where
// new follow candidates enter the store.
func (au *automation) pullMutualFollowers() {

	mutuals, err := au.repo.GetMutuals()
	if err != nil {
		au.logger.Errorf("Failed to query mutuals: %v", err)
		return
	}
	if len(mutuals) == 0 {
		au.logger.Debug("No mutuals yet; nothing to pull followers from")
		return
	}
	pick := mutuals[rand.Intn(len(mutuals))]

	pairs, err := au.session.GetFollowersWithStatus(pick, followersPerMutual)
	if err != nil {
		au.logger.Warnf("Failed to fetch followers of mutual %s: %v", pick, err)
		return
	}
	if err = au.repo.UpsertFollowingStatuses(pairs); err != nil {
		au.logger.Errorf("Failed to store follower statuses: %v", err)
		return
	}
	au.logger.Infof("Pulled %d followers of mutual %s", len(pairs), pick)
}

func (au *automation) recordAction(username, actionType string) {
	if err := au.ledger.RecordAction(username, actionType, time.Now().UTC()); err != nil {
		au.logger.Errorf("%v", err)
	}
}

// humanPause waits a randomized interval between externally visible actions.
// With action_pause_max_ms unset or zero there is no pause at all.
func (au *automation) humanPause() {
	ms := au.cfg.Automation.ActionPauseMinMs
	if spread := au.cfg.Automation.ActionPauseMaxMs - ms; spread > 0 {
		ms += rand.Intn(spread)
	}
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
