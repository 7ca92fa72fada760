package dal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gramkeeper/shared"
)

type nopLogger struct{}

func (nopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Debugf(format string, args ...interface{})     {}
func (nopLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (nopLogger) Infof(format string, args ...interface{})      {}
func (nopLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})      {}
func (nopLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})     {}
func (nopLogger) Printf(format string, args ...interface{})     {}

func openTestRepo(t *testing.T) *Repo {
	cfg := &shared.Config{
		DbDir: t.TempDir(),
		Owner: "sentinel_owner",
	}
	repo := NewRepo(cfg, nopLogger{}).(*Repo)
	repo.InitUpdateDb()
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// Databases written by earlier tooling stored '' in request_time instead of
// NULL. Both must read back as "no outstanding request".
func TestEmptyRequestTimeSentinel(t *testing.T) {

	repo := openTestRepo(t)

	_, err := repo.db.Exec(
		`INSERT INTO accounts (username, follows_me, i_follow, request_time) VALUES (?, 0, 1, '')`,
		"legacy")
	assert.Nil(t, err)
	now := time.Now().UTC()
	assert.Nil(t, repo.UpsertRelationship("current", false, true))
	assert.Nil(t, repo.SetRequestTimeAndBlacklist("current", &now, false))

	acct, err := repo.GetAccount("legacy")
	assert.Nil(t, err)
	assert.Nil(t, acct.RequestTime)

	open, err := repo.GetAccountsWithOpenRequest()
	assert.Nil(t, err)
	assert.Equal(t, 1, len(open))
	assert.Equal(t, "current", open[0].Username)
}

func TestUpsertRelationshipKeepsOtherFields(t *testing.T) {

	repo := openTestRepo(t)

	snap := ProfileSnapshot{
		PostsCount:     5,
		FollowersCount: 100,
		FollowingCount: 90,
		MutualsCount:   12,
		Biography:      "hello",
		LastUpdated:    time.Now().UTC(),
	}
	assert.Nil(t, repo.UpdateProfileSnapshot("keeper", &snap))
	assert.Nil(t, repo.UpsertRelationship("keeper", true, false))

	acct, err := repo.GetAccount("keeper")
	assert.Nil(t, err)
	assert.True(t, acct.FollowsMe)
	assert.Equal(t, 100, acct.FollowersCount)
	assert.Equal(t, "hello", acct.Biography)
}

func TestUpsertFollowingStatuses(t *testing.T) {

	repo := openTestRepo(t)

	assert.Nil(t, repo.UpsertRelationship("known", true, true))
	pairs := []StatusPair{
		{Username: "known", Status: "Following"},
		{Username: "newcomer", Status: "Follow"},
	}
	assert.Nil(t, repo.UpsertFollowingStatuses(pairs))

	known, err := repo.GetAccount("known")
	assert.Nil(t, err)
	assert.Equal(t, "Following", known.FollowingStatus)
	assert.True(t, known.FollowsMe)

	newcomer, err := repo.GetAccount("newcomer")
	assert.Nil(t, err)
	assert.Equal(t, "Follow", newcomer.FollowingStatus)
	assert.False(t, newcomer.FollowsMe)
	assert.False(t, newcomer.IFollow)
}

func TestGetAccountMissingIsNilNil(t *testing.T) {

	repo := openTestRepo(t)

	acct, err := repo.GetAccount("never_seen")
	assert.Nil(t, err)
	assert.Nil(t, acct)
}
