package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gramkeeper/dal"
)

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{}, dedupe(nil))
	assert.Equal(t, []string{"x"}, dedupe([]string{"x", "x", "x"}))
}

func TestClassify(t *testing.T) {

	prior := []*dal.Account{
		{Username: "old", FollowsMe: true, IFollow: false},
		{Username: "mutual", FollowsMe: true, IFollow: true},
	}
	followers := []string{"mutual", "fan"}
	following := []string{"mutual", "idol"}

	groups := classify(followers, following, prior)

	assert.Equal(t, []string{"mutual"}, groups.Mutual)
	assert.Equal(t, []string{"idol"}, groups.OnlyIFollow)
	assert.Equal(t, []string{"fan"}, groups.OnlyTheyFollow)
	assert.Equal(t, []string{"old"}, groups.Neither)
}

func TestClassify_DisjointGroups(t *testing.T) {

	prior := []*dal.Account{{Username: "c", FollowsMe: true, IFollow: true}}
	groups := classify([]string{"a", "b"}, []string{"b"}, prior)

	seen := make(map[string]int)
	for _, u := range groups.Mutual {
		seen[u]++
	}
	for _, u := range groups.OnlyIFollow {
		seen[u]++
	}
	for _, u := range groups.OnlyTheyFollow {
		seen[u]++
	}
	for _, u := range groups.Neither {
		seen[u]++
	}
	for u, n := range seen {
		assert.Equal(t, 1, n, u)
	}
	assert.Equal(t, 3, len(seen))
}

func TestComputeDeltas_FirstRun(t *testing.T) {

	outcome := computeDeltas([]string{"a", "b"}, []string{"b", "c"}, nil)

	assert.Equal(t, 2, outcome.FollowersCount)
	assert.Equal(t, 2, outcome.FollowingCount)
	assert.Empty(t, outcome.NewFollowers)
	assert.Empty(t, outcome.LostFollowers)
	assert.Empty(t, outcome.NewFollowing)
	assert.Empty(t, outcome.UnFollowing)
}

func TestComputeDeltas_Ordering(t *testing.T) {

	// New deltas follow input order; lost deltas follow stored-row order
	prior := []*dal.Account{
		{Username: "p", FollowsMe: true},
		{Username: "q", FollowsMe: true},
	}
	outcome := computeDeltas([]string{"z", "a"}, []string{}, prior)

	assert.Equal(t, []string{"z", "a"}, outcome.NewFollowers)
	assert.Equal(t, []string{"p", "q"}, outcome.LostFollowers)
}
