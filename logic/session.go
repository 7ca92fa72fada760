package logic

import (
	"gramkeeper/dal"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_session.go -package mocks gramkeeper/logic ISession

// ISession is the boundary with the Instagram web collaborator. It hands the
// engine complete snapshots, never deltas; how it obtains them is its own
// business.
type ISession interface {
	LogIn() error
	// FetchFollowersAndFollowing returns the owner's full follower and
	// following lists as plain usernames. Either may contain duplicates.
	FetchFollowersAndFollowing() (followers, following []string, err error)
	ViewProfile(username string) (*ProfileInfo, error)
	FollowUser(username string) error
	// UnfollowUser returns the action actually performed: "unfollow" for an
	// accepted follow, "unrequested" for a still-pending request.
	UnfollowUser(username string) (actionType string, err error)
	// GetFollowersWithStatus scrapes up to max followers of username together
	// with the follow-button label shown next to each.
	GetFollowersWithStatus(username string, max int) ([]dal.StatusPair, error)
}

// ProfileInfo is what one profile visit yields.
type ProfileInfo struct {
	Username       string
	PostsCount     int
	FollowersCount int
	FollowingCount int
	MutualsCount   int
	Biography      string
	IsPrivate      bool
}
