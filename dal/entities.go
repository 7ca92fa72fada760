package dal

import (
	"time"
)

// Account is one row per distinct username ever observed. The relationship
// flags are only ever written by the reconciliation commit; request_time and
// blacklisted only by the follow action and the expiry sweep.
type Account struct {
	Id              int
	Username        string
	FollowsMe       bool
	IFollow         bool
	FollowingStatus string     // UI label seen on a followers list ("Follow", "Following", "Requested"); empty if never observed
	RequestTime     *time.Time // nil unless a follow request is currently outstanding
	Blacklisted     bool
	FollowersCount  int
	FollowingCount  int
	MutualsCount    int
	PostsCount      int
	Biography       string
	LastUpdated     *time.Time // nil until the profile has been visited once
}

// HistoryEntry is one row per reconciliation run. The four delta members are
// comma-joined username lists; the empty set is the empty string.
type HistoryEntry struct {
	Id             int
	Time           time.Time
	FollowersCount int
	FollowingCount int
	NewFollowers   string
	LostFollowers  string
	NewFollowing   string
	UnFollowing    string
}

// ActionEntry is one row per discrete action taken ("login", "follow",
// "unfollow", "unrequested", "view", "fetchLists").
type ActionEntry struct {
	Id         int
	Username   string
	ActionType string
	Time       time.Time
}

// RelationshipGroups is the four-way partition a reconciliation run commits.
type RelationshipGroups struct {
	Mutual         []string // follows_me=1, i_follow=1
	OnlyIFollow    []string // follows_me=0, i_follow=1
	OnlyTheyFollow []string // follows_me=1, i_follow=0
	Neither        []string // follows_me=0, i_follow=0
}

// StatusPair is one scraped (username, button label) observation.
type StatusPair struct {
	Username string
	Status   string
}

// ProfileSnapshot holds the fields a profile visit refreshes.
type ProfileSnapshot struct {
	PostsCount     int
	FollowersCount int
	FollowingCount int
	MutualsCount   int
	Biography      string
	LastUpdated    time.Time
}
