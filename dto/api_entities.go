package dto

import "time"

type Account struct {
	Username        string     `json:"username"`
	FollowsMe       bool       `json:"follows_me"`
	IFollow         bool       `json:"i_follow"`
	FollowingStatus string     `json:"following_status,omitempty"`
	RequestTime     *time.Time `json:"request_time,omitempty"`
	Blacklisted     bool       `json:"blacklisted"`
	FollowersCount  int        `json:"followers_count"`
	FollowingCount  int        `json:"following_count"`
	MutualsCount    int        `json:"mutuals_count"`
	PostsCount      int        `json:"posts_count"`
	Biography       string     `json:"biography,omitempty"`
	LastUpdated     *time.Time `json:"last_updated,omitempty"`
}

type HistoryEntry struct {
	Time           time.Time `json:"time"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	NewFollowers   string    `json:"new_followers"`
	LostFollowers  string    `json:"lost_followers"`
	NewFollowing   string    `json:"new_following"`
	UnFollowing    string    `json:"un_following"`
}

type ActionEntry struct {
	Username   string    `json:"username"`
	ActionType string    `json:"action_type"`
	Time       time.Time `json:"time"`
}

type Page[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

type ReconcileRequest struct {
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

type ReconcileResponse struct {
	FollowersCount int      `json:"followers_count"`
	FollowingCount int      `json:"following_count"`
	MutualsCount   int      `json:"mutuals_count"`
	NewFollowers   []string `json:"new_followers"`
	LostFollowers  []string `json:"lost_followers"`
	NewFollowing   []string `json:"new_following"`
	UnFollowing    []string `json:"un_following"`
}

type SweepRequest struct {
	DaysLimit int `json:"days_limit"`
}

type SweepResponse struct {
	Blacklisted []string `json:"blacklisted"`
}
