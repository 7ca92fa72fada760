package insta

import (
	"fmt"
	"net/url"
)

const (
	// BaseURL is the base URL for Instagram's web frontend
	BaseURL = "https://www.instagram.com"

	// ProfileEndpoint returns profile info for a username
	ProfileEndpoint = "/api/v1/users/web_profile_info/"

	// FollowersEndpoint lists the followers of a user id
	FollowersEndpoint = "/api/v1/friendships/%s/followers/"

	// FollowingEndpoint lists the accounts a user id follows
	FollowingEndpoint = "/api/v1/friendships/%s/following/"

	// FollowEndpoint sends a follow request to a user id
	FollowEndpoint = "/api/v1/friendships/create/%s/"

	// UnfollowEndpoint removes a follow (or pending request) for a user id
	UnfollowEndpoint = "/api/v1/friendships/destroy/%s/"

	// FriendshipEndpoint returns the viewer's relationship to a user id
	FriendshipEndpoint = "/api/v1/friendships/show/%s/"

	// listPageSize is how many rows one friendship list request returns
	listPageSize = 50

	// appIdHeaderValue is the x-ig-app-id the web frontend sends
	appIdHeaderValue = "936619743392459"
)

func profileUrl(username string) string {
	params := url.Values{}
	params.Set("username", username)
	return fmt.Sprintf("%s%s?%s", BaseURL, ProfileEndpoint, params.Encode())
}

func profilePageUrl(username string) string {
	return fmt.Sprintf("%s/%s/", BaseURL, username)
}

func followersUrl(userId, maxId string) string {
	return listUrl(FollowersEndpoint, userId, maxId)
}

func followingUrl(userId, maxId string) string {
	return listUrl(FollowingEndpoint, userId, maxId)
}

func listUrl(endpoint, userId, maxId string) string {
	params := url.Values{}
	params.Set("count", fmt.Sprintf("%d", listPageSize))
	if maxId != "" {
		params.Set("max_id", maxId)
	}
	return fmt.Sprintf("%s%s?%s", BaseURL, fmt.Sprintf(endpoint, userId), params.Encode())
}

func followUrl(userId string) string {
	return BaseURL + fmt.Sprintf(FollowEndpoint, userId)
}

func unfollowUrl(userId string) string {
	return BaseURL + fmt.Sprintf(UnfollowEndpoint, userId)
}

func friendshipUrl(userId string) string {
	return BaseURL + fmt.Sprintf(FriendshipEndpoint, userId)
}
