package insta

// profileResponse is the shape of the web_profile_info endpoint
type profileResponse struct {
	Data struct {
		User struct {
			Id             string `json:"id"`
			Username       string `json:"username"`
			Biography      string `json:"biography"`
			IsPrivate      bool   `json:"is_private"`
			EdgeFollowedBy struct {
				Count int `json:"count"`
			} `json:"edge_followed_by"`
			EdgeFollow struct {
				Count int `json:"count"`
			} `json:"edge_follow"`
			EdgeMutualFollowedBy struct {
				Count int `json:"count"`
			} `json:"edge_mutual_followed_by"`
			EdgeOwnerToTimelineMedia struct {
				Count int `json:"count"`
			} `json:"edge_owner_to_timeline_media"`
		} `json:"user"`
	} `json:"data"`
	Status string `json:"status"`
}

// listResponse is the shape of the friendships followers/following endpoints
type listResponse struct {
	Users     []listUser `json:"users"`
	NextMaxId string     `json:"next_max_id"`
	Status    string     `json:"status"`
}

type listUser struct {
	Pk               any    `json:"pk"`
	Username         string `json:"username"`
	FullName         string `json:"full_name"`
	IsPrivate        bool   `json:"is_private"`
	FriendshipStatus struct {
		Following       bool `json:"following"`
		FollowedBy      bool `json:"followed_by"`
		OutgoingRequest bool `json:"outgoing_request"`
	} `json:"friendship_status"`
}

// friendshipResponse is the shape of the friendships show endpoint
type friendshipResponse struct {
	Following       bool   `json:"following"`
	FollowedBy      bool   `json:"followed_by"`
	OutgoingRequest bool   `json:"outgoing_request"`
	Status          string `json:"status"`
}

type actionResponse struct {
	Status string `json:"status"`
}
