package insta

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"gramkeeper/dal"
	"gramkeeper/logic"
	"gramkeeper/shared"
)

const requestTimeoutSec = 15

// ErrorKind tags what went wrong talking to Instagram
type ErrorKind string

const (
	ErrKindNetwork   ErrorKind = "network"
	ErrKindAuth      ErrorKind = "auth"
	ErrKindRateLimit ErrorKind = "rate_limit"
	ErrKindNotFound  ErrorKind = "not_found"
	ErrKindParsing   ErrorKind = "parsing"
	ErrKindServer    ErrorKind = "server"
)

type ApiError struct {
	Kind    ErrorKind
	Message string
	Code    int
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("instagram %s error (code %d): %s", e.Kind, e.Code, e.Message)
}

type session struct {
	cfg        *shared.Config
	logger     shared.ILogger
	httpClient *http.Client
	headers    map[string]string
	sanitizer  *bluemonday.Policy
	muIds      sync.Mutex
	userIds    map[string]string
}

func NewSession(cfg *shared.Config, logger shared.ILogger) logic.ISession {

	cookie := fmt.Sprintf("sessionid=%s; csrftoken=%s", cfg.Secrets.SessionId, cfg.Secrets.CsrfToken)
	return &session{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: requestTimeoutSec * time.Second,
		},
		headers: map[string]string{
			"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
			"Accept":          "*/*",
			"Accept-Language": "en-US,en;q=0.9",
			"X-IG-App-ID":     appIdHeaderValue,
			"X-CSRFToken":     cfg.Secrets.CsrfToken,
			"Cookie":          cookie,
		},
		sanitizer: bluemonday.StrictPolicy(),
		userIds:   make(map[string]string),
	}
}

func (s *session) doRequest(method, urlStr string) ([]byte, error) {

	req, err := http.NewRequest(method, urlStr, nil)
	if err != nil {
		return nil, &ApiError{Kind: ErrKindNetwork, Message: err.Error()}
	}
	for key, value := range s.headers {
		req.Header.Set(key, value)
	}

	s.logger.Debugf("%s %s", method, urlStr)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &ApiError{Kind: ErrKindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ApiError{Kind: ErrKindNetwork, Message: err.Error()}
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &ApiError{Kind: ErrKindAuth, Message: "session rejected", Code: resp.StatusCode}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &ApiError{Kind: ErrKindRateLimit, Message: "rate limited", Code: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &ApiError{Kind: ErrKindNotFound, Message: "not found", Code: resp.StatusCode}
	default:
		return nil, &ApiError{Kind: ErrKindServer, Message: "unexpected status", Code: resp.StatusCode}
	}
}

func (s *session) getJson(urlStr string, obj any) error {
	body, err := s.doRequest("GET", urlStr)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, obj); err != nil {
		return &ApiError{Kind: ErrKindParsing, Message: err.Error()}
	}
	return nil
}

func (s *session) postJson(urlStr string, obj any) error {
	body, err := s.doRequest("POST", urlStr)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, obj); err != nil {
		return &ApiError{Kind: ErrKindParsing, Message: err.Error()}
	}
	return nil
}

func (s *session) LogIn() error {

	// The session cookie comes from config; logging in means verifying that
	// Instagram still accepts it.
	var resp profileResponse
	if err := s.getJson(profileUrl(s.cfg.Owner), &resp); err != nil {
		return err
	}
	if resp.Data.User.Id == "" {
		return &ApiError{Kind: ErrKindAuth, Message: "profile lookup returned no user; session expired?"}
	}
	s.cacheUserId(s.cfg.Owner, resp.Data.User.Id)
	s.logger.Infof("Logged in as %s", s.cfg.Owner)
	return nil
}

func (s *session) cacheUserId(username, id string) {
	s.muIds.Lock()
	s.userIds[username] = id
	s.muIds.Unlock()
}

func (s *session) lookupUserId(username string) (string, error) {
	s.muIds.Lock()
	id, ok := s.userIds[username]
	s.muIds.Unlock()
	if ok {
		return id, nil
	}
	var resp profileResponse
	if err := s.getJson(profileUrl(username), &resp); err != nil {
		return "", err
	}
	if resp.Data.User.Id == "" {
		return "", &ApiError{Kind: ErrKindNotFound, Message: "no user id for " + username}
	}
	s.cacheUserId(username, resp.Data.User.Id)
	return resp.Data.User.Id, nil
}

func (s *session) FetchFollowersAndFollowing() (followers, following []string, err error) {

	ownId, err := s.lookupUserId(s.cfg.Owner)
	if err != nil {
		return nil, nil, err
	}
	if followers, err = s.fetchList(followersUrl, ownId); err != nil {
		return nil, nil, err
	}
	if following, err = s.fetchList(followingUrl, ownId); err != nil {
		return nil, nil, err
	}
	return followers, following, nil
}

func (s *session) fetchList(buildUrl func(userId, maxId string) string, userId string) ([]string, error) {

	res := make([]string, 0)
	maxId := ""
	for {
		var page listResponse
		if err := s.getJson(buildUrl(userId, maxId), &page); err != nil {
			return nil, err
		}
		for _, user := range page.Users {
			res = append(res, user.Username)
		}
		if page.NextMaxId == "" {
			return res, nil
		}
		maxId = page.NextMaxId
	}
}

func (s *session) ViewProfile(username string) (*logic.ProfileInfo, error) {

	var resp profileResponse
	err := s.getJson(profileUrl(username), &resp)
	if err == nil && resp.Data.User.Username != "" {
		user := resp.Data.User
		return &logic.ProfileInfo{
			Username:       user.Username,
			PostsCount:     user.EdgeOwnerToTimelineMedia.Count,
			FollowersCount: user.EdgeFollowedBy.Count,
			FollowingCount: user.EdgeFollow.Count,
			MutualsCount:   user.EdgeMutualFollowedBy.Count,
			Biography:      s.sanitizeText(user.Biography),
			IsPrivate:      user.IsPrivate,
		}, nil
	}

	// The JSON endpoint gets walled off now and then; the numbers are still
	// in the profile page's og:description meta
	if apiErr, ok := err.(*ApiError); err == nil || ok && apiErr.Kind != ErrKindNetwork {
		s.logger.Warnf("Profile endpoint failed for %s, falling back to page scrape", username)
		return s.viewProfilePage(username)
	}
	return nil, err
}

var ogDescRe = regexp.MustCompile(`([\d,.KM]+) Followers, ([\d,.KM]+) Following, ([\d,.KM]+) Posts`)

func (s *session) viewProfilePage(username string) (*logic.ProfileInfo, error) {

	body, err := s.doRequest("GET", profilePageUrl(username))
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, &ApiError{Kind: ErrKindParsing, Message: err.Error()}
	}
	desc := doc.Find("meta[property='og:description']").First().AttrOr("content", "")
	m := ogDescRe.FindStringSubmatch(desc)
	if m == nil {
		return nil, &ApiError{Kind: ErrKindParsing, Message: "no follower counts in profile page for " + username}
	}
	return &logic.ProfileInfo{
		Username:       username,
		FollowersCount: parseCount(m[1]),
		FollowingCount: parseCount(m[2]),
		PostsCount:     parseCount(m[3]),
	}, nil
}

// parseCount understands the abbreviated numbers Instagram renders: "1,234",
// "12.3K", "1M". Returns 0 for anything it can't read.
func parseCount(str string) int {
	str = strings.ReplaceAll(str, ",", "")
	mult := 1.0
	if strings.HasSuffix(str, "K") {
		mult = 1000
		str = strings.TrimSuffix(str, "K")
	} else if strings.HasSuffix(str, "M") {
		mult = 1000 * 1000
		str = strings.TrimSuffix(str, "M")
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0
	}
	return int(val * mult)
}

// sanitizeText strips any markup from scraped free text before it gets
// persisted and later served to the dashboard.
func (s *session) sanitizeText(text string) string {
	return html.UnescapeString(s.sanitizer.Sanitize(text))
}

func (s *session) FollowUser(username string) error {

	userId, err := s.lookupUserId(username)
	if err != nil {
		return err
	}
	var resp actionResponse
	if err = s.postJson(followUrl(userId), &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return &ApiError{Kind: ErrKindServer, Message: "follow returned status " + resp.Status}
	}
	return nil
}

func (s *session) UnfollowUser(username string) (string, error) {

	userId, err := s.lookupUserId(username)
	if err != nil {
		return "", err
	}

	// A pending request and an accepted follow get undone by the same call,
	// but the ledger wants to know which one happened
	actionType := "unfollow"
	var rel friendshipResponse
	if err = s.getJson(friendshipUrl(userId), &rel); err == nil && rel.OutgoingRequest {
		actionType = "unrequested"
	}

	var resp actionResponse
	if err = s.postJson(unfollowUrl(userId), &resp); err != nil {
		return "", err
	}
	if resp.Status != "ok" {
		return "", &ApiError{Kind: ErrKindServer, Message: "unfollow returned status " + resp.Status}
	}
	return actionType, nil
}

func (s *session) GetFollowersWithStatus(username string, max int) ([]dal.StatusPair, error) {

	userId, err := s.lookupUserId(username)
	if err != nil {
		return nil, err
	}
	var page listResponse
	if err = s.getJson(followersUrl(userId, ""), &page); err != nil {
		return nil, err
	}
	res := make([]dal.StatusPair, 0, max)
	for _, user := range page.Users {
		if len(res) >= max {
			break
		}
		res = append(res, dal.StatusPair{
			Username: user.Username,
			Status:   statusLabel(user),
		})
	}
	return res, nil
}

// statusLabel maps the API's friendship flags to the button label the web UI
// would show, which is what the store records.
func statusLabel(user listUser) string {
	switch {
	case user.FriendshipStatus.Following:
		return "Following"
	case user.FriendshipStatus.OutgoingRequest:
		return "Requested"
	case user.FriendshipStatus.FollowedBy:
		return "Follow Back"
	default:
		return "Follow"
	}
}
