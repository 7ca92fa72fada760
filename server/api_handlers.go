package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gramkeeper/dal"
	"gramkeeper/dto"
	"gramkeeper/logic"
	"gramkeeper/shared"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type apiHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	repo       dal.IRepo
	reconciler logic.IReconciler
	sweeper    logic.ISweeper
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	reconciler logic.IReconciler,
	sweeper logic.ISweeper,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		repo:       repo,
		reconciler: reconciler,
		sweeper:    sweeper,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.getAccounts(w, r) }},
		{"GET", "/accounts/{username}", func(w http.ResponseWriter, r *http.Request) { hg.getAccount(w, r) }},
		{"GET", "/mutuals", func(w http.ResponseWriter, r *http.Request) { hg.getMutuals(w, r) }},
		{"GET", "/history", func(w http.ResponseWriter, r *http.Request) { hg.getHistory(w, r) }},
		{"GET", "/actions", func(w http.ResponseWriter, r *http.Request) { hg.getActions(w, r) }},
		{"POST", "/reconcile", func(w http.ResponseWriter, r *http.Request) { hg.postReconcile(w, r) }},
		{"POST", "/sweep", func(w http.ResponseWriter, r *http.Request) { hg.postSweep(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(apiKeyHeader)
			keyOk := false
			for _, key := range hg.cfg.Secrets.ApiKeys {
				if apiKey == key {
					keyOk = true
				}
			}
			if !keyOk {
				hg.logger.Warnf("API request with missing or invalid key: %s %s", r.Method, r.URL.Path)
				writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func getPaging(r *http.Request) (offset, limit int) {
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit
}

func accountToDto(acct *dal.Account) dto.Account {
	return dto.Account{
		Username:        acct.Username,
		FollowsMe:       acct.FollowsMe,
		IFollow:         acct.IFollow,
		FollowingStatus: acct.FollowingStatus,
		RequestTime:     acct.RequestTime,
		Blacklisted:     acct.Blacklisted,
		FollowersCount:  acct.FollowersCount,
		FollowingCount:  acct.FollowingCount,
		MutualsCount:    acct.MutualsCount,
		PostsCount:      acct.PostsCount,
		Biography:       acct.Biography,
		LastUpdated:     acct.LastUpdated,
	}
}

func (hg *apiHandlerGroup) getAccounts(w http.ResponseWriter, r *http.Request) {

	offset, limit := getPaging(r)
	accounts, total, err := hg.repo.GetAccountsPage(offset, limit)
	if err != nil {
		hg.logger.Errorf("Failed to get accounts page: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := dto.Page[dto.Account]{Total: total, Items: make([]dto.Account, 0, len(accounts))}
	for _, acct := range accounts {
		resp.Items = append(resp.Items, accountToDto(acct))
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getAccount(w http.ResponseWriter, r *http.Request) {

	username := shared.SanitizeUsername(mux.Vars(r)["username"])
	if err := shared.ValidateUsername(username); err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	acct, err := hg.repo.GetAccount(username)
	if err != nil {
		hg.logger.Errorf("Failed to get account %s: %v", username, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if acct == nil {
		writeErrorResponse(w, "404 No Such Account", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, accountToDto(acct))
}

func (hg *apiHandlerGroup) getMutuals(w http.ResponseWriter, r *http.Request) {

	mutuals, err := hg.repo.GetMutuals()
	if err != nil {
		hg.logger.Errorf("Failed to get mutuals: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, mutuals)
}

func (hg *apiHandlerGroup) getHistory(w http.ResponseWriter, r *http.Request) {

	offset, limit := getPaging(r)
	entries, total, err := hg.repo.GetHistoryPage(offset, limit)
	if err != nil {
		hg.logger.Errorf("Failed to get history page: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := dto.Page[dto.HistoryEntry]{Total: total, Items: make([]dto.HistoryEntry, 0, len(entries))}
	for _, entry := range entries {
		resp.Items = append(resp.Items, dto.HistoryEntry{
			Time:           entry.Time,
			FollowersCount: entry.FollowersCount,
			FollowingCount: entry.FollowingCount,
			NewFollowers:   entry.NewFollowers,
			LostFollowers:  entry.LostFollowers,
			NewFollowing:   entry.NewFollowing,
			UnFollowing:    entry.UnFollowing,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getActions(w http.ResponseWriter, r *http.Request) {

	offset, limit := getPaging(r)
	entries, total, err := hg.repo.GetActionsPage(offset, limit)
	if err != nil {
		hg.logger.Errorf("Failed to get actions page: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := dto.Page[dto.ActionEntry]{Total: total, Items: make([]dto.ActionEntry, 0, len(entries))}
	for _, entry := range entries {
		resp.Items = append(resp.Items, dto.ActionEntry{
			Username:   entry.Username,
			ActionType: entry.ActionType,
			Time:       entry.Time,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) postReconcile(w http.ResponseWriter, r *http.Request) {

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.ReconcileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid JSON in reconcile request: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	outcome, err := hg.reconciler.Reconcile(req.Followers, req.Following)
	if err != nil {
		hg.logger.Errorf("Reconciliation failed: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, dto.ReconcileResponse{
		FollowersCount: outcome.FollowersCount,
		FollowingCount: outcome.FollowingCount,
		MutualsCount:   outcome.MutualsCount,
		NewFollowers:   outcome.NewFollowers,
		LostFollowers:  outcome.LostFollowers,
		NewFollowing:   outcome.NewFollowing,
		UnFollowing:    outcome.UnFollowing,
	})
}

func (hg *apiHandlerGroup) postSweep(w http.ResponseWriter, r *http.Request) {

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.SweepRequest
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid JSON in sweep request: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	daysLimit := req.DaysLimit
	if daysLimit <= 0 {
		daysLimit = hg.cfg.Automation.DaysLimit
	}
	blacklisted, err := hg.sweeper.SweepExpired(daysLimit)
	if err != nil {
		hg.logger.Errorf("Expiry sweep failed: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if blacklisted == nil {
		blacklisted = make([]string, 0)
	}
	writeJsonResponse(hg.logger, w, dto.SweepResponse{Blacklisted: blacklisted})
}
