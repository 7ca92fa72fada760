package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"gramkeeper/shared"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks gramkeeper/dal IRepo

type IRepo interface {
	InitUpdateDb()
	Close() error
	UpsertRelationship(username string, followsMe, iFollow bool) error
	UpsertFollowingStatuses(pairs []StatusPair) error
	GetAllAccounts() ([]*Account, error)
	GetAccount(username string) (*Account, error)
	GetAccountsPage(offset, limit int) ([]*Account, int, error)
	GetMutuals() ([]string, error)
	SetRequestTimeAndBlacklist(username string, requestTime *time.Time, blacklisted bool) error
	UpdateProfileSnapshot(username string, snap *ProfileSnapshot) error
	ApplyReconciliation(groups *RelationshipGroups, entry *HistoryEntry) error
	GetAccountsWithOpenRequest() ([]*Account, error)
	ResolveRequests(clearOnly, blacklist []string) error
	GetFollowCandidates(minMutuals int) ([]*Account, error)
	GetProfilesToRefresh(cutoff time.Time) ([]*Account, error)
	AddAction(entry *ActionEntry) error
	GetActionsPage(offset, limit int) ([]*ActionEntry, int, error)
	GetHistoryPage(offset, limit int) ([]*HistoryEntry, int, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	if err = os.MkdirAll(cfg.DbDir, 0755); err != nil {
		logger.Errorf("Failed to create DB directory: %s: %v", cfg.DbDir, err)
		panic(err)
	}

	dbFile := filepath.Join(cfg.DbDir, shared.DbFileName(cfg.Owner))

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, dbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", dbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) Close() error {
	repo.muDb.Lock()
	defer repo.muDb.Unlock()
	return repo.db.Close()
}

const upsertRelationshipSql = `INSERT INTO accounts (username, follows_me, i_follow)
	VALUES (?, ?, ?)
	ON CONFLICT(username)
	DO UPDATE SET follows_me=excluded.follows_me, i_follow=excluded.i_follow`

func (repo *Repo) UpsertRelationship(username string, followsMe, iFollow bool) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(upsertRelationshipSql, username, followsMe, iFollow)
	return storageError("upsert relationship", username, err)
}

func (repo *Repo) UpsertFollowingStatuses(pairs []StatusPair) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return storageError("upsert following statuses", "", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`INSERT INTO accounts (username, following_status)
		VALUES (?, ?)
		ON CONFLICT(username)
		DO UPDATE SET following_status=excluded.following_status`)
	if err != nil {
		return storageError("upsert following statuses", "", err)
	}
	defer stmt.Close()
	for _, pair := range pairs {
		if _, err = stmt.Exec(pair.Username, pair.Status); err != nil {
			return storageError("upsert following status", pair.Username, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return storageError("upsert following statuses", "", err)
	}
	committed = true
	return nil
}

const accountColumns = `id, username, follows_me, i_follow, IFNULL(following_status, ''),
	request_time, blacklisted, followers_count, following_count, mutuals_count,
	posts_count, biography, last_updated`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*Account, error) {
	var res Account
	var requestTime, lastUpdated sql.NullTime
	err := row.Scan(&res.Id, &res.Username, &res.FollowsMe, &res.IFollow, &res.FollowingStatus,
		&requestTime, &res.Blacklisted, &res.FollowersCount, &res.FollowingCount,
		&res.MutualsCount, &res.PostsCount, &res.Biography, &lastUpdated)
	if err != nil {
		return nil, err
	}
	// Databases written by earlier tooling stored '' instead of NULL; the
	// driver surfaces that as a zero time, which means "no value" here too.
	if requestTime.Valid && !requestTime.Time.IsZero() {
		res.RequestTime = &requestTime.Time
	}
	if lastUpdated.Valid && !lastUpdated.Time.IsZero() {
		res.LastUpdated = &lastUpdated.Time
	}
	return &res, nil
}

func readAccounts(rows *sql.Rows) ([]*Account, error) {
	res := make([]*Account, 0)
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) queryAccounts(op, where string, args ...any) ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT ` + accountColumns + ` FROM accounts ` + where
	rows, err := repo.db.Query(query, args...)
	if err != nil {
		return nil, storageError(op, "", err)
	}
	defer rows.Close()
	res, err := readAccounts(rows)
	if err != nil {
		return nil, storageError(op, "", err)
	}
	return res, nil
}

func (repo *Repo) GetAllAccounts() ([]*Account, error) {
	return repo.queryAccounts("get all accounts", "")
}

func (repo *Repo) GetAccount(username string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+accountColumns+` FROM accounts WHERE username=?`, username)
	res, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageError("get account", username, err)
	}
	return res, nil
}

func (repo *Repo) GetAccountsPage(offset, limit int) ([]*Account, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var total int
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts`)
	if err := row.Scan(&total); err != nil {
		return nil, 0, storageError("get accounts page", "", err)
	}

	rows, err := repo.db.Query(`SELECT `+accountColumns+` FROM accounts ORDER BY id DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, 0, storageError("get accounts page", "", err)
	}
	defer rows.Close()
	res, err := readAccounts(rows)
	if err != nil {
		return nil, 0, storageError("get accounts page", "", err)
	}
	return res, total, nil
}

func (repo *Repo) GetMutuals() ([]string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT username FROM accounts WHERE follows_me=1 AND i_follow=1`)
	if err != nil {
		return nil, storageError("get mutuals", "", err)
	}
	defer rows.Close()
	res := make([]string, 0)
	for rows.Next() {
		var username string
		if err = rows.Scan(&username); err != nil {
			return nil, storageError("get mutuals", "", err)
		}
		res = append(res, username)
	}
	if err = rows.Err(); err != nil {
		return nil, storageError("get mutuals", "", err)
	}
	return res, nil
}

func (repo *Repo) SetRequestTimeAndBlacklist(username string, requestTime *time.Time, blacklisted bool) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts SET request_time=?, blacklisted=? WHERE username=?`,
		requestTime, blacklisted, username)
	return storageError("set request time", username, err)
}

func (repo *Repo) UpdateProfileSnapshot(username string, snap *ProfileSnapshot) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO accounts
		(username, posts_count, followers_count, following_count, mutuals_count, biography, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(username)
		DO UPDATE SET posts_count=excluded.posts_count, followers_count=excluded.followers_count,
			following_count=excluded.following_count, mutuals_count=excluded.mutuals_count,
			biography=excluded.biography, last_updated=excluded.last_updated`,
		username, snap.PostsCount, snap.FollowersCount, snap.FollowingCount,
		snap.MutualsCount, snap.Biography, snap.LastUpdated)
	return storageError("update profile snapshot", username, err)
}

// ApplyReconciliation commits one reconciliation run: the relationship flags of
// all four groups plus the history row, in a single transaction. On any failure
// the store is left exactly as it was.
func (repo *Repo) ApplyReconciliation(groups *RelationshipGroups, entry *HistoryEntry) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return storageError("apply reconciliation", "", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(upsertRelationshipSql)
	if err != nil {
		return storageError("apply reconciliation", "", err)
	}
	defer stmt.Close()

	apply := func(usernames []string, followsMe, iFollow bool) error {
		for _, username := range usernames {
			if _, err := stmt.Exec(username, followsMe, iFollow); err != nil {
				return storageError("apply reconciliation", username, err)
			}
		}
		return nil
	}
	if err = apply(groups.Mutual, true, true); err != nil {
		return err
	}
	if err = apply(groups.OnlyIFollow, false, true); err != nil {
		return err
	}
	if err = apply(groups.OnlyTheyFollow, true, false); err != nil {
		return err
	}
	if err = apply(groups.Neither, false, false); err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT INTO history
		(time, followers_count, following_count, new_followers, lost_followers, new_following, un_following)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.Time, entry.FollowersCount, entry.FollowingCount,
		entry.NewFollowers, entry.LostFollowers, entry.NewFollowing, entry.UnFollowing)
	if err != nil {
		return storageError("append history", "", err)
	}

	if err = tx.Commit(); err != nil {
		return storageError("apply reconciliation", "", err)
	}
	committed = true
	return nil
}

func (repo *Repo) GetAccountsWithOpenRequest() ([]*Account, error) {
	// Databases written by earlier versions stored '' for "no request"
	return repo.queryAccounts("get open requests",
		`WHERE request_time IS NOT NULL AND request_time <> ''`)
}

// ResolveRequests commits one expiry sweep: clears the outstanding request on
// every listed account, and additionally blacklists the second list. One
// transaction; a failed sweep changes nothing.
func (repo *Repo) ResolveRequests(clearOnly, blacklist []string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return storageError("resolve requests", "", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, username := range clearOnly {
		if _, err = tx.Exec(`UPDATE accounts SET request_time=NULL WHERE username=?`, username); err != nil {
			return storageError("resolve requests", username, err)
		}
	}
	for _, username := range blacklist {
		if _, err = tx.Exec(`UPDATE accounts SET request_time=NULL, blacklisted=1 WHERE username=?`, username); err != nil {
			return storageError("resolve requests", username, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return storageError("resolve requests", "", err)
	}
	committed = true
	return nil
}

func (repo *Repo) GetFollowCandidates(minMutuals int) ([]*Account, error) {
	return repo.queryAccounts("get follow candidates",
		`WHERE i_follow=0 AND follows_me=0 AND mutuals_count>? AND blacklisted=0
			AND (request_time IS NULL OR request_time='')`, minMutuals)
}

func (repo *Repo) GetProfilesToRefresh(cutoff time.Time) ([]*Account, error) {
	return repo.queryAccounts("get profiles to refresh",
		`WHERE i_follow=0 AND follows_me=0
			AND (last_updated IS NULL OR last_updated='' OR last_updated<?)`, cutoff)
}

func (repo *Repo) AddAction(entry *ActionEntry) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO actions (username, action_type, time) VALUES (?, ?, ?)`,
		entry.Username, entry.ActionType, entry.Time)
	return storageError("add action", entry.Username, err)
}

func (repo *Repo) GetActionsPage(offset, limit int) ([]*ActionEntry, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var total int
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM actions`)
	if err := row.Scan(&total); err != nil {
		return nil, 0, storageError("get actions page", "", err)
	}

	rows, err := repo.db.Query(`SELECT id, username, action_type, time FROM actions
		ORDER BY id DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, storageError("get actions page", "", err)
	}
	defer rows.Close()
	res := make([]*ActionEntry, 0)
	for rows.Next() {
		entry := ActionEntry{}
		if err = rows.Scan(&entry.Id, &entry.Username, &entry.ActionType, &entry.Time); err != nil {
			return nil, 0, storageError("get actions page", "", err)
		}
		res = append(res, &entry)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, storageError("get actions page", "", err)
	}
	return res, total, nil
}

func (repo *Repo) GetHistoryPage(offset, limit int) ([]*HistoryEntry, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var total int
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM history`)
	if err := row.Scan(&total); err != nil {
		return nil, 0, storageError("get history page", "", err)
	}

	rows, err := repo.db.Query(`SELECT id, time, followers_count, following_count,
		new_followers, lost_followers, new_following, un_following
		FROM history ORDER BY id DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, storageError("get history page", "", err)
	}
	defer rows.Close()
	res := make([]*HistoryEntry, 0)
	for rows.Next() {
		entry := HistoryEntry{}
		err = rows.Scan(&entry.Id, &entry.Time, &entry.FollowersCount, &entry.FollowingCount,
			&entry.NewFollowers, &entry.LostFollowers, &entry.NewFollowing, &entry.UnFollowing)
		if err != nil {
			return nil, 0, storageError("get history page", "", err)
		}
		res = append(res, &entry)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, storageError("get history page", "", err)
	}
	return res, total, nil
}
