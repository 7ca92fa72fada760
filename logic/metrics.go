package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gramkeeper/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks gramkeeper/logic IMetrics

type IMetrics interface {
	StartReconcile() IRunObserver
	StartSweep() IRunObserver
	TotalFollowers(count int)
	TotalFollowing(count int)
	TotalMutuals(count int)
	NewFollowers(count int)
	LostFollowers(count int)
	RequestsExpired(count int)
	FollowSent()
	UnfollowSent()
	ProfileViewed()
	ServiceStarted()
}

type IRunObserver interface {
	Finish()
}

type metrics struct {
	cfg             *shared.Config
	reconcileRuns   prometheus.Histogram
	sweepRuns       prometheus.Histogram
	totalFollowers  prometheus.Gauge
	totalFollowing  prometheus.Gauge
	totalMutuals    prometheus.Gauge
	newFollowers    prometheus.Counter
	lostFollowers   prometheus.Counter
	requestsExpired prometheus.Counter
	followsSent     prometheus.Counter
	unfollowsSent   prometheus.Counter
	profilesViewed  prometheus.Counter
	serviceStarted  prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.reconcileRuns = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "reconcile_run_duration",
		Help: "Duration in seconds of reconciliation runs.",
	})
	prometheus.Register(res.reconcileRuns)

	res.sweepRuns = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "sweep_run_duration",
		Help: "Duration in seconds of expiry sweeps.",
	})
	prometheus.Register(res.sweepRuns)

	res.totalFollowers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_follower_count",
		Help: "Follower count at the last reconciliation",
	})
	prometheus.Register(res.totalFollowers)

	res.totalFollowing = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_following_count",
		Help: "Following count at the last reconciliation",
	})
	prometheus.Register(res.totalFollowing)

	res.totalMutuals = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_mutual_count",
		Help: "Mutual count at the last reconciliation",
	})
	prometheus.Register(res.totalMutuals)

	res.newFollowers = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "new_followers",
		Help: "Number of new followers seen",
	})
	prometheus.Register(res.newFollowers)

	res.lostFollowers = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lost_followers",
		Help: "Number of followers lost",
	})
	prometheus.Register(res.lostFollowers)

	res.requestsExpired = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "requests_expired",
		Help: "Number of follow requests expired and blacklisted",
	})
	prometheus.Register(res.requestsExpired)

	res.followsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "follows_sent",
		Help: "Number of follow requests sent",
	})
	prometheus.Register(res.followsSent)

	res.unfollowsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "unfollows_sent",
		Help: "Number of unfollows performed",
	})
	prometheus.Register(res.unfollowsSent)

	res.profilesViewed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "profiles_viewed",
		Help: "Number of profile visits",
	})
	prometheus.Register(res.profilesViewed)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type runObserver struct {
	start time.Time
	hg    prometheus.Histogram
}

func (ro *runObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hg.Observe(elapsed)
}

func (m *metrics) StartReconcile() IRunObserver {
	return &runObserver{time.Now(), m.reconcileRuns}
}

func (m *metrics) StartSweep() IRunObserver {
	return &runObserver{time.Now(), m.sweepRuns}
}

func (m *metrics) TotalFollowers(count int) {
	m.totalFollowers.Set(float64(count))
}

func (m *metrics) TotalFollowing(count int) {
	m.totalFollowing.Set(float64(count))
}

func (m *metrics) TotalMutuals(count int) {
	m.totalMutuals.Set(float64(count))
}

func (m *metrics) NewFollowers(count int) {
	m.newFollowers.Add(float64(count))
}

func (m *metrics) LostFollowers(count int) {
	m.lostFollowers.Add(float64(count))
}

func (m *metrics) RequestsExpired(count int) {
	m.requestsExpired.Add(float64(count))
}

func (m *metrics) FollowSent() {
	m.followsSent.Add(1)
}

func (m *metrics) UnfollowSent() {
	m.unfollowsSent.Add(1)
}

func (m *metrics) ProfileViewed() {
	m.profilesViewed.Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
