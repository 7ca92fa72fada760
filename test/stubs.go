package test

import (
	"go.uber.org/mock/gomock"
	"gramkeeper/test/mocks"
)

// The trailing Any absorbs the variadic args; a lone Any only matches
// calls that pass none.
func setupDummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

// dummyObserver satisfies IRunObserver for mocked StartReconcile/StartSweep.
type dummyObserver struct{}

func (dummyObserver) Finish() {}

func setupDummyMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().StartReconcile().Return(dummyObserver{}).AnyTimes()
	mockMetrics.EXPECT().StartSweep().Return(dummyObserver{}).AnyTimes()
	mockMetrics.EXPECT().TotalFollowers(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().TotalFollowing(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().TotalMutuals(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().NewFollowers(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().LostFollowers(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().RequestsExpired(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().FollowSent().AnyTimes()
	mockMetrics.EXPECT().UnfollowSent().AnyTimes()
	mockMetrics.EXPECT().ProfileViewed().AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
}
