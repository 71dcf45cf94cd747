package utils

import (
	"testing"

	"github.com/MarufHossain14/Monte-Carlo-Estimator/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewProgressTracker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := logger.NewMockLogger(ctrl)
	tracker := NewProgressTracker(100, mockLogger)
	assert.Equal(t, uint64(100), tracker.target)
	assert.Equal(t, uint64(10), tracker.interval)
}

func TestProgressTracker_ReportsOncePerDecile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := logger.NewMockLogger(ctrl)
	mockLogger.EXPECT().
		Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(10)

	tracker := NewProgressTracker(100, mockLogger)
	var inside uint64
	for i := uint64(1); i <= 100; i++ {
		if i%4 != 0 {
			inside++
		}
		tracker.PrintProgress(i, inside)
	}
}

func TestProgressTracker_SilentForTinyRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// runs shorter than the report fraction produce no output at all
	mockLogger := logger.NewMockLogger(ctrl)
	tracker := NewProgressTracker(reportFraction-1, mockLogger)
	for i := uint64(1); i < reportFraction; i++ {
		tracker.PrintProgress(i, i)
	}
}

func TestProgressTracker_SilentBetweenBoundaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := logger.NewMockLogger(ctrl)
	mockLogger.EXPECT().
		Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)

	tracker := NewProgressTracker(1000, mockLogger)
	for i := uint64(1); i <= 150; i++ {
		tracker.PrintProgress(i, i/2)
	}
}
