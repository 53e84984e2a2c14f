package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ephemeralci/burnin/internal/config"
	"github.com/ephemeralci/burnin/internal/platform/cloud"
	btesting "github.com/ephemeralci/burnin/internal/testing"
)

func swapCleanupDeps(t *testing.T, cloudMock *btesting.MockScopeManager) func() {
	t.Helper()
	origCI := loadCIContext
	origCloud := newCloudClient
	loadCIContext = func() (*config.CIContext, error) {
		return &config.CIContext{Token: "test-token"}, nil
	}
	newCloudClient = func(_ string) cloud.ScopeManager { return cloudMock }
	return func() {
		loadCIContext = origCI
		newCloudClient = origCloud
	}
}

func TestCleanup_ScopeSelectorUsesDeleteScope(t *testing.T) {
	cloudMock := &btesting.MockScopeManager{}
	restore := swapCleanupDeps(t, cloudMock)
	defer restore()

	cloudMock.On("DeleteScope", mock.Anything, "burnin-dev-leaked", true).Return(nil)

	err := Cleanup(context.Background(), CleanupOptions{ScopeID: "burnin-dev-leaked", Wait: true})

	require.NoError(t, err)
	cloudMock.AssertExpectations(t)
	cloudMock.AssertNotCalled(t, "CleanupByLabel", mock.Anything, mock.Anything)
}

func TestCleanup_RunIDSelectorUsesLabelCleanup(t *testing.T) {
	cloudMock := &btesting.MockScopeManager{}
	restore := swapCleanupDeps(t, cloudMock)
	defer restore()

	cloudMock.On("CleanupByLabel", mock.Anything, map[string]string{"burnin.io/run-id": "12345"}).Return(nil)

	err := Cleanup(context.Background(), CleanupOptions{RunID: "12345"})

	require.NoError(t, err)
	cloudMock.AssertExpectations(t)
}

func TestCleanup_ExtraLabelsCombineWithScope(t *testing.T) {
	cloudMock := &btesting.MockScopeManager{}
	restore := swapCleanupDeps(t, cloudMock)
	defer restore()

	cloudMock.On("CleanupByLabel", mock.Anything, map[string]string{
		"burnin.io/scope":       "burnin-dev-leaked",
		"burnin.io/environment": "staging",
	}).Return(nil)

	err := Cleanup(context.Background(), CleanupOptions{
		ScopeID: "burnin-dev-leaked",
		Labels:  []string{"burnin.io/environment=staging"},
	})

	require.NoError(t, err)
	cloudMock.AssertExpectations(t)
	cloudMock.AssertNotCalled(t, "DeleteScope", mock.Anything, mock.Anything, mock.Anything)
}

func TestCleanup_RequiresSelector(t *testing.T) {
	restore := swapCleanupDeps(t, &btesting.MockScopeManager{})
	defer restore()

	err := Cleanup(context.Background(), CleanupOptions{})
	require.Error(t, err)
}

func TestCleanup_RejectsMalformedLabel(t *testing.T) {
	restore := swapCleanupDeps(t, &btesting.MockScopeManager{})
	defer restore()

	err := Cleanup(context.Background(), CleanupOptions{Labels: []string{"not-a-pair"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid label")
}

func TestCleanup_RequiresToken(t *testing.T) {
	restore := swapCleanupDeps(t, &btesting.MockScopeManager{})
	defer restore()
	loadCIContext = func() (*config.CIContext, error) {
		return &config.CIContext{}, nil
	}

	err := Cleanup(context.Background(), CleanupOptions{ScopeID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BURNIN_TOKEN")
}
