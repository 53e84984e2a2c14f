package testing

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockScopeManager is a testify mock of the cloud.ScopeManager interface.
type MockScopeManager struct {
	mock.Mock
}

func (m *MockScopeManager) CreateScope(ctx context.Context, name, location string, tags map[string]string) (string, error) {
	args := m.Called(ctx, name, location, tags)
	return args.String(0), args.Error(1)
}

func (m *MockScopeManager) ScopeExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockScopeManager) CountResources(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *MockScopeManager) DeleteScope(ctx context.Context, name string, wait bool) error {
	args := m.Called(ctx, name, wait)
	return args.Error(0)
}

func (m *MockScopeManager) CleanupByLabel(ctx context.Context, labelSelector map[string]string) error {
	args := m.Called(ctx, labelSelector)
	return args.Error(0)
}

// MockToolDriver is a testify mock of the projecttool.Driver interface.
type MockToolDriver struct {
	mock.Mock
}

func (m *MockToolDriver) NewEnv(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockToolDriver) SelectEnv(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockToolDriver) SetVar(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockToolDriver) Provision(ctx context.Context, noPrompt bool) error {
	args := m.Called(ctx, noPrompt)
	return args.Error(0)
}

func (m *MockToolDriver) Down(ctx context.Context, purge, force bool) error {
	args := m.Called(ctx, purge, force)
	return args.Error(0)
}

func (m *MockToolDriver) SetConfigFlag(ctx context.Context, flag string, on bool) error {
	args := m.Called(ctx, flag, on)
	return args.Error(0)
}

// MockTemplateEngine is a testify mock of the template.Engine interface.
type MockTemplateEngine struct {
	mock.Mock
}

func (m *MockTemplateEngine) Build(ctx context.Context, templatePath string) error {
	args := m.Called(ctx, templatePath)
	return args.Error(0)
}

func (m *MockTemplateEngine) ValidateDeployment(ctx context.Context, scopeName, deploymentID, templatePath, paramsPath string) error {
	args := m.Called(ctx, scopeName, deploymentID, templatePath, paramsPath)
	return args.Error(0)
}

func (m *MockTemplateEngine) CreateDeployment(ctx context.Context, scopeName, deploymentID, templatePath, paramsPath string) error {
	args := m.Called(ctx, scopeName, deploymentID, templatePath, paramsPath)
	return args.Error(0)
}
