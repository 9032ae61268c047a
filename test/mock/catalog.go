// test/mock/catalog.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/metacat/model"
)

// MockPermissionDAO is a mock implementation of dao.IPermissionDAO
type MockPermissionDAO struct {
	mock.Mock
}

func (m *MockPermissionDAO) GetLoggedInUserPermissions(ctx context.Context) ([]model.ResourcePermission, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]model.ResourcePermission)
	return records, args.Error(1)
}

func (m *MockPermissionDAO) GetEntityPermissionByID(ctx context.Context, resource model.ResourceEntity, entityID string) (*model.ResourcePermission, error) {
	args := m.Called(ctx, resource, entityID)
	rp, _ := args.Get(0).(*model.ResourcePermission)
	return rp, args.Error(1)
}

func (m *MockPermissionDAO) GetResourcePermission(ctx context.Context, resource model.ResourceEntity) (*model.ResourcePermission, error) {
	args := m.Called(ctx, resource)
	rp, _ := args.Get(0).(*model.ResourcePermission)
	return rp, args.Error(1)
}

// MockTestSuiteDAO is a mock implementation of dao.ITestSuiteDAO
type MockTestSuiteDAO struct {
	mock.Mock
}

func (m *MockTestSuiteDAO) ListTestSuites(ctx context.Context, limit int) ([]model.TestSuite, error) {
	args := m.Called(ctx, limit)
	suites, _ := args.Get(0).([]model.TestSuite)
	return suites, args.Error(1)
}

func (m *MockTestSuiteDAO) GetTestSuiteByName(ctx context.Context, fqn string) (*model.TestSuite, error) {
	args := m.Called(ctx, fqn)
	suite, _ := args.Get(0).(*model.TestSuite)
	return suite, args.Error(1)
}

func (m *MockTestSuiteDAO) PatchTestSuite(ctx context.Context, id string, ops []model.JSONPatchOperation) (*model.TestSuite, error) {
	args := m.Called(ctx, id, ops)
	suite, _ := args.Get(0).(*model.TestSuite)
	return suite, args.Error(1)
}

func (m *MockTestSuiteDAO) DeleteTestSuite(ctx context.Context, id string, hardDelete bool) error {
	args := m.Called(ctx, id, hardDelete)
	return args.Error(0)
}
