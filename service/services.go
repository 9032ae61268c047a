// service/services.go
package service

import (
	"github.com/dev-mohitbeniwal/metacat/audit"
	"github.com/dev-mohitbeniwal/metacat/dao"
	"github.com/dev-mohitbeniwal/metacat/metrics"
	"github.com/dev-mohitbeniwal/metacat/util"
)

type Services struct {
	Permission       *PermissionService
	Selector         ITestSuiteSelectorService
	TestSuiteDetails ITestSuiteDetailsService
	Notifications    *util.NotificationService
	Audit            audit.Service
}

// ServiceOptions are the catalog settings the services need
type ServiceOptions struct {
	PermissionLimit int
	TestSuiteLimit  int
}

func InitializeServices(
	client *dao.CatalogClient,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	drafts util.DraftStore,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	m *metrics.Metrics,
	opts ServiceOptions,
) (*Services, error) {
	permissionDAO := dao.NewPermissionDAO(client, opts.PermissionLimit)
	testSuiteDAO := dao.NewTestSuiteDAO(client)

	permissionService := NewPermissionService(ProviderDeps{
		PermissionDAO:   permissionDAO,
		NotificationSvc: notificationSvc,
		AuditService:    auditService,
		EventBus:        eventBus,
		Metrics:         m,
	})

	services := &Services{
		Permission:       permissionService,
		Selector:         NewTestSuiteSelector(testSuiteDAO, drafts, validationUtil, notificationSvc, auditService, eventBus, opts.TestSuiteLimit),
		TestSuiteDetails: NewTestSuiteDetailsService(testSuiteDAO, permissionService, validationUtil, notificationSvc, auditService, eventBus),
		Notifications:    notificationSvc,
		Audit:            auditService,
	}

	return services, nil
}
