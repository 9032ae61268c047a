// controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/metacat/service"

type Controllers struct {
	Permission        *PermissionController
	TestSuiteSelector *TestSuiteSelectorController
	TestSuiteDetails  *TestSuiteDetailsController
	Session           *SessionController
	Audit             *AuditController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Permission:        NewPermissionController(services.Permission),
		TestSuiteSelector: NewTestSuiteSelectorController(services.Selector, nil),
		TestSuiteDetails:  NewTestSuiteDetailsController(services.TestSuiteDetails),
		Session:           NewSessionController(services.Permission, services.Notifications),
		Audit:             NewAuditController(services.Audit),
	}
}
