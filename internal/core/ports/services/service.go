package services

// ServiceContainer holds all service facades needed by the HTTP layer.
// It keeps route registration signatures short and makes wiring explicit.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Ledger    LedgerSvcFacade
	Reporting ReportingSvcFacade
}
