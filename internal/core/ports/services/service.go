package services

// ServiceContainer bundles the application services handed to the HTTP
// layer at startup.
type ServiceContainer struct {
	Account   AccountService
	Journal   JournalService
	Reporting ReportingService
}
