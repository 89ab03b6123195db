package services

import (
	portsrepo "github.com/mknzz/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mknzz/budget_tracker_app/internal/core/ports/services"
)

// NewServiceContainer wires all services from their repository dependencies.
// Rate sources are attempted in the given order; the caller is expected to
// place the fixed fallback table last.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, rateSources []portsrepo.RateSource) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:       NewLedgerService(repos.LedgerRepo),
		Reporting:    NewReportingService(repos.LedgerRepo),
		ExchangeRate: NewExchangeRateService(rateSources),
		User:         NewUserService(repos.UserRepo),
	}
}
