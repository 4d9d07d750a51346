package services

import (
	"github.com/SscSPs/fx_desk/internal/core/ports"
	portssvc "github.com/SscSPs/fx_desk/internal/core/ports/services"
)

// Container holds all the services and manages their dependencies
type Container struct {
	Rates      portssvc.RateProviderSvc
	Calculator portssvc.CalculatorSvc
	Leads      portssvc.LeadSvc
}

// NewContainer wires the services around the given adapters.
func NewContainer(localCurrency string, source ports.RateSource, notifier ports.LeadNotifier) *Container {
	return &Container{
		Rates:      NewRateProvider(source, WithLocalCurrency(localCurrency)),
		Calculator: NewCalculatorService(localCurrency),
		Leads:      NewLeadService(notifier),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RateProviderSvc = (*RateProvider)(nil)
	_ portssvc.CalculatorSvc   = (*CalculatorService)(nil)
	_ portssvc.LeadSvc         = (*LeadService)(nil)
)
