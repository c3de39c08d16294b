package services

import (
	portsrepo "github.com/SscSPs/crm_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Options apply to every service.
func NewServiceContainer(repos portsrepo.RepositoryProvider, opts ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize workplace service first since other services depend on it
	container.Workplace = NewWorkplaceService(repos.WorkplaceRepo, opts...)

	shared := append([]ServiceOption{WithWorkplaceAuthorizer(container.Workplace)}, opts...)

	container.Sale = NewSaleService(repos.SaleRepo, shared...)
	container.PurchaseOrder = NewPurchaseOrderService(repos.PurchaseOrderRepo, shared...)
	container.Deal = NewDealService(repos.DealRepo, shared...)
	container.Pipeline = NewPipelineService(repos.PipelineRepo, container.Workplace, shared...)

	return container
}
