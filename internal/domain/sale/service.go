package sale

import "context"

type SaleService interface {
	Create(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)
	Import(ctx context.Context, req ImportSalesRequest) (ImportSalesResponse, error)
	List(ctx context.Context, filter SaleFilter) ([]SaleResponse, error)
	Cancel(ctx context.Context, req CancelSaleRequest) error
}
