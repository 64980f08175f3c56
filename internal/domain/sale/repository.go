package sale

import "context"

type SaleRepository interface {
	Create(ctx context.Context, record SaleRecord) (SaleRecord, error)
	BulkCreate(ctx context.Context, records []SaleRecord) (int, error)
	GetByID(ctx context.Context, id string) (SaleRecord, error)
	List(ctx context.Context, filter SaleFilter) ([]SaleRecord, error)
	Cancel(ctx context.Context, id string, cancelCode string) error
}
