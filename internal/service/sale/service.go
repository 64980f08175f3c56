package sale

import (
	"context"
	"time"

	"github.com/provipay/commission-backend-go/internal/domain/sale"
	"github.com/provipay/commission-backend-go/internal/pkg/database"
)

type SaleServiceImpl struct {
	db       *database.DB
	saleRepo sale.SaleRepository
}

func NewSaleService(db *database.DB, saleRepo sale.SaleRepository) sale.SaleService {
	return &SaleServiceImpl{db: db, saleRepo: saleRepo}
}

func (s *SaleServiceImpl) Create(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	created, err := s.saleRepo.Create(ctx, toRecord(req))
	if err != nil {
		return sale.SaleResponse{}, err
	}

	return mapToResponse(created), nil
}

// Import persists rows the file-import collaborator already parsed. Rows are
// validated individually; one bad row fails the whole batch before any write.
func (s *SaleServiceImpl) Import(ctx context.Context, req sale.ImportSalesRequest) (sale.ImportSalesResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.ImportSalesResponse{}, err
	}

	records := make([]sale.SaleRecord, 0, len(req.Sales))
	for _, row := range req.Sales {
		if err := row.Validate(); err != nil {
			return sale.ImportSalesResponse{}, err
		}
		records = append(records, toRecord(row))
	}

	imported, err := s.saleRepo.BulkCreate(ctx, records)
	if err != nil {
		return sale.ImportSalesResponse{}, err
	}

	return sale.ImportSalesResponse{Imported: imported}, nil
}

func (s *SaleServiceImpl) List(ctx context.Context, filter sale.SaleFilter) ([]sale.SaleResponse, error) {
	records, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]sale.SaleResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToResponse(r))
	}
	return result, nil
}

func (s *SaleServiceImpl) Cancel(ctx context.Context, req sale.CancelSaleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.saleRepo.Cancel(ctx, req.ID, req.CancelCode)
}

func toRecord(req sale.CreateSaleRequest) sale.SaleRecord {
	// Validate already checked the date.
	saleDate, _ := time.Parse("2006-01-02", req.PolicySaleDate)

	return sale.SaleRecord{
		AgentID:         req.AgentID,
		AgentName:       req.AgentName,
		PolicySaleDate:  saleDate,
		CommissionGroup: req.CommissionGroup,
		NetPremium:      req.NetPremium,
		CancelCode:      req.CancelCode,
	}
}

func mapToResponse(r sale.SaleRecord) sale.SaleResponse {
	return sale.SaleResponse{
		ID:              r.ID,
		AgentID:         r.AgentID,
		AgentName:       r.AgentName,
		PolicySaleDate:  r.PolicySaleDate.Format("2006-01-02"),
		CommissionGroup: r.CommissionGroup,
		NetPremium:      r.NetPremium,
		CancelCode:      r.CancelCode,
	}
}
