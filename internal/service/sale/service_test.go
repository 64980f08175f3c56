package sale

import (
	"context"
	"testing"

	"github.com/provipay/commission-backend-go/internal/domain/sale"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaleRepo struct {
	sales []sale.SaleRecord
}

func (f *fakeSaleRepo) Create(_ context.Context, r sale.SaleRecord) (sale.SaleRecord, error) {
	r.ID = "fake-id"
	f.sales = append(f.sales, r)
	return r, nil
}

func (f *fakeSaleRepo) BulkCreate(_ context.Context, rs []sale.SaleRecord) (int, error) {
	f.sales = append(f.sales, rs...)
	return len(rs), nil
}

func (f *fakeSaleRepo) GetByID(_ context.Context, id string) (sale.SaleRecord, error) {
	for _, r := range f.sales {
		if r.ID == id {
			return r, nil
		}
	}
	return sale.SaleRecord{}, sale.ErrSaleNotFound
}

func (f *fakeSaleRepo) List(_ context.Context, _ sale.SaleFilter) ([]sale.SaleRecord, error) {
	return f.sales, nil
}

func (f *fakeSaleRepo) Cancel(_ context.Context, id, code string) error {
	for i, r := range f.sales {
		if r.ID == id {
			if r.Cancelled() {
				return sale.ErrSaleAlreadyCancelled
			}
			f.sales[i].CancelCode = code
			return nil
		}
	}
	return sale.ErrSaleNotFound
}

func validRow(agent string) sale.CreateSaleRequest {
	return sale.CreateSaleRequest{
		AgentName:       agent,
		PolicySaleDate:  "2025-06-10",
		CommissionGroup: "Life",
		NetPremium:      decimal.NewFromInt(10000),
	}
}

func TestSaleService_Create(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(nil, repo)

	resp, err := svc.Create(context.Background(), validRow("Kari Nordmann"))
	require.NoError(t, err)
	assert.Equal(t, "Kari Nordmann", resp.AgentName)
	assert.Equal(t, "2025-06-10", resp.PolicySaleDate)
	require.Len(t, repo.sales, 1)
}

func TestSaleService_Create_InvalidDate(t *testing.T) {
	svc := NewSaleService(nil, &fakeSaleRepo{})

	req := validRow("Kari Nordmann")
	req.PolicySaleDate = "10.06.2025"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestSaleService_Import(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(nil, repo)

	resp, err := svc.Import(context.Background(), sale.ImportSalesRequest{
		Sales: []sale.CreateSaleRequest{validRow("Kari Nordmann"), validRow("Ola Hansen")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)
	assert.Len(t, repo.sales, 2)
}

func TestSaleService_Import_OneBadRowFailsBatch(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(nil, repo)

	bad := validRow("Ola Hansen")
	bad.AgentName = ""
	_, err := svc.Import(context.Background(), sale.ImportSalesRequest{
		Sales: []sale.CreateSaleRequest{validRow("Kari Nordmann"), bad},
	})
	require.Error(t, err)
	// Nothing written when any row is invalid.
	assert.Empty(t, repo.sales)
}

func TestSaleService_Import_EmptyBatch(t *testing.T) {
	svc := NewSaleService(nil, &fakeSaleRepo{})

	_, err := svc.Import(context.Background(), sale.ImportSalesRequest{})
	assert.Error(t, err)
}

func TestSaleService_Cancel(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(nil, repo)

	created, err := svc.Create(context.Background(), validRow("Kari Nordmann"))
	require.NoError(t, err)

	err = svc.Cancel(context.Background(), sale.CancelSaleRequest{ID: created.ID, CancelCode: "C1"})
	require.NoError(t, err)

	// A second cancellation is rejected, the row is not deleted.
	err = svc.Cancel(context.Background(), sale.CancelSaleRequest{ID: created.ID, CancelCode: "C2"})
	assert.ErrorIs(t, err, sale.ErrSaleAlreadyCancelled)
	assert.Len(t, repo.sales, 1)
}
