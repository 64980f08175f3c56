package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/provipay/commission-backend-go/internal/config"
	"github.com/provipay/commission-backend-go/internal/domain/commission"
	appHTTP "github.com/provipay/commission-backend-go/internal/handler/http"
	"github.com/provipay/commission-backend-go/internal/pkg/database"
	"github.com/provipay/commission-backend-go/internal/pkg/jwt"
	"github.com/provipay/commission-backend-go/internal/repository/postgresql"
	commissionService "github.com/provipay/commission-backend-go/internal/service/commission"
	deductionService "github.com/provipay/commission-backend-go/internal/service/deduction"
	employeeService "github.com/provipay/commission-backend-go/internal/service/employee"
	salaryModelService "github.com/provipay/commission-backend-go/internal/service/salarymodel"
	saleService "github.com/provipay/commission-backend-go/internal/service/sale"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "provipay-commission"),
	)

	saleRepo := postgresql.NewSaleRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryModelRepo := postgresql.NewSalaryModelRepository(db)
	deductionRepo := postgresql.NewTenderDeductionRepository(db)
	approvalRepo := postgresql.NewApprovalRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	policy := commission.Policy{
		DefaultSalaryModelID: cfg.Commission.DefaultSalaryModelID,
		UnknownOfficeLabel:   cfg.Commission.UnknownOfficeLabel,
		TenureMonths:         cfg.Commission.TenureMonths,
		TenureDeductionRate:  cfg.Commission.TenureDeductionRate,
	}

	saleSvc := saleService.NewSaleService(db, saleRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	salaryModelSvc := salaryModelService.NewSalaryModelService(db, salaryModelRepo)
	deductionSvc := deductionService.NewTenderDeductionService(db, deductionRepo)
	commissionSvc := commissionService.NewCommissionService(
		db,
		saleRepo,
		employeeRepo,
		salaryModelRepo,
		deductionRepo,
		approvalRepo,
		policy,
		logger,
	)

	commissionHandler := appHTTP.NewCommissionHandler(commissionSvc)
	saleHandler := appHTTP.NewSaleHandler(saleSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	salaryModelHandler := appHTTP.NewSalaryModelHandler(salaryModelSvc)
	deductionHandler := appHTTP.NewTenderDeductionHandler(deductionSvc)

	router := appHTTP.NewRouter(
		jwtService,
		commissionHandler,
		saleHandler,
		employeeHandler,
		salaryModelHandler,
		deductionHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
