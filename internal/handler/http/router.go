package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/provipay/commission-backend-go/internal/handler/http/middleware"
	"github.com/provipay/commission-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	commissionHandler CommissionHandler,
	saleHandler SaleHandler,
	employeeHandler EmployeeHandler,
	salaryModelHandler SalaryModelHandler,
	deductionHandler TenderDeductionHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "provipay-commission"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/commission", func(r chi.Router) {
				r.Get("/months", commissionHandler.Months)
				r.Get("/overview", commissionHandler.Overview)
				r.Get("/approvals", commissionHandler.ListApprovals)
				r.Get("/approval", commissionHandler.GetApproval)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/approve", commissionHandler.Approve)
					r.Post("/revoke", commissionHandler.Revoke)
				})
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/", saleHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", saleHandler.Create)
					r.Post("/import", saleHandler.Import)
					r.Post("/{id}/cancel", saleHandler.Cancel)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/salary-models", func(r chi.Router) {
				r.Get("/", salaryModelHandler.List)
				r.Get("/{id}", salaryModelHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", salaryModelHandler.Create)
					r.Put("/{id}", salaryModelHandler.Update)
					r.Delete("/{id}", salaryModelHandler.Delete)
				})
			})

			r.Route("/deductions", func(r chi.Router) {
				r.Get("/", deductionHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", deductionHandler.Upsert)
				})
			})
		})
	})

	return r
}
