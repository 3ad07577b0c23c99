package server

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/inteller-studio/zervtek-admin/internal/ai"
	"github.com/inteller-studio/zervtek-admin/internal/config"
	"github.com/inteller-studio/zervtek-admin/internal/handler"
	appmw "github.com/inteller-studio/zervtek-admin/internal/middleware"
	"github.com/inteller-studio/zervtek-admin/internal/repository"
	"github.com/inteller-studio/zervtek-admin/internal/service"
	"github.com/inteller-studio/zervtek-admin/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(ctx context.Context, db *gorm.DB, cfg *config.Config, sha, buildTime string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			if strings.HasSuffix(u.Hostname(), "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	vehicleRepo := repository.NewVehicleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifySvc := service.NewNotificationService(notificationRepo)

	var uploader service.DocumentUploader
	if cfg.StorageBucket != "" {
		up, err := storage.NewUploader(ctx, cfg.StorageBucket)
		if err != nil {
			log.Printf("storage uploader init failed; file uploads disabled: %v", err)
		} else {
			uploader = up
		}
	}

	vehicleSvc := service.NewVehicleService(vehicleRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, vehicleRepo, notifySvc, uploader)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, purchaseRepo)

	vehicleHandler := handler.NewVehicleHandler(vehicleSvc)
	purchaseHandler := handler.NewPurchaseHandler(purchaseSvc, notifySvc)
	invoiceHandler := handler.NewInvoiceHandler(invoiceSvc)
	notificationHandler := handler.NewNotificationHandler(notifySvc)
	sheetHandler := handler.NewSheetHandler(purchaseSvc, ai.NewSheetGradeClient(cfg.GeminiSheetModel, nil))

	authMw, err := appmw.NewAuthMiddleware(ctx, cfg.FirebaseProjectID)
	if err != nil {
		e.Logger.Fatalf("failed to init firebase auth: %v", err)
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})

	api := e.Group("/api")
	if authMw != nil {
		api.Use(authMw.RequireAuth)
	}

	api.GET("/vehicles", vehicleHandler.List)
	api.GET("/vehicles/:id", vehicleHandler.Get)
	api.POST("/vehicles", vehicleHandler.Create)

	api.POST("/purchases", purchaseHandler.Create)
	api.GET("/purchases", purchaseHandler.List)
	api.GET("/purchases/:id", purchaseHandler.Get)
	api.GET("/purchases/:id/progress", purchaseHandler.Progress)
	api.POST("/purchases/:id/payments", purchaseHandler.RecordPayment)
	api.POST("/purchases/:id/documents", purchaseHandler.UploadDocuments)
	api.DELETE("/purchases/:id/documents/:documentId", purchaseHandler.DeleteDocument)
	api.PUT("/purchases/:id/shipping", purchaseHandler.UpdateShipping)
	api.POST("/purchases/:id/deliver", purchaseHandler.MarkDelivered)
	api.POST("/purchases/:id/complete", purchaseHandler.MarkCompleted)
	api.POST("/purchases/:id/workflow/stages/:stage/complete", purchaseHandler.CompleteWorkflowStage)
	api.PUT("/purchases/:id/workflow", purchaseHandler.UpdateWorkflow)
	api.POST("/purchases/:id/invoice", invoiceHandler.Generate)
	api.GET("/purchases/:id/invoices", invoiceHandler.ListByPurchase)
	api.POST("/purchases/:id/sheet-grade", sheetHandler.EstimateGrade)

	api.GET("/invoices/:id", invoiceHandler.Get)

	api.GET("/notifications", notificationHandler.List)
	api.POST("/notifications/read", notificationHandler.MarkAllRead)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
