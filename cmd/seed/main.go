package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/inteller-studio/zervtek-admin/internal/config"
	"github.com/inteller-studio/zervtek-admin/internal/db"
	"github.com/inteller-studio/zervtek-admin/internal/model"
	"github.com/inteller-studio/zervtek-admin/internal/workflow"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

const seedActor = "seed@zervtek"

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	gdb = gdb.WithContext(ctx)

	var existing int64
	if err := gdb.Model(&model.Vehicle{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("count vehicles: %w", err)
	}
	if existing > 0 && os.Getenv("FORCE_SEED") != "true" {
		log.Printf("vehicles already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	if err := seedVehicles(gdb); err != nil {
		return err
	}
	if err := seedPurchases(gdb); err != nil {
		return err
	}

	log.Println("seed completed successfully")
	return nil
}

func seedVehicles(gdb *gorm.DB) error {
	vehicles := []model.Vehicle{
		{Make: "Toyota", Model: "Land Cruiser Prado", Year: 2019, VIN: "TRJ150-0098821", Mileage: 42000, Color: "Pearl White", Grade: "4.5", Price: 3650000, Status: model.VehicleStatusAvailable},
		{Make: "Nissan", Model: "Skyline GT-R", Year: 1999, VIN: "BNR34-005613", Mileage: 88000, Color: "Bayside Blue", Grade: "4", Price: 9800000, Status: model.VehicleStatusAvailable},
		{Make: "Honda", Model: "Fit Hybrid", Year: 2020, VIN: "GP5-3301288", Mileage: 23000, Color: "Silver", Grade: "4.5", Price: 980000, Status: model.VehicleStatusAvailable},
		{Make: "Toyota", Model: "Hiace Van", Year: 2018, VIN: "TRH200-0165402", Mileage: 61000, Color: "White", Grade: "4", Price: 2150000, Status: model.VehicleStatusAvailable},
		{Make: "Mazda", Model: "Demio", Year: 2017, VIN: "DJ3FS-120745", Mileage: 54000, Color: "Soul Red", Grade: "3.5", Price: 650000, Status: model.VehicleStatusAvailable},
		{Make: "Subaru", Model: "Forester", Year: 2021, VIN: "SK9-042210", Mileage: 18000, Color: "Dark Grey", Grade: "5", Price: 2480000, Status: model.VehicleStatusAvailable},
	}
	for i := range vehicles {
		if err := gdb.Create(&vehicles[i]).Error; err != nil {
			return fmt.Errorf("create vehicle %s %s: %w", vehicles[i].Make, vehicles[i].Model, err)
		}
	}
	log.Printf("seeded %d vehicles", len(vehicles))
	return nil
}

func seedPurchases(gdb *gorm.DB) error {
	now := time.Now()

	// fresh auction win, nothing paid
	fresh := &model.Purchase{
		AuctionID:     "USS-TOKYO-48213",
		Source:        model.PurchaseSourceAuction,
		LotNumber:     "48213",
		AuctionHouse:  "USS Tokyo",
		VehicleMake:   "Toyota",
		VehicleModel:  "Alphard",
		VehicleYear:   2020,
		VIN:           "AGH30-0334120",
		Mileage:       31000,
		Color:         "Black",
		WinningBid:    3200000,
		ShippingCost:  180000,
		InsuranceFee:  45000,
		PaymentStatus: model.PaymentStatusPending,
		Status:        model.PurchaseStatusPaymentPending,
	}
	fresh.TotalAmount = workflow.Total(fresh.WinningBid, fresh.ShippingCost, fresh.InsuranceFee)
	if err := gdb.Create(fresh).Error; err != nil {
		return fmt.Errorf("create fresh purchase: %w", err)
	}

	// partially paid, waiting on documents
	partial := &model.Purchase{
		AuctionID:     "TAA-KINKI-10922",
		Source:        model.PurchaseSourceAuction,
		LotNumber:     "10922",
		AuctionHouse:  "TAA Kinki",
		VehicleMake:   "Nissan",
		VehicleModel:  "X-Trail",
		VehicleYear:   2019,
		VIN:           "T32-512089",
		Mileage:       47000,
		Color:         "White",
		WinningBid:    1850000,
		ShippingCost:  165000,
		InsuranceFee:  38000,
		PaidAmount:    1000000,
		PaymentStatus: model.PaymentStatusPartial,
		Status:        model.PurchaseStatusDocumentsPending,
	}
	partial.TotalAmount = workflow.Total(partial.WinningBid, partial.ShippingCost, partial.InsuranceFee)
	if err := gdb.Create(partial).Error; err != nil {
		return fmt.Errorf("create partial purchase: %w", err)
	}
	payment := &model.Payment{
		PurchaseID:      partial.ID,
		ReferenceID:     uuid.NewString(),
		Amount:          1000000,
		Method:          model.PaymentMethodBankTransfer,
		PaidAt:          now.AddDate(0, 0, -6),
		RecordedBy:      seedActor,
		ReferenceNumber: "MUFG-20260810-114",
	}
	if err := gdb.Create(payment).Error; err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	invoiceDoc := &model.Document{
		PurchaseID:  partial.ID,
		ReferenceID: uuid.NewString(),
		Type:        model.DocumentTypeInvoice,
		Name:        "invoice-10922.pdf",
		UploadedBy:  seedActor,
		UploadedAt:  now.AddDate(0, 0, -6),
	}
	if err := gdb.Create(invoiceDoc).Error; err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	docsAt := now.AddDate(0, 0, -6)
	if err := gdb.Model(partial).Update("documents_uploaded_at", docsAt).Error; err != nil {
		return fmt.Errorf("update timeline: %w", err)
	}

	// fully paid and on the water, with the 8-stage workflow attached
	shipping := &model.Purchase{
		AuctionID:     "JU-GIFU-70255",
		Source:        model.PurchaseSourceAuction,
		LotNumber:     "70255",
		AuctionHouse:  "JU Gifu",
		VehicleMake:   "Mitsubishi",
		VehicleModel:  "Delica D:5",
		VehicleYear:   2018,
		VIN:           "CV1W-220841",
		Mileage:       58000,
		Color:         "Green",
		WinningBid:    2100000,
		ShippingCost:  175000,
		InsuranceFee:  41000,
		PaymentStatus: model.PaymentStatusCompleted,
		Status:        model.PurchaseStatusShipping,
	}
	shipping.TotalAmount = workflow.Total(shipping.WinningBid, shipping.ShippingCost, shipping.InsuranceFee)
	shipping.PaidAmount = shipping.TotalAmount
	paidAt := now.AddDate(0, 0, -20)
	shippedAt := now.AddDate(0, 0, -4)
	shipping.PaymentReceivedAt = &paidAt
	shipping.ShippingStartedAt = &shippedAt
	if err := gdb.Create(shipping).Error; err != nil {
		return fmt.Errorf("create shipping purchase: %w", err)
	}
	if err := gdb.Create(&model.Payment{
		PurchaseID:  shipping.ID,
		ReferenceID: uuid.NewString(),
		Amount:      shipping.TotalAmount,
		Method:      model.PaymentMethodBankTransfer,
		PaidAt:      paidAt,
		RecordedBy:  seedActor,
	}).Error; err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	eta := now.AddDate(0, 0, 18)
	if err := gdb.Create(&model.Shipment{
		PurchaseID:     shipping.ID,
		Carrier:        "NYK Line",
		TrackingNumber: "NYKU4821907",
		VesselName:     "Hoegh Trapper",
		Status:         model.ShipmentStatusInTransit,
		Location:       "Port of Yokohama",
		ETA:            &eta,
	}).Error; err != nil {
		return fmt.Errorf("create shipment: %w", err)
	}

	wf := workflow.NewWorkflow(shipping.ID)
	for stage := model.StagePurchase; stage <= model.StageBooking; stage++ {
		if _, err := workflow.CompleteStage(wf, stage, seedActor, now.AddDate(0, 0, -int(model.StageBooking-stage)-4)); err != nil {
			return fmt.Errorf("complete stage %d: %w", stage, err)
		}
	}
	if err := gdb.Create(wf).Error; err != nil {
		return fmt.Errorf("create workflow: %w", err)
	}

	log.Printf("seeded 3 purchases")
	return nil
}
