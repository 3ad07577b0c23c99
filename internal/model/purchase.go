package model

import "time"

type PurchaseStatus string

const (
	PurchaseStatusPaymentPending   PurchaseStatus = "payment_pending"
	PurchaseStatusProcessing       PurchaseStatus = "processing"
	PurchaseStatusDocumentsPending PurchaseStatus = "documents_pending"
	PurchaseStatusShipping         PurchaseStatus = "shipping"
	PurchaseStatusDelivered        PurchaseStatus = "delivered"
	PurchaseStatusCompleted        PurchaseStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusCompleted PaymentStatus = "completed"
)

type PurchaseSource string

const (
	PurchaseSourceAuction PurchaseSource = "auction"
	PurchaseSourceStock   PurchaseSource = "stock"
)

type Purchase struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement"`
	AuctionID string         `gorm:"column:auction_id;size:64;index"`
	Source    PurchaseSource `gorm:"column:source;size:16;not null"`

	// auction-sourced only
	LotNumber    string `gorm:"column:lot_number;size:32"`
	AuctionHouse string `gorm:"column:auction_house;size:64"`
	// stock-sourced only
	StockVehicleID *uint64 `gorm:"column:stock_vehicle_id;index"`

	// vehicle snapshot, immutable after creation
	VehicleMake  string  `gorm:"column:vehicle_make;size:64;not null"`
	VehicleModel string  `gorm:"column:vehicle_model;size:64;not null"`
	VehicleYear  int     `gorm:"column:vehicle_year"`
	VIN          string  `gorm:"column:vin;size:32"`
	Mileage      int     `gorm:"column:mileage"`
	Color        string  `gorm:"column:color;size:32"`
	ImageURL     *string `gorm:"column:image_url;size:512"`

	// totalAmount is locked in at creation and never recomputed
	WinningBid    int64         `gorm:"column:winning_bid;not null"`
	ShippingCost  int64         `gorm:"column:shipping_cost;not null"`
	InsuranceFee  int64         `gorm:"column:insurance_fee;not null"`
	TotalAmount   int64         `gorm:"column:total_amount;not null"`
	PaidAmount    int64         `gorm:"column:paid_amount;not null"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;size:16;not null"`

	Status PurchaseStatus `gorm:"column:status;size:32;index;not null"`

	Payments  []Payment         `gorm:"foreignKey:PurchaseID"`
	Documents []Document        `gorm:"foreignKey:PurchaseID"`
	Shipment  *Shipment         `gorm:"foreignKey:PurchaseID"`
	Workflow  *PurchaseWorkflow `gorm:"foreignKey:PurchaseID"`

	// timeline milestones, write-once per column
	PaymentReceivedAt   *time.Time `gorm:"column:payment_received_at"`
	DocumentsUploadedAt *time.Time `gorm:"column:documents_uploaded_at"`
	ShippingStartedAt   *time.Time `gorm:"column:shipping_started_at"`
	DeliveredAt         *time.Time `gorm:"column:delivered_at"`
	CompletedAt         *time.Time `gorm:"column:completed_at"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Purchase) TableName() string {
	return "purchases"
}

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodCash         PaymentMethod = "cash"
)

// Payment rows are append-only; there is no update or delete path.
type Payment struct {
	ID              uint64        `gorm:"primaryKey;autoIncrement"`
	PurchaseID      uint64        `gorm:"column:purchase_id;index;not null"`
	ReferenceID     string        `gorm:"column:reference_id;size:36;uniqueIndex;not null"`
	Amount          int64         `gorm:"column:amount;not null"`
	Method          PaymentMethod `gorm:"column:method;size:32;not null"`
	PaidAt          time.Time     `gorm:"column:paid_at;not null"`
	RecordedBy      string        `gorm:"column:recorded_by;size:128;not null"`
	ReferenceNumber string        `gorm:"column:reference_number;size:64"`
	Notes           string        `gorm:"column:notes;type:text"`
	CreatedAt       time.Time     `gorm:"autoCreateTime"`
}

func (Payment) TableName() string {
	return "payments"
}

type DocumentType string

const (
	DocumentTypeInvoice           DocumentType = "invoice"
	DocumentTypeExportCertificate DocumentType = "export_certificate"
	DocumentTypeBillOfLading      DocumentType = "bill_of_lading"
	DocumentTypeInsurance         DocumentType = "insurance"
	DocumentTypeInspection        DocumentType = "inspection"
	DocumentTypeOther             DocumentType = "other"
)

type Document struct {
	ID          uint64       `gorm:"primaryKey;autoIncrement"`
	PurchaseID  uint64       `gorm:"column:purchase_id;index;not null"`
	ReferenceID string       `gorm:"column:reference_id;size:36;uniqueIndex;not null"`
	Type        DocumentType `gorm:"column:type;size:32;not null"`
	Name        string       `gorm:"column:name;size:128;not null"`
	FileURL     string       `gorm:"column:file_url;size:512"`
	UploadedBy  string       `gorm:"column:uploaded_by;size:128;not null"`
	UploadedAt  time.Time    `gorm:"column:uploaded_at;not null"`
	CreatedAt   time.Time    `gorm:"autoCreateTime"`
}

func (Document) TableName() string {
	return "documents"
}

type ShipmentStatus string

const (
	ShipmentStatusPreparing ShipmentStatus = "preparing"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusArrived   ShipmentStatus = "arrived"
)

// Shipment carrier and tracking number are immutable once the row exists;
// status, location, vessel and ETA stay mutable.
type Shipment struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement"`
	PurchaseID     uint64         `gorm:"column:purchase_id;uniqueIndex;not null"`
	Carrier        string         `gorm:"column:carrier;size:64;not null"`
	TrackingNumber string         `gorm:"column:tracking_number;size:64;not null"`
	VesselName     string         `gorm:"column:vessel_name;size:64"`
	Status         ShipmentStatus `gorm:"column:status;size:32;not null"`
	Location       string         `gorm:"column:location;size:128"`
	ETA            *time.Time     `gorm:"column:eta"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (Shipment) TableName() string {
	return "shipments"
}
