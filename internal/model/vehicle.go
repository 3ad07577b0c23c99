package model

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusReserved  VehicleStatus = "reserved"
	VehicleStatusSold      VehicleStatus = "sold"
)

// Vehicle is a stock unit available for direct purchase.
type Vehicle struct {
	ID       uint64        `gorm:"primaryKey;autoIncrement"`
	Make     string        `gorm:"column:make;size:64;not null"`
	Model    string        `gorm:"column:model;size:64;not null"`
	Year     int           `gorm:"column:year;not null"`
	VIN      string        `gorm:"column:vin;size:32;uniqueIndex"`
	Mileage  int           `gorm:"column:mileage"`
	Color    string        `gorm:"column:color;size:32"`
	Grade    string        `gorm:"column:grade;size:8"` // auction sheet grade, e.g. "4.5"
	Price    int64         `gorm:"column:price;not null"`
	ImageURL *string       `gorm:"column:image_url;size:512"`
	Status   VehicleStatus `gorm:"column:status;size:16;index;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
