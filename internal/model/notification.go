package model

import "time"

type Notification struct {
	ID         uint64     `gorm:"primaryKey;autoIncrement"`
	UserUID    string     `gorm:"column:user_uid;size:128;index;not null"`
	Type       string     `gorm:"column:type;size:32;not null"`
	Title      string     `gorm:"column:title;size:128"`
	Body       string     `gorm:"column:body;type:text"`
	PurchaseID *uint64    `gorm:"column:purchase_id;index"`
	VehicleID  *uint64    `gorm:"column:vehicle_id;index"`
	ReadAt     *time.Time `gorm:"column:read_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
