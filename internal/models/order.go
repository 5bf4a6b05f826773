package models

import "time"

// Order is a single customer transaction. The id is assigned by the CSV
// import for historical data and auto-incremented for anything created after.
// The time of day is kept as the HH:MM:SS string from the source data.
type Order struct {
	OrderID   int       `json:"orderId" gorm:"column:order_id;primaryKey;autoIncrement"`
	OrderDate time.Time `json:"orderDate" gorm:"column:date;not null"`
	OrderTime string    `json:"orderTime" gorm:"column:time;not null"`

	OrderDetails []OrderDetail `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}
