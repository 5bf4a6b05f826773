package models

// OrderDetail is one line item within an Order
type OrderDetail struct {
	OrderDetailID int    `json:"orderDetailId" gorm:"column:order_details_id;primaryKey;autoIncrement"`
	OrderID       int    `json:"orderId" gorm:"column:order_id;not null"`
	PizzaID       string `json:"pizzaId" gorm:"column:pizza_id;not null"`
	Quantity      int    `json:"quantity" gorm:"column:quantity;not null"`
}

func (OrderDetail) TableName() string {
	return "order_details"
}
