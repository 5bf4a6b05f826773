package models

// Pizza is a sellable size/price variant of a PizzaType
type Pizza struct {
	PizzaID     string  `json:"pizzaId" gorm:"column:pizza_id;primaryKey"`
	PizzaTypeID string  `json:"pizzaTypeId" gorm:"column:pizza_type_id;not null"`
	Size        string  `json:"size" gorm:"column:size;not null"`
	Price       float64 `json:"price" gorm:"column:price;type:decimal(6,2)"`

	OrderDetails []OrderDetail `json:"-" gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
