package models

// PizzaType is a named pizza recipe, independent of size or price
type PizzaType struct {
	PizzaTypeID string `json:"pizzaTypeId" gorm:"column:pizza_type_id;primaryKey"`
	Name        string `json:"name" gorm:"column:name;not null"`
	Category    string `json:"category" gorm:"column:category;not null"`
	Ingredients string `json:"ingredients" gorm:"column:ingredients"`

	Pizzas []Pizza `json:"-" gorm:"foreignKey:PizzaTypeID;constraint:OnDelete:CASCADE"`
}

func (PizzaType) TableName() string {
	return "pizza_types"
}
