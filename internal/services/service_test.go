package services

import (
	"testing"
	"time"

	"github.com/matapizza/matapizza-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.PizzaType{}, &models.Pizza{}, &models.Order{}, &models.OrderDetail{})
	require.NoError(t, err)

	return db
}

func date(t *testing.T, value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

// seedCatalog loads a small catalog with three orders:
//
//	order 1 (2015-01-01): 2x bbq_ckn_m @ 12.50 + 1x hawaiian_m @ 9.75 = 34.75, 3 items
//	order 2 (2015-01-03): 1x bbq_ckn_l @ 16.00                       = 16.00, 1 item
//	order 3 (2015-01-05): 2x five_cheese_l @ 18.50 + 1x bbq_ckn_m    = 49.50, 3 items
func seedCatalog(t *testing.T, db *gorm.DB) {
	pizzaTypes := []models.PizzaType{
		{PizzaTypeID: "bbq_ckn", Name: "The Barbecue Chicken Pizza", Category: "Chicken",
			Ingredients: "Barbecued Chicken, Red Peppers, Green Peppers, Tomatoes, Red Onions, Barbecue Sauce"},
		{PizzaTypeID: "five_cheese", Name: "The Five Cheese Pizza", Category: "Veggie",
			Ingredients: "Mozzarella Cheese, Provolone Cheese, Smoked Gouda Cheese, Romano Cheese, Blue Cheese, Garlic"},
		{PizzaTypeID: "hawaiian", Name: "The Hawaiian Pizza", Category: "Classic",
			Ingredients: "Sliced Ham, Pineapple, Mozzarella Cheese"},
	}
	require.NoError(t, db.Create(&pizzaTypes).Error)

	pizzas := []models.Pizza{
		{PizzaID: "bbq_ckn_m", PizzaTypeID: "bbq_ckn", Size: "M", Price: 12.50},
		{PizzaID: "bbq_ckn_l", PizzaTypeID: "bbq_ckn", Size: "L", Price: 16.00},
		{PizzaID: "five_cheese_l", PizzaTypeID: "five_cheese", Size: "L", Price: 18.50},
		{PizzaID: "hawaiian_m", PizzaTypeID: "hawaiian", Size: "M", Price: 9.75},
	}
	require.NoError(t, db.Create(&pizzas).Error)

	orders := []models.Order{
		{OrderID: 1, OrderDate: date(t, "2015-01-01"), OrderTime: "11:38:36"},
		{OrderID: 2, OrderDate: date(t, "2015-01-03"), OrderTime: "12:02:59"},
		{OrderID: 3, OrderDate: date(t, "2015-01-05"), OrderTime: "18:24:10"},
	}
	require.NoError(t, db.Create(&orders).Error)

	details := []models.OrderDetail{
		{OrderDetailID: 1, OrderID: 1, PizzaID: "bbq_ckn_m", Quantity: 2},
		{OrderDetailID: 2, OrderID: 1, PizzaID: "hawaiian_m", Quantity: 1},
		{OrderDetailID: 3, OrderID: 2, PizzaID: "bbq_ckn_l", Quantity: 1},
		{OrderDetailID: 4, OrderID: 3, PizzaID: "five_cheese_l", Quantity: 2},
		{OrderDetailID: 5, OrderID: 3, PizzaID: "bbq_ckn_m", Quantity: 1},
	}
	require.NoError(t, db.Create(&details).Error)
}
