package services

import (
	"github.com/matapizza/matapizza-api/internal/models"
	"gorm.io/gorm"
)

// OrderDetailService provides the flattened line-item view of orders
type OrderDetailService interface {
	// GetAllOrderDetails retrieves every line item joined with its pizza
	// variant and type name
	GetAllOrderDetails() ([]models.OrderDetailDTO, error)
	// GetOrderDetailByID retrieves a single line item by its ID
	GetOrderDetailByID(id int) (models.OrderDetailDTO, error)
}

type orderDetailService struct {
	db *gorm.DB
}

// NewOrderDetailService creates a new instance of OrderDetailService
func NewOrderDetailService(db *gorm.DB) OrderDetailService {
	return &orderDetailService{db: db}
}

// orderDetailQuery selects line items enriched with the pizza type name,
// size, unit price and computed line total. The order by-id view reuses it so
// line totals are derived from the same projection everywhere.
func orderDetailQuery(db *gorm.DB) *gorm.DB {
	return db.Table("order_details").
		Select("order_details.order_details_id AS order_detail_id, " +
			"order_details.order_id AS order_id, " +
			"order_details.pizza_id AS pizza_id, " +
			"order_details.quantity AS quantity, " +
			"pizza_types.name AS pizza_type_name, " +
			"pizzas.size AS size, " +
			"pizzas.price AS price_each, " +
			"order_details.quantity * pizzas.price AS total_price").
		Joins("JOIN pizzas ON pizzas.pizza_id = order_details.pizza_id").
		Joins("JOIN pizza_types ON pizza_types.pizza_type_id = pizzas.pizza_type_id").
		Order("order_details.order_details_id")
}

// orderDetailRows fetches the enriched line items of one order
func orderDetailRows(db *gorm.DB, orderID *int) ([]models.OrderDetailDTO, error) {
	query := orderDetailQuery(db)
	if orderID != nil {
		query = query.Where("order_details.order_id = ?", *orderID)
	}

	var rows []models.OrderDetailDTO
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *orderDetailService) GetAllOrderDetails() ([]models.OrderDetailDTO, error) {
	return orderDetailRows(s.db, nil)
}

func (s *orderDetailService) GetOrderDetailByID(id int) (models.OrderDetailDTO, error) {
	var detail models.OrderDetailDTO
	err := orderDetailQuery(s.db).
		Where("order_details.order_details_id = ?", id).
		Take(&detail).Error
	if err != nil {
		return models.OrderDetailDTO{}, err
	}
	return detail, nil
}
