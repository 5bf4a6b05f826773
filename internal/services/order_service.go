package services

import (
	"time"

	"github.com/matapizza/matapizza-api/internal/models"
	"gorm.io/gorm"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// OrderFilter is the typed filter request for the paginated order listing.
// Controllers build it from the query string; Normalize applies the
// defaulting/clamping policy before it reaches the query layer.
type OrderFilter struct {
	Page     int
	PageSize int
	// Search is matched as a substring against the textual order id
	Search string
	// StartDate/EndDate bound the order date inclusively; EndDate covers
	// the entire end day, not just its midnight
	StartDate *time.Time
	EndDate   *time.Time
	// MinPrice/MaxPrice bound the order's aggregate total; values <= 0
	// are ignored
	MinPrice float64
	MaxPrice float64
}

// Normalize clamps out-of-range paging values to the defaults
func (f *OrderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.PageSize < 1 || f.PageSize > maxPageSize {
		f.PageSize = defaultPageSize
	}
}

// OrderService provides read access to orders with database-side aggregation
type OrderService interface {
	// GetAllOrders retrieves every order with its item and price totals
	GetAllOrders() ([]models.OrderDTO, error)
	// GetPaginatedOrders retrieves one page of the filtered order set
	// together with aggregates over the whole filtered set
	GetPaginatedOrders(filter OrderFilter) (models.PaginatedOrdersDTO, error)
	// GetOrderByID retrieves a single order with its line items
	GetOrderByID(id int) (models.OrderDTO, error)
}

type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

// orderRow is the scan target for order queries joined with their totals
type orderRow struct {
	OrderID    int
	OrderDate  time.Time
	OrderTime  string
	TotalItems int
	TotalPrice float64
}

func (r orderRow) toDTO() models.OrderDTO {
	return models.OrderDTO{
		OrderID:    r.OrderID,
		OrderDate:  r.OrderDate.Format("2006-01-02"),
		OrderTime:  r.OrderTime,
		TotalItems: r.TotalItems,
		TotalPrice: r.TotalPrice,
	}
}

const orderColumns = "orders.order_id AS order_id, orders.date AS order_date, orders.time AS order_time, " +
	"COALESCE(totals.total_items, 0) AS total_items, COALESCE(totals.total_price, 0) AS total_price"

// totalsQuery groups order_details by order and computes the two derived
// totals. Every endpoint that reports totals goes through this query so the
// numbers agree across the list, paginated and by-id views.
func (s *orderService) totalsQuery() *gorm.DB {
	return s.db.Table("order_details").
		Select("order_details.order_id AS order_id, "+
			"SUM(order_details.quantity) AS total_items, "+
			"SUM(order_details.quantity * pizzas.price) AS total_price").
		Joins("JOIN pizzas ON pizzas.pizza_id = order_details.pizza_id").
		Group("order_details.order_id")
}

// filteredQuery builds a fresh orders query with the totals joined in and the
// filter predicates applied. Callers get a new builder each time so count,
// aggregate and page queries never share accumulated state.
func (s *orderService) filteredQuery(filter OrderFilter) *gorm.DB {
	query := s.db.Table("orders").
		Joins("LEFT JOIN (?) AS totals ON totals.order_id = orders.order_id", s.totalsQuery())

	if filter.Search != "" {
		query = query.Where("CAST(orders.order_id AS TEXT) LIKE ?", "%"+filter.Search+"%")
	}
	if filter.StartDate != nil {
		query = query.Where("orders.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		// strictly-before the next day keeps the entire end date in range
		query = query.Where("orders.date < ?", filter.EndDate.AddDate(0, 0, 1))
	}
	if filter.MinPrice > 0 {
		query = query.Where("COALESCE(totals.total_price, 0) >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("COALESCE(totals.total_price, 0) <= ?", filter.MaxPrice)
	}
	return query
}

func (s *orderService) GetAllOrders() ([]models.OrderDTO, error) {
	var rows []orderRow
	err := s.filteredQuery(OrderFilter{}).
		Select(orderColumns).
		Order("orders.order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]models.OrderDTO, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toDTO())
	}
	return orders, nil
}

func (s *orderService) GetPaginatedOrders(filter OrderFilter) (models.PaginatedOrdersDTO, error) {
	filter.Normalize()

	var totalCount int64
	if err := s.filteredQuery(filter).Count(&totalCount).Error; err != nil {
		return models.PaginatedOrdersDTO{}, err
	}

	// aggregates over the filtered set, before pagination
	var aggregates struct {
		TotalSales float64
		TotalItems int
	}
	err := s.filteredQuery(filter).
		Select("COALESCE(SUM(totals.total_price), 0) AS total_sales, " +
			"COALESCE(SUM(totals.total_items), 0) AS total_items").
		Scan(&aggregates).Error
	if err != nil {
		return models.PaginatedOrdersDTO{}, err
	}

	var rows []orderRow
	err = s.filteredQuery(filter).
		Select(orderColumns).
		Order("orders.order_id").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Scan(&rows).Error
	if err != nil {
		return models.PaginatedOrdersDTO{}, err
	}

	orders := make([]models.OrderDTO, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toDTO())
	}

	return models.PaginatedOrdersDTO{
		TotalCount: totalCount,
		TotalSales: aggregates.TotalSales,
		TotalItems: aggregates.TotalItems,
		Orders:     orders,
	}, nil
}

func (s *orderService) GetOrderByID(id int) (models.OrderDTO, error) {
	var row orderRow
	err := s.filteredQuery(OrderFilter{}).
		Select(orderColumns).
		Where("orders.order_id = ?", id).
		Take(&row).Error
	if err != nil {
		return models.OrderDTO{}, err
	}

	details, err := orderDetailRows(s.db, &id)
	if err != nil {
		return models.OrderDTO{}, err
	}

	order := row.toDTO()
	order.OrderDetails = make([]models.OrderDetailDTO, 0, len(details))
	for _, detail := range details {
		// the by-id view nests the line items without repeating the ids
		order.OrderDetails = append(order.OrderDetails, models.OrderDetailDTO{
			PizzaTypeName: detail.PizzaTypeName,
			Size:          detail.Size,
			Quantity:      detail.Quantity,
			PriceEach:     detail.PriceEach,
			TotalPrice:    detail.TotalPrice,
		})
	}
	return order, nil
}
