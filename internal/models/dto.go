package models

// Transfer objects returned by the read endpoints. Field names follow the
// frontend contract (camelCase), dates are rendered as yyyy-MM-dd strings.

// PizzaTypeDTO is the catalog view of a pizza type. Pizzas is only populated
// on the by-id endpoint.
type PizzaTypeDTO struct {
	PizzaTypeID string     `json:"pizzaTypeId"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Ingredients string     `json:"ingredients"`
	Pizzas      []PizzaDTO `json:"pizzas,omitempty"`
}

// PizzaDTO is a sellable variant. When nested under a pizza type only the
// size and price are filled in.
type PizzaDTO struct {
	PizzaID     string  `json:"pizzaId,omitempty"`
	PizzaTypeID string  `json:"pizzaTypeId,omitempty"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
}

// OrderDTO carries an order together with its database-side aggregates.
// OrderDetails is only populated on the by-id endpoint.
type OrderDTO struct {
	OrderID      int              `json:"orderId"`
	OrderDate    string           `json:"orderDate"`
	OrderTime    string           `json:"orderTime"`
	TotalItems   int              `json:"totalItems"`
	TotalPrice   float64          `json:"totalPrice"`
	OrderDetails []OrderDetailDTO `json:"orderDetails,omitempty"`
}

// OrderDetailDTO is the flattened line-item view: the line joined with its
// pizza variant and type name, plus the computed line total.
type OrderDetailDTO struct {
	OrderDetailID int     `json:"orderDetailId,omitempty"`
	OrderID       int     `json:"orderId,omitempty"`
	PizzaID       string  `json:"pizzaId,omitempty"`
	PizzaTypeName string  `json:"pizzaTypeName"`
	Size          string  `json:"size"`
	Quantity      int     `json:"quantity"`
	PriceEach     float64 `json:"priceEach"`
	TotalPrice    float64 `json:"totalPrice"`
}

// PaginatedOrdersDTO is the envelope for the paginated order listing. The
// three aggregate fields cover the whole filtered set, not just the page.
type PaginatedOrdersDTO struct {
	TotalCount int64      `json:"totalCount"`
	TotalSales float64    `json:"totalSales"`
	TotalItems int        `json:"totalItems"`
	Orders     []OrderDTO `json:"orders"`
}

// PaginatedPizzaTypesDTO is the envelope for the paginated pizza type listing.
type PaginatedPizzaTypesDTO struct {
	TotalCount int64          `json:"totalCount"`
	PizzaTypes []PizzaTypeDTO `json:"pizzaTypes"`
}
