package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matapizza/matapizza-api/internal/models"
	"github.com/matapizza/matapizza-api/internal/services"
	"github.com/stretchr/testify/assert"
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

func seedTestData(t *testing.T, db *gorm.DB) {
	pizzaType := models.PizzaType{
		PizzaTypeID: "bbq_ckn",
		Name:        "The Barbecue Chicken Pizza",
		Category:    "Chicken",
		Ingredients: "Barbecued Chicken, Red Peppers, Green Peppers, Tomatoes",
	}
	require.NoError(t, db.Create(&pizzaType).Error)

	pizzas := []models.Pizza{
		{PizzaID: "bbq_ckn_m", PizzaTypeID: "bbq_ckn", Size: "M", Price: 12.50},
		{PizzaID: "bbq_ckn_l", PizzaTypeID: "bbq_ckn", Size: "L", Price: 16.00},
	}
	require.NoError(t, db.Create(&pizzas).Error)

	orderDate, err := time.Parse("2006-01-02", "2015-01-01")
	require.NoError(t, err)
	order := models.Order{OrderID: 1, OrderDate: orderDate, OrderTime: "11:38:36"}
	require.NoError(t, db.Create(&order).Error)

	details := []models.OrderDetail{
		{OrderDetailID: 1, OrderID: 1, PizzaID: "bbq_ckn_m", Quantity: 2},
		{OrderDetailID: 2, OrderID: 1, PizzaID: "bbq_ckn_l", Quantity: 1},
	}
	require.NoError(t, db.Create(&details).Error)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	db := setupTestDB(t)
	seedTestData(t, db)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	pizzaTypes := NewPizzaTypeController(services.NewPizzaTypeService(db))
	pizzas := NewPizzaController(services.NewPizzaService(db))
	orders := NewOrderController(services.NewOrderService(db))
	orderDetails := NewOrderDetailController(services.NewOrderDetailService(db))

	router.GET("/pizzatypes", pizzaTypes.GetAllPizzaTypes)
	router.GET("/pizzatypes/paginated", pizzaTypes.GetPaginatedPizzaTypes)
	router.GET("/pizzatypes/category", pizzaTypes.GetCategories)
	router.GET("/pizzatypes/:id", pizzaTypes.GetPizzaTypeByID)
	router.GET("/pizzas", pizzas.GetAllPizzas)
	router.GET("/pizzas/:id", pizzas.GetPizzaByID)
	router.GET("/orders", orders.GetAllOrders)
	router.GET("/orders/paginated", orders.GetPaginatedOrders)
	router.GET("/orders/:id", orders.GetOrderByID)
	router.GET("/orderdetails", orderDetails.GetAllOrderDetails)
	router.GET("/orderdetails/:id", orderDetails.GetOrderDetailByID)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGetPizzaTypeByIDEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	recorder := doRequest(t, router, "/pizzatypes/bbq_ckn")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var pizzaType models.PizzaTypeDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &pizzaType))
	assert.Equal(t, "The Barbecue Chicken Pizza", pizzaType.Name)
	assert.Len(t, pizzaType.Pizzas, 2)
}

func TestGetPizzaTypeByIDEndpointNotFound(t *testing.T) {
	router := setupTestRouter(t)

	recorder := doRequest(t, router, "/pizzatypes/no_such_type")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "no_such_type")
}

func TestGetPizzaByIDEndpointBlankID(t *testing.T) {
	router := setupTestRouter(t)

	recorder := doRequest(t, router, "/pizzas/%20")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetOrderByIDEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	recorder := doRequest(t, router, "/orders/1")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var order models.OrderDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &order))
	assert.Equal(t, 1, order.OrderID)
	assert.Equal(t, "2015-01-01", order.OrderDate)
	assert.Equal(t, 3, order.TotalItems)
	assert.InDelta(t, 41.00, order.TotalPrice, 1e-9)
	assert.Len(t, order.OrderDetails, 2)
}

func TestGetOrderByIDEndpointInvalidID(t *testing.T) {
	router := setupTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, doRequest(t, router, "/orders/abc").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, "/orders/999").Code)
}

func TestGetPaginatedOrdersEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	recorder := doRequest(t, router, "/orders/paginated?page=1&pageSize=10")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.PaginatedOrdersDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.TotalCount)
	assert.Equal(t, 3, response.TotalItems)
	assert.InDelta(t, 41.00, response.TotalSales, 1e-9)
	assert.Len(t, response.Orders, 1)
}

// unparsable filter values are normalized, not rejected
func TestGetPaginatedOrdersEndpointMalformedFilters(t *testing.T) {
	router := setupTestRouter(t)

	recorder := doRequest(t, router,
		"/orders/paginated?page=zero&pageSize=lots&startDate=yesterday&minPrice=cheap")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.PaginatedOrdersDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.TotalCount)
	assert.Len(t, response.Orders, 1)
}

func TestGetCategoriesEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	recorder := doRequest(t, router, "/pizzatypes/category")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &categories))
	assert.Equal(t, []string{"Chicken"}, categories)
}

func TestGetOrderDetailsEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	recorder := doRequest(t, router, "/orderdetails")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var details []models.OrderDetailDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &details))
	require.Len(t, details, 2)
	assert.Equal(t, "The Barbecue Chicken Pizza", details[0].PizzaTypeName)
	assert.InDelta(t, 25.00, details[0].TotalPrice, 1e-9)

	assert.Equal(t, http.StatusNotFound, doRequest(t, router, "/orderdetails/999").Code)
}
