package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matapizza/matapizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	pizzaTypesCsv = `pizza_type_id,name,category,ingredients
bbq_ckn,The Barbecue Chicken Pizza,Chicken,"Barbecued Chicken, Red Peppers, Green Peppers, Tomatoes"
hawaiian,The Hawaiian Pizza,Classic,"Sliced Ham, Pineapple, Mozzarella Cheese"
`
	pizzasCsv = `pizza_id,pizza_type_id,size,price
bbq_ckn_m,bbq_ckn,M,12.50
bbq_ckn_l,bbq_ckn,L,16.00
hawaiian_m,hawaiian,M,9.75
`
	ordersCsv = `order_id,date,time
1,2015-01-01,11:38:36
2,2015-01-03,12:02:59
`
	orderDetailsCsv = `order_details_id,order_id,pizza_id,quantity
1,1,bbq_ckn_m,2
2,1,hawaiian_m,1
3,2,bbq_ckn_l,1
`
)

func writeImportDir(t *testing.T, orderDetails string) string {
	dir := t.TempDir()
	files := map[string]string{
		"pizza_types.csv":   pizzaTypesCsv,
		"pizzas.csv":        pizzasCsv,
		"orders.csv":        ordersCsv,
		"order_details.csv": orderDetails,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

type tableCounts struct {
	pizzaTypes, pizzas, orders, orderDetails int64
}

func countAll(t *testing.T, db *gorm.DB) tableCounts {
	var counts tableCounts
	require.NoError(t, db.Model(&models.PizzaType{}).Count(&counts.pizzaTypes).Error)
	require.NoError(t, db.Model(&models.Pizza{}).Count(&counts.pizzas).Error)
	require.NoError(t, db.Model(&models.Order{}).Count(&counts.orders).Error)
	require.NoError(t, db.Model(&models.OrderDetail{}).Count(&counts.orderDetails).Error)
	return counts
}

func TestImportAll(t *testing.T) {
	db := setupTestDB(t)
	importer := NewCsvImporter(db, writeImportDir(t, orderDetailsCsv))

	require.NoError(t, importer.ImportAll())

	counts := countAll(t, db)
	assert.Equal(t, tableCounts{pizzaTypes: 2, pizzas: 3, orders: 2, orderDetails: 3}, counts)

	// imported ids are the externally assigned ones
	var order models.Order
	require.NoError(t, db.First(&order, 2).Error)
	assert.Equal(t, "2015-01-03", order.OrderDate.Format("2006-01-02"))
	assert.Equal(t, "12:02:59", order.OrderTime)

	// quoted ingredient lists keep their commas
	var pizzaType models.PizzaType
	require.NoError(t, db.First(&pizzaType, "pizza_type_id = ?", "hawaiian").Error)
	assert.Equal(t, "Sliced Ham, Pineapple, Mozzarella Cheese", pizzaType.Ingredients)
}

func TestImportAllIdempotent(t *testing.T) {
	db := setupTestDB(t)
	importer := NewCsvImporter(db, writeImportDir(t, orderDetailsCsv))

	require.NoError(t, importer.ImportAll())
	before := countAll(t, db)

	// a second run against unchanged source files changes nothing
	require.NoError(t, importer.ImportAll())
	assert.Equal(t, before, countAll(t, db))
}

func TestImportAllSkipsExistingRows(t *testing.T) {
	db := setupTestDB(t)
	existing := models.PizzaType{PizzaTypeID: "bbq_ckn", Name: "Renamed Elsewhere", Category: "Chicken"}
	require.NoError(t, db.Create(&existing).Error)

	importer := NewCsvImporter(db, writeImportDir(t, orderDetailsCsv))
	require.NoError(t, importer.ImportAll())

	// the pre-existing row is skipped, not overwritten
	var pizzaType models.PizzaType
	require.NoError(t, db.First(&pizzaType, "pizza_type_id = ?", "bbq_ckn").Error)
	assert.Equal(t, "Renamed Elsewhere", pizzaType.Name)
	assert.Equal(t, int64(2), countAll(t, db).pizzaTypes)
}

// a malformed row in the last file must roll back all four tables
func TestImportAllRollsBackOnMalformedRow(t *testing.T) {
	db := setupTestDB(t)
	malformed := `order_details_id,order_id,pizza_id,quantity
1,1,bbq_ckn_m,2
2,1,hawaiian_m,not_a_number
`
	importer := NewCsvImporter(db, writeImportDir(t, malformed))

	err := importer.ImportAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")

	assert.Equal(t, tableCounts{}, countAll(t, db))
}

func TestImportAllMissingFile(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir() // no source files at all

	err := NewCsvImporter(db, dir).ImportAll()
	require.Error(t, err)
	assert.Equal(t, tableCounts{}, countAll(t, db))
}

func TestImportAllMissingColumn(t *testing.T) {
	db := setupTestDB(t)
	dir := writeImportDir(t, orderDetailsCsv)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.csv"),
		[]byte("order_id,when\n1,2015-01-01\n"), 0o644))

	err := NewCsvImporter(db, dir).ImportAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
	assert.Equal(t, tableCounts{}, countAll(t, db))
}
