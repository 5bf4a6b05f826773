package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/matapizza/matapizza-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Source file names inside the import data directory
const (
	pizzaTypesFile   = "pizza_types.csv"
	pizzasFile       = "pizzas.csv"
	orderFile        = "orders.csv"
	orderDetailsFile = "order_details.csv"
)

const csvDateLayout = "2006-01-02"

// CsvImporter bulk-loads the four CSV sources into the database.
//
// The whole import runs inside one transaction and is idempotent: rows whose
// primary key already exists are skipped, so re-running after a committed
// import changes nothing, and any failure rolls back all four tables.
type CsvImporter interface {
	// ImportAll imports pizza types, pizzas, orders and order details, in
	// that order because later tables hold foreign keys into earlier ones
	ImportAll() error
}

type csvImporter struct {
	db      *gorm.DB
	dataDir string
}

// NewCsvImporter creates a new instance of CsvImporter reading from dataDir
func NewCsvImporter(db *gorm.DB, dataDir string) CsvImporter {
	return &csvImporter{db: db, dataDir: dataDir}
}

func (i *csvImporter) ImportAll() error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := i.importPizzaTypes(tx); err != nil {
			return err
		}
		if err := i.importPizzas(tx); err != nil {
			return err
		}

		// Orders and OrderDetails carry externally assigned ids that
		// bypass auto-increment; resync the sequence right after each
		// insert so the database is never left handing out stale ids.
		if err := i.importOrders(tx); err != nil {
			return err
		}
		if err := resyncSequence(tx, "orders", "order_id"); err != nil {
			return err
		}

		if err := i.importOrderDetails(tx); err != nil {
			return err
		}
		return resyncSequence(tx, "order_details", "order_details_id")
	})
}

func (i *csvImporter) importPizzaTypes(tx *gorm.DB) error {
	rows, err := i.readSource(pizzaTypesFile, []string{"pizza_type_id", "name", "category", "ingredients"})
	if err != nil {
		return err
	}

	var existing []string
	if err := tx.Model(&models.PizzaType{}).Pluck("pizza_type_id", &existing).Error; err != nil {
		return err
	}
	seen := toSet(existing)

	var staged []models.PizzaType
	for _, row := range rows {
		if seen[row[0]] {
			continue
		}
		staged = append(staged, models.PizzaType{
			PizzaTypeID: row[0],
			Name:        row[1],
			Category:    row[2],
			Ingredients: row[3],
		})
	}
	return i.persist(tx, pizzaTypesFile, len(staged), staged)
}

func (i *csvImporter) importPizzas(tx *gorm.DB) error {
	rows, err := i.readSource(pizzasFile, []string{"pizza_id", "pizza_type_id", "size", "price"})
	if err != nil {
		return err
	}

	var existing []string
	if err := tx.Model(&models.Pizza{}).Pluck("pizza_id", &existing).Error; err != nil {
		return err
	}
	seen := toSet(existing)

	var staged []models.Pizza
	for line, row := range rows {
		if seen[row[0]] {
			continue
		}
		price, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return rowError(pizzasFile, line, "price", err)
		}
		staged = append(staged, models.Pizza{
			PizzaID:     row[0],
			PizzaTypeID: row[1],
			Size:        row[2],
			Price:       price,
		})
	}
	return i.persist(tx, pizzasFile, len(staged), staged)
}

func (i *csvImporter) importOrders(tx *gorm.DB) error {
	rows, err := i.readSource(orderFile, []string{"order_id", "date", "time"})
	if err != nil {
		return err
	}

	var existing []int
	if err := tx.Model(&models.Order{}).Pluck("order_id", &existing).Error; err != nil {
		return err
	}
	seen := toSet(existing)

	var staged []models.Order
	for line, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return rowError(orderFile, line, "order_id", err)
		}
		if seen[id] {
			continue
		}
		date, err := time.Parse(csvDateLayout, row[1])
		if err != nil {
			return rowError(orderFile, line, "date", err)
		}
		staged = append(staged, models.Order{
			OrderID:   id,
			OrderDate: date,
			OrderTime: row[2],
		})
	}
	return i.persist(tx, orderFile, len(staged), staged)
}

func (i *csvImporter) importOrderDetails(tx *gorm.DB) error {
	rows, err := i.readSource(orderDetailsFile, []string{"order_details_id", "order_id", "pizza_id", "quantity"})
	if err != nil {
		return err
	}

	var existing []int
	if err := tx.Model(&models.OrderDetail{}).Pluck("order_details_id", &existing).Error; err != nil {
		return err
	}
	seen := toSet(existing)

	var staged []models.OrderDetail
	for line, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return rowError(orderDetailsFile, line, "order_details_id", err)
		}
		if seen[id] {
			continue
		}
		orderID, err := strconv.Atoi(row[1])
		if err != nil {
			return rowError(orderDetailsFile, line, "order_id", err)
		}
		quantity, err := strconv.Atoi(row[3])
		if err != nil {
			return rowError(orderDetailsFile, line, "quantity", err)
		}
		staged = append(staged, models.OrderDetail{
			OrderDetailID: id,
			OrderID:       orderID,
			PizzaID:       row[2],
			Quantity:      quantity,
		})
	}
	return i.persist(tx, orderDetailsFile, len(staged), staged)
}

// readSource parses one CSV file and returns its data rows reordered to match
// wantColumns. The header row decides the column positions, so sources with
// extra or shuffled columns still import.
func (i *csvImporter) readSource(name string, wantColumns []string) ([][]string, error) {
	path := filepath.Join(i.dataDir, name)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", name)
	}

	header := map[string]int{}
	for index, column := range records[0] {
		header[column] = index
	}
	positions := make([]int, len(wantColumns))
	for index, column := range wantColumns {
		position, ok := header[column]
		if !ok {
			return nil, fmt.Errorf("%s: missing column %q", name, column)
		}
		positions[index] = position
	}

	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]string, len(positions))
		for index, position := range positions {
			row[index] = record[position]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// persist inserts the staged rows in batches; nothing to do is not an error
func (i *csvImporter) persist(tx *gorm.DB, name string, count int, staged interface{}) error {
	if count == 0 {
		log.WithField("file", name).Info("No new rows to import")
		return nil
	}
	if err := tx.CreateInBatches(staged, 500).Error; err != nil {
		return fmt.Errorf("insert rows from %s: %w", name, err)
	}
	log.WithFields(log.Fields{"file": name, "rows": count}).Info("Imported rows")
	return nil
}

// resyncSequence realigns the auto-increment state after explicit-id inserts.
// Postgres sequences do not follow explicit ids, so post-import creates would
// collide without the setval; sqlite allocates from MAX(rowid) already.
func resyncSequence(tx *gorm.DB, table, column string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	statement := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE((SELECT MAX(%s) FROM %s), 1))",
		table, column, column, table)
	return tx.Exec(statement).Error
}

func rowError(file string, line int, column string, err error) error {
	// +2 converts the zero-based data index to the 1-based file line
	return fmt.Errorf("%s line %d: invalid %s: %w", file, line+2, column, err)
}

func toSet[K comparable](keys []K) map[K]bool {
	set := make(map[K]bool, len(keys))
	for _, key := range keys {
		set[key] = true
	}
	return set
}
