package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matapizza/matapizza-api/internal/services"
	log "github.com/sirupsen/logrus"
)

// CsvImportController handles the administrative bulk-import trigger
type CsvImportController interface {
	// ImportAll runs the transactional CSV import
	ImportAll(c *gin.Context)
}

type csvImportController struct {
	importer services.CsvImporter
}

// NewCsvImportController creates a new instance of CsvImportController
func NewCsvImportController(importer services.CsvImporter) CsvImportController {
	return &csvImportController{importer: importer}
}

// ImportAll godoc
// @Summary Import all CSV files
// @Description Import pizza types, pizzas, orders and order details from the configured data directory in one transaction. Any failure rolls everything back.
// @Tags csvimport
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /csvimport/import-all [post]
func (c *csvImportController) ImportAll(ctx *gin.Context) {
	log.Info("Starting CSV import")
	if err := c.importer.ImportAll(); err != nil {
		log.WithError(err).Error("CSV import failed, transaction rolled back")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Import failed: %v", err)})
		return
	}
	log.Info("CSV import finished")
	ctx.JSON(http.StatusOK, gin.H{"message": "All CSV files imported successfully."})
}
