package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubImporter struct {
	err   error
	calls int
}

func (s *stubImporter) ImportAll() error {
	s.calls++
	return s.err
}

func importRouter(importer *stubImporter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCsvImportController(importer)
	router.POST("/csvimport/import-all", controller.ImportAll)
	return router
}

func TestImportAllEndpointSuccess(t *testing.T) {
	importer := &stubImporter{}
	router := importRouter(importer)

	req := httptest.NewRequest(http.MethodPost, "/csvimport/import-all", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, importer.calls)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "All CSV files imported successfully.", response["message"])
}

func TestImportAllEndpointFailure(t *testing.T) {
	importer := &stubImporter{err: errors.New("order_details.csv line 3: invalid quantity")}
	router := importRouter(importer)

	req := httptest.NewRequest(http.MethodPost, "/csvimport/import-all", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Import failed")
	assert.Contains(t, response["error"], "invalid quantity")
}
