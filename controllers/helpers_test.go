package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photostudio-backend/config"
	"photostudio-backend/models"
	"photostudio-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTest wires an isolated in-memory database into the global handle and
// returns the real router, so tests exercise the same stack as production.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Shoot{},
		&models.Package{},
		&models.Invoice{},
		&models.Payment{},
	))
	config.DB = db
	return routes.SetupRouter()
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createClient(t *testing.T, r http.Handler, name, email string) models.Client {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/clients", gin.H{"name": name, "email": email})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[models.Client](t, w)
}

func createInvoice(t *testing.T, r http.Handler, clientID uint, amount, issued string) models.Invoice {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/invoices", gin.H{
		"client_id":   clientID,
		"amount":      amount,
		"issued_date": issued,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[models.Invoice](t, w)
}
