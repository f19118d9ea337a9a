package controllers_test

import (
	"net/http"
	"testing"

	"photostudio-backend/config"
	"photostudio-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientAndGet(t *testing.T) {
	r := setupTest(t)

	client := createClient(t, r, "Jane Doe", "jane@example.com")
	assert.NotZero(t, client.ID)
	assert.Equal(t, "jane@example.com", client.Email)

	w := doRequest(t, r, http.MethodGet, "/clients/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/clients/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateClientRejectsMissingFields(t *testing.T) {
	r := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/clients", gin.H{"name": "No Email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/clients", gin.H{"name": "Bad Email", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientEmailNormalizedBeforeValidation(t *testing.T) {
	r := setupTest(t)

	// Padded mixed-case input is accepted and stored trimmed and lowercased
	w := doRequest(t, r, http.MethodPost, "/clients", gin.H{"name": "Jane Doe", "email": "  Jane@Example.COM "})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	client := decodeBody[models.Client](t, w)
	assert.Equal(t, "jane@example.com", client.Email)

	w = doRequest(t, r, http.MethodPut, "/clients/1", gin.H{"email": " Jane.New@Example.COM "})
	require.Equal(t, http.StatusOK, w.Code)
	client = decodeBody[models.Client](t, w)
	assert.Equal(t, "jane.new@example.com", client.Email)

	// The format check still runs, on the trimmed form
	w = doRequest(t, r, http.MethodPost, "/clients", gin.H{"name": "Bad", "email": "  not-an-email  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doRequest(t, r, http.MethodPut, "/clients/1", gin.H{"email": "  also bad  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDuplicateEmailIsCaseInsensitive(t *testing.T) {
	r := setupTest(t)

	createClient(t, r, "Jane Doe", "jane@example.com")

	w := doRequest(t, r, http.MethodPost, "/clients", gin.H{"name": "Other", "email": "  Jane@Example.COM "})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateClientEmailChecks(t *testing.T) {
	r := setupTest(t)

	jane := createClient(t, r, "Jane Doe", "jane@example.com")
	createClient(t, r, "John Roe", "john@example.com")

	// Updating to another client's email fails
	w := doRequest(t, r, http.MethodPut, "/clients/1", gin.H{"email": "john@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Updating to the record's own email succeeds
	w = doRequest(t, r, http.MethodPut, "/clients/1", gin.H{"email": "Jane@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[models.Client](t, w)
	assert.Equal(t, jane.ID, updated.ID)
	assert.Equal(t, "jane@example.com", updated.Email)
}

func TestUpdateClientPatchSemantics(t *testing.T) {
	r := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/clients", gin.H{
		"name":  "Jane Doe",
		"email": "jane@example.com",
		"phone": "+4415550100",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Omitting phone leaves it untouched
	w = doRequest(t, r, http.MethodPut, "/clients/1", gin.H{"name": "Jane D."})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[models.Client](t, w)
	assert.Equal(t, "Jane D.", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+4415550100", *updated.Phone)

	// An explicit null clears it
	w = doRequest(t, r, http.MethodPut, "/clients/1", gin.H{"phone": nil})
	require.Equal(t, http.StatusOK, w.Code)
	updated = decodeBody[models.Client](t, w)
	assert.Nil(t, updated.Phone)
}

func TestListClientsPagination(t *testing.T) {
	r := setupTest(t)

	createClient(t, r, "A", "a@example.com")
	createClient(t, r, "B", "b@example.com")
	createClient(t, r, "C", "c@example.com")

	w := doRequest(t, r, http.MethodGet, "/clients?skip=1&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decodeBody[[]models.Client](t, w)
	require.Len(t, page, 1)
	assert.Equal(t, "B", page[0].Name) // id ascending

	for _, path := range []string{"/clients?limit=0", "/clients?limit=201", "/clients?skip=-1", "/clients?limit=abc"} {
		w = doRequest(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestDeleteClientCascades(t *testing.T) {
	r := setupTest(t)

	client := createClient(t, r, "Jane Doe", "jane@example.com")

	w := doRequest(t, r, http.MethodPost, "/shoots", gin.H{
		"client_id":  client.ID,
		"shoot_date": "2026-06-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	invoice := createInvoice(t, r, client.ID, "300.00", "2026-06-05")

	w = doRequest(t, r, http.MethodPost, "/payments", gin.H{
		"invoice_id": invoice.ID,
		"amount":     "100.00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/clients/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	var shoots, invoices, payments int64
	config.DB.Model(&models.Shoot{}).Count(&shoots)
	config.DB.Model(&models.Invoice{}).Count(&invoices)
	config.DB.Model(&models.Payment{}).Count(&payments)
	assert.Zero(t, shoots)
	assert.Zero(t, invoices)
	assert.Zero(t, payments)
}
