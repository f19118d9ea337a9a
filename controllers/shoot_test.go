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

func TestCreateShootRequiresClient(t *testing.T) {
	r := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/shoots", gin.H{
		"client_id":  42,
		"shoot_date": "2026-06-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	client := createClient(t, r, "Jane Doe", "jane@example.com")
	w = doRequest(t, r, http.MethodPost, "/shoots", gin.H{
		"client_id":  client.ID,
		"shoot_date": "2026-06-01",
		"location":   "Old Town Studio",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	shoot := decodeBody[models.Shoot](t, w)
	assert.Equal(t, client.ID, shoot.ClientID)
	require.NotNil(t, shoot.Location)
	assert.Equal(t, "Old Town Studio", *shoot.Location)
}

func TestUpdateShootLocation(t *testing.T) {
	r := setupTest(t)

	client := createClient(t, r, "Jane Doe", "jane@example.com")
	w := doRequest(t, r, http.MethodPost, "/shoots", gin.H{
		"client_id":  client.ID,
		"shoot_date": "2026-06-01T00:00:00Z",
		"location":   "Old Town Studio",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Clearing the optional location with explicit null
	w = doRequest(t, r, http.MethodPut, "/shoots/1", gin.H{"location": nil})
	require.Equal(t, http.StatusOK, w.Code)
	shoot := decodeBody[models.Shoot](t, w)
	assert.Nil(t, shoot.Location)
}

func TestListShootsOrder(t *testing.T) {
	r := setupTest(t)

	client := createClient(t, r, "Jane Doe", "jane@example.com")
	for _, day := range []string{"2026-06-01", "2026-06-10", "2026-06-05"} {
		w := doRequest(t, r, http.MethodPost, "/shoots", gin.H{
			"client_id":  client.ID,
			"shoot_date": day + "T00:00:00Z",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/shoots", nil)
	require.Equal(t, http.StatusOK, w.Code)
	shoots := decodeBody[[]models.Shoot](t, w)
	require.Len(t, shoots, 3)
	// Most recent shoot date first
	assert.Equal(t, uint(2), shoots[0].ID)
	assert.Equal(t, uint(3), shoots[1].ID)
	assert.Equal(t, uint(1), shoots[2].ID)
}

func TestDeleteShootClearsInvoiceReference(t *testing.T) {
	r := setupTest(t)

	client := createClient(t, r, "Jane Doe", "jane@example.com")
	w := doRequest(t, r, http.MethodPost, "/shoots", gin.H{
		"client_id":  client.ID,
		"shoot_date": "2026-06-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	shoot := decodeBody[models.Shoot](t, w)

	w = doRequest(t, r, http.MethodPost, "/invoices", gin.H{
		"client_id":   client.ID,
		"shoot_id":    shoot.ID,
		"amount":      "250.00",
		"issued_date": "2026-06-02T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/shoots/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var invoice models.Invoice
	require.NoError(t, config.DB.First(&invoice, 1).Error)
	assert.Nil(t, invoice.ShootID)
}
