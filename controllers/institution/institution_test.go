package institutionController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eduplay/config"
	"eduplay/database"
	"eduplay/models"
	institutionRoutes "eduplay/routers/institutionRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{JWTKey: "test-secret", ReminderWindowHours: 24}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	institutionRoutes.SetupInstitutionRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestCreateInstitution(t *testing.T) {
	app := setupTest(t)

	resp, body := doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{
		"name":  "Acme",
		"email": "a@acme.com",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.NotZero(t, data["institution_id"])
	assert.Equal(t, "Acme", data["name"])
	assert.Equal(t, "a@acme.com", data["email"])
	assert.Nil(t, data["contact_number"])

	// Duplicate email is a conflict
	resp, _ = doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{
		"name":  "Acme Clone",
		"email": "a@acme.com",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCreateInstitutionMissingFields(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{
		"name": "No Email",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{
		"email": "invalid-email",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Nothing reached storage
	var count int64
	database.Database.Db.Model(&models.Institution{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetInstitution(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "GET", "/api/institutions/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/api/institutions/42", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Create then fetch round trip
	_, created := doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{
		"name":           "Round Trip",
		"email":          "rt@acme.com",
		"contact_number": "+123456789",
	})
	createdData := created["data"].(map[string]interface{})
	id := int(createdData["institution_id"].(float64))

	resp, fetched := doRequest(t, app, "GET", fmt.Sprintf("/api/institutions/%d", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	fetchedData := fetched["data"].(map[string]interface{})
	assert.Equal(t, createdData["name"], fetchedData["name"])
	assert.Equal(t, createdData["email"], fetchedData["email"])
	assert.Equal(t, createdData["contact_number"], fetchedData["contact_number"])
}

func TestListInstitutions(t *testing.T) {
	app := setupTest(t)

	resp, body := doRequest(t, app, "GET", "/api/institutions/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"])

	doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{"name": "One", "email": "one@x.com"})
	doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{"name": "Two", "email": "two@x.com"})

	resp, body = doRequest(t, app, "GET", "/api/institutions/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	items := body["data"].([]interface{})
	require.Len(t, items, 2)
	// Newest first
	assert.Equal(t, "Two", items[0].(map[string]interface{})["name"])
}

func TestUpdateInstitution(t *testing.T) {
	app := setupTest(t)

	_, created := doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{
		"name":           "Before",
		"email":          "before@x.com",
		"contact_number": "+111",
	})
	id := int(created["data"].(map[string]interface{})["institution_id"].(float64))

	resp, _ := doRequest(t, app, "PUT", fmt.Sprintf("/api/institutions/%d", id), map[string]interface{}{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, "PUT", "/api/institutions/999", map[string]interface{}{"name": "X"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Partial update keeps unspecified fields
	resp, updated := doRequest(t, app, "PUT", fmt.Sprintf("/api/institutions/%d", id), map[string]interface{}{
		"name": "After",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := updated["data"].(map[string]interface{})
	assert.Equal(t, "After", data["name"])
	assert.Equal(t, "before@x.com", data["email"])
	assert.Equal(t, "+111", data["contact_number"])
}

func TestUpdateInstitutionDuplicateEmail(t *testing.T) {
	app := setupTest(t)

	doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{"name": "A", "email": "a@x.com"})
	_, created := doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{"name": "B", "email": "b@x.com"})
	id := int(created["data"].(map[string]interface{})["institution_id"].(float64))

	resp, _ := doRequest(t, app, "PUT", fmt.Sprintf("/api/institutions/%d", id), map[string]interface{}{
		"email": "a@x.com",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestDeleteInstitution(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "DELETE", "/api/institutions/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, created := doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{"name": "Gone", "email": "gone@x.com"})
	id := int(created["data"].(map[string]interface{})["institution_id"].(float64))

	resp, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/api/institutions/%d", id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Second delete finds nothing
	resp, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/api/institutions/%d", id), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteInstitutionStillReferenced(t *testing.T) {
	app := setupTest(t)

	_, created := doRequest(t, app, "POST", "/api/institutions/", map[string]interface{}{"name": "Ref", "email": "ref@x.com"})
	id := int(created["data"].(map[string]interface{})["institution_id"].(float64))

	course := models.Course{InstitutionID: uint(id), Title: "Math 101"}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	resp, _ := doRequest(t, app, "DELETE", fmt.Sprintf("/api/institutions/%d", id), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Row must survive a blocked delete
	resp, _ = doRequest(t, app, "GET", fmt.Sprintf("/api/institutions/%d", id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
