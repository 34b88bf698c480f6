package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorsur/bodega-api/internal/application/auth"
	"github.com/gestorsur/bodega-api/internal/application/catalog"
	"github.com/gestorsur/bodega-api/internal/application/inventory"
	"github.com/gestorsur/bodega-api/internal/application/party"
	"github.com/gestorsur/bodega-api/internal/infrastructure/memory"
	apphttp "github.com/gestorsur/bodega-api/internal/interfaces/http"
	"github.com/gestorsur/bodega-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: app completa sobre el almacén en memoria
// ──────────────────────────────────────────────────────────────────────────────

const apiTestSecret = "test-secret-key-for-unit-tests"

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	txRunner := memory.NewTxRunner(store)
	productRepo := memory.NewProductRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	entryRepo := memory.NewEntryRepository(store)
	exitRepo := memory.NewExitRepository(store)
	stockRepo := memory.NewStockRepository(store)
	userRepo := memory.NewUserRepository(store)

	log := logger.New(logger.Config{Env: "development", Level: "error"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  catalog.NewProductUseCase(productRepo),
		CustomerUC: party.NewCustomerUseCase(customerRepo),
		SupplierUC: party.NewSupplierUseCase(supplierRepo),
		EntryUC:    inventory.NewEntryUseCase(txRunner, supplierRepo, productRepo, entryRepo),
		ExitUC:     inventory.NewExitUseCase(txRunner, customerRepo, productRepo, exitRepo),
		StockUC:    inventory.NewStockUseCase(stockRepo, productRepo),
		AuthUC: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret: apiTestSecret, ExpMinutes: 60, Issuer: "bodega-api-test",
		}),
		JWTSecret: apiTestSecret,
		Log:       log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path, token string) (*http.Response, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var list []map[string]any
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	_ = json.Unmarshal(raw, &list)
	return resp, list
}

// registerAdmin registra un usuario admin y retorna su token.
func registerAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": "admin@bodega.cl", "name": "Admin", "password": "secreto123", "role": "admin",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// seedScenario crea producto, cliente y proveedor; retorna el product_id.
func seedScenario(t *testing.T, app *fiber.App, token string) string {
	t.Helper()
	resp, product := doJSON(t, app, http.MethodPost, "/api/products", token, map[string]any{
		"sku": "MAT-001", "name": "Cemento 25kg", "product_type": "MATERIAL", "sale_price": "150",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/customers", token, map[string]any{
		"name": "Constructora Andes", "rut": "12345678-5",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/suppliers", token, map[string]any{
		"name": "Distribuidora Sur", "rut": "87654321-4",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	id, _ := product["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func entryBody(productID string, qty int) map[string]any {
	return map[string]any{
		"supplier_rut": "87654321-4",
		"details": []map[string]any{
			{"product_id": productID, "quantity": fmt.Sprint(qty), "purchase_price": "100"},
		},
	}
}

func exitBody(productID string, qty int) map[string]any {
	return map[string]any{
		"customer_rut": "12345678-5",
		"details": []map[string]any{
			{"product_id": productID, "quantity": fmt.Sprint(qty)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: entrada → salida → stock
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_FlujoEntradaSalidaStock(t *testing.T) {
	app := buildAPI(t)
	token := registerAdmin(t, app)
	productID := seedScenario(t, app, token)

	// Entrada de 20 unidades a $100
	resp, entry := doJSON(t, app, http.MethodPost, "/api/inventory/entries", token, entryBody(productID, 20))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "87654321-4", entry["supplier_rut"])

	// Salida de 5 unidades: precio fotografiado $150, total $750
	resp, exit := doJSON(t, app, http.MethodPost, "/api/inventory/exits", token, exitBody(productID, 5))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	details, ok := exit["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	line, _ := details[0].(map[string]any)
	assert.Equal(t, "150", line["unit_price"])
	assert.Equal(t, "750", line["total_price"])

	// Stock vigente: 20 - 5 = 15
	resp, stock := doJSONList(t, app, "/api/inventory", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, stock, 1)
	assert.Equal(t, productID, stock[0]["product_id"])
	assert.Equal(t, "15", stock[0]["quantity"])
}

func TestAPI_SalidaSinStock_Retorna409(t *testing.T) {
	app := buildAPI(t)
	token := registerAdmin(t, app)
	productID := seedScenario(t, app, token)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/inventory/entries", token, entryBody(productID, 20))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/inventory/exits", token, exitBody(productID, 999))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	// El mensaje identifica producto y cantidades
	msg, _ := body["message"].(string)
	assert.Contains(t, msg, productID)
	assert.Contains(t, msg, "999")
	assert.Contains(t, msg, "20")

	// El stock no cambió
	_, stock := doJSONList(t, app, "/api/inventory", token)
	require.Len(t, stock, 1)
	assert.Equal(t, "20", stock[0]["quantity"])
}

func TestAPI_RutInvalido_Retorna400(t *testing.T) {
	app := buildAPI(t)
	token := registerAdmin(t, app)
	productID := seedScenario(t, app, token)

	body := entryBody(productID, 5)
	body["supplier_rut"] = "12345678-9" // dígito verificador incorrecto
	resp, decoded := doJSON(t, app, http.MethodPost, "/api/inventory/entries", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_RUT", decoded["code"])
}

func TestAPI_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildAPI(t)
	token := registerAdmin(t, app)
	seedScenario(t, app, token)

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/inventory/entries", token,
		entryBody("00000000-0000-0000-0000-000000000099", 5))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decoded["code"])
}

func TestAPI_ReversaInconsistente_Retorna409(t *testing.T) {
	app := buildAPI(t)
	token := registerAdmin(t, app)
	productID := seedScenario(t, app, token)

	_, entry := doJSON(t, app, http.MethodPost, "/api/inventory/entries", token, entryBody(productID, 10))
	entryID, _ := entry["id"].(string)
	require.NotEmpty(t, entryID)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/inventory/exits", token, exitBody(productID, 10))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Revertir la entrada dejaría el stock en -10
	resp, decoded := doJSON(t, app, http.MethodDelete, "/api/inventory/entries/"+entryID, token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INCONSISTENT_REVERSAL", decoded["code"])

	// La entrada sigue viva
	resp, _ = doJSON(t, app, http.MethodGet, "/api/inventory/entries/"+entryID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_EliminarSalida_ReponeStock(t *testing.T) {
	app := buildAPI(t)
	token := registerAdmin(t, app)
	productID := seedScenario(t, app, token)

	doJSON(t, app, http.MethodPost, "/api/inventory/entries", token, entryBody(productID, 20))
	_, exit := doJSON(t, app, http.MethodPost, "/api/inventory/exits", token, exitBody(productID, 5))
	exitID, _ := exit["id"].(string)
	require.NotEmpty(t, exitID)

	resp, decoded := doJSON(t, app, http.MethodDelete, "/api/inventory/exits/"+exitID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decoded["deleted"])

	_, stock := doJSONList(t, app, "/api/inventory", token)
	require.Len(t, stock, 1)
	assert.Equal(t, "20", stock[0]["quantity"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación y autorización
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_SinToken_Retorna401(t *testing.T) {
	app := buildAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_VendedorNoPuedeRegistrarEntradas(t *testing.T) {
	app := buildAPI(t)
	adminToken := registerAdmin(t, app)
	productID := seedScenario(t, app, adminToken)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": "vendedor@bodega.cl", "name": "Vendedor", "password": "secreto123", "role": "vendedor",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	vendedorToken, _ := body["token"].(string)

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/inventory/entries", vendedorToken, entryBody(productID, 5))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decoded["code"])
}

func TestAPI_LoginConCredencialesInvalidas_Retorna401(t *testing.T) {
	app := buildAPI(t)
	registerAdmin(t, app)

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "admin@bodega.cl", "password": "incorrecta",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decoded["code"])
}

func TestAPI_RutDuplicado_Retorna409(t *testing.T) {
	app := buildAPI(t)
	token := registerAdmin(t, app)
	seedScenario(t, app, token)

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/customers", token, map[string]any{
		"name": "Otra Constructora", "rut": "12.345.678-5", // mismo RUT, otro formato
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decoded["code"])
}

func TestAPI_StockPorProducto(t *testing.T) {
	app := buildAPI(t)
	token := registerAdmin(t, app)
	productID := seedScenario(t, app, token)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/inventory/entries", token, entryBody(productID, 20))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/inventory/exits", token, exitBody(productID, 5))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, decoded := doJSON(t, app, http.MethodGet, "/api/inventory/stock/"+productID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, productID, decoded["product_id"])
	assert.Equal(t, "MAT-001", decoded["sku"])
	assert.Equal(t, "15", decoded["quantity"])
}

// Un id que no es UUID debe responder 404, nunca 500: las columnas de id
// son UUID y el caso de uso lo rechaza antes de consultar.
func TestAPI_IDMalFormado_Retorna404(t *testing.T) {
	app := buildAPI(t)
	token := registerAdmin(t, app)
	seedScenario(t, app, token)

	for _, path := range []string{
		"/api/inventory/entries/abc",
		"/api/inventory/exits/abc",
		"/api/inventory/stock/abc",
		"/api/products/abc",
	} {
		resp, decoded := doJSON(t, app, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, "NOT_FOUND", decoded["code"], path)
	}

	resp, decoded := doJSON(t, app, http.MethodDelete, "/api/inventory/entries/abc", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decoded["code"])
}
