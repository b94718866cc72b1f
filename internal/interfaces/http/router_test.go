package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/order"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/seed"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/usecase"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/memory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/metrics"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/orderfile"
	apphttp "github.com/vinherch/warehouse-zhaw-backend/internal/interfaces/http"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeMailer struct {
	mu   sync.Mutex
	sent []order.Message
}

func (m *fakeMailer) Send(_ context.Context, msg order.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

type testApp struct {
	app    *fiber.App
	mailer *fakeMailer
}

// buildTestApp arma la aplicación como en cmd/api, sobre el almacén en memoria.
// Con seeded=true se cargan los datos del perfil dev.
func buildTestApp(t *testing.T, seeded bool) *testApp {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewFake(time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local))
	log := logger.Nop()
	if seeded {
		_, err := seed.New(store, clk, log).Run(context.Background(), seed.ProfileDev)
		require.NoError(t, err)
	}
	repos := store.Repositories()
	m := metrics.New("test")
	mailer := &fakeMailer{}
	orders := order.NewUseCase(repos.Articles, mailer, order.Config{
		QuantityLimit: 250,
		CustomerName:  "Lager ZHAW",
		CustomerEmail: "einkauf@example.ch",
	}, log, m, orderfile.NewCSVWriter(t.TempDir(), ';'))

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Use(requestid.New())
	apphttp.Router(app, apphttp.RouterDeps{
		StatusUC:         usecase.NewStatusUseCase(repos.Statuses, clk),
		CategoryUC:       usecase.NewCategoryUseCase(repos.Categories, clk),
		CurrencyUC:       usecase.NewCurrencyUseCase(repos.Currencies, clk),
		LocationUC:       usecase.NewLocationUseCase(repos.Locations, clk),
		ArticleUC:        usecase.NewArticleUseCase(repos, clk),
		WarehouseUC:      usecase.NewWarehouseUseCase(repos, clk),
		BarcodeMappingUC: usecase.NewBarcodeMappingUseCase(repos, usecase.ScanDefaults{CategoryID: 1, CurrencyID: 1, StatusID: 1}, clk),
		Export:           inventory.NewCSVExportUseCase(repos),
		Import:           inventory.NewCSVImportUseCase(store, clk, log, m),
		Orders:           orders,
		Metrics:          m.Handler(),
		Log:              log,
	})
	return &testApp{app: app, mailer: mailer}
}

func (a *testApp) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func upload(t *testing.T, a *testApp, filename, contentType, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/warehouses/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestList_DatosIniciales(t *testing.T) {
	a := buildTestApp(t, true)

	resp := a.do(t, http.MethodGet, "/v1/statuses", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	statuses := decode[[]dto.StatusResponse](t, resp)
	require.Len(t, statuses, 3)
	assert.Equal(t, "CREATED", statuses[0].Description)

	resp = a.do(t, http.MethodGet, "/v1/articles/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	art := decode[dto.ArticleResponse](t, resp)
	assert.Equal(t, "Grüner Maxirock", art.Description)
	assert.Equal(t, "Röcke", art.Category.Description)
}

func TestList_VacioDevuelveArreglo(t *testing.T) {
	a := buildTestApp(t, false)
	resp := a.do(t, http.MethodGet, "/v1/barcodemappings", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", readBody(t, resp))
}

func TestGetByID_NoExiste(t *testing.T) {
	a := buildTestApp(t, true)
	resp := a.do(t, http.MethodGet, "/v1/articles/99", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", e.Code)
	assert.Equal(t, "Article does not exist with id: 99", e.Message)
}

func TestGetByID_IDInvalido(t *testing.T) {
	a := buildTestApp(t, true)
	resp := a.do(t, http.MethodGet, "/v1/locations/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCategory_CicloCompleto(t *testing.T) {
	a := buildTestApp(t, false)

	resp := a.do(t, http.MethodPost, "/v1/categories", dto.CategoryRequest{Description: "Sport"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.CategoryResponse](t, resp)
	assert.Equal(t, int64(1), created.Version)

	resp = a.do(t, http.MethodPost, "/v1/categories", dto.CategoryRequest{Description: "Sport"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "ALREADY_EXISTS", e.Code)
	assert.Equal(t, "Category already exists in database!", e.Message)

	resp = a.do(t, http.MethodPut, "/v1/categories/1", dto.CategoryRequest{Description: "Outdoor"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.CategoryResponse](t, resp)
	assert.Equal(t, "Outdoor", updated.Description)
	assert.Equal(t, int64(2), updated.Version)

	resp = a.do(t, http.MethodDelete, "/v1/categories/1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = a.do(t, http.MethodDelete, "/v1/categories/1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp = a.do(t, http.MethodPut, "/v1/categories/1", dto.CategoryRequest{Description: "X"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestArticle_PrecioNoPositivo(t *testing.T) {
	a := buildTestApp(t, true)
	body := map[string]any{
		"description": "Sandale",
		"amount":      -5,
		"category":    map[string]int{"id": 2},
		"currency":    map[string]int{"id": 1},
		"status":      map[string]int{"id": 2},
	}
	resp := a.do(t, http.MethodPost, "/v1/articles", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_FORMAT", e.Code)
	assert.Equal(t, "Please enter a positive number for the amount!", e.Message)

	body["amount"] = 49.9
	resp = a.do(t, http.MethodPost, "/v1/articles", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	art := decode[dto.ArticleResponse](t, resp)
	assert.Equal(t, "49.9", art.Amount.String())
	assert.Equal(t, "Schuhe", art.Category.Description)
}

func TestWarehouse_CantidadInvalida(t *testing.T) {
	a := buildTestApp(t, true)
	resp := a.do(t, http.MethodPut, "/v1/warehouses/1", dto.WarehouseRequest{
		Quantity: 0,
		Article:  dto.RefRequest{ID: 1},
		Location: dto.RefRequest{ID: 1},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestCSV_Export(t *testing.T) {
	a := buildTestApp(t, true)
	resp := a.do(t, http.MethodGet, "/v1/warehouses/csv", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="warehouses.csv"`, resp.Header.Get("Content-Disposition"))

	body := readBody(t, resp)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Warehouse Id,Quantity,Article"))
	assert.Contains(t, lines[1], "Grüner Maxirock")
}

const importHeader = "Article,Category,Amount,CurrencyCode,Country,Status,Aisle,Shelf,Tray,Quantity\n"

func TestUpload(t *testing.T) {
	a := buildTestApp(t, true)

	resp := upload(t, a, "stock.csv", "text/csv", importHeader+
		"Grüner Maxirock,Röcke,89.90,CHF,Schweiz,ACTIVE,A,1,1,150\n"+
		"Laufschuh,Sport,120,CHF,Schweiz,ACTIVE,B,1,1,30\n")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Uploaded the file successfully: stock.csv", readBody(t, resp))

	resp = a.do(t, http.MethodGet, "/v1/articles/1", nil)
	art := decode[dto.ArticleResponse](t, resp)
	assert.Equal(t, "89.9", art.Amount.String())
	assert.Equal(t, int64(2), art.Version)

	resp = a.do(t, http.MethodGet, "/v1/warehouses", nil)
	stock := decode[[]dto.WarehouseResponse](t, resp)
	require.Len(t, stock, 2)
	assert.Equal(t, 150, stock[0].Quantity)
}

func TestUpload_NoEsCSV(t *testing.T) {
	a := buildTestApp(t, true)
	resp := upload(t, a, "stock.json", "application/json", "{}")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please upload a csv file!", readBody(t, resp))
}

func TestUpload_ArchivoInvalido(t *testing.T) {
	a := buildTestApp(t, true)
	resp := upload(t, a, "broken.csv", "text/csv", importHeader+"Sandale,Schuhe,abc,CHF,Schweiz,ACTIVE,A,1,1,5\n")
	require.Equal(t, fiber.StatusExpectationFailed, resp.StatusCode)
	assert.Equal(t, "Could not upload the file: broken.csv!", readBody(t, resp))

	// nada se importó
	resp = a.do(t, http.MethodGet, "/v1/articles", nil)
	assert.Len(t, decode[[]dto.ArticleResponse](t, resp), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escaneo y pedido
// ──────────────────────────────────────────────────────────────────────────────

func TestScan(t *testing.T) {
	a := buildTestApp(t, true)
	resp := a.do(t, http.MethodPost, "/v1/barcodemappings", dto.BarcodeMappingRequest{EAN: "4006381333931", Description: "Stabilo Boss"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = a.do(t, http.MethodPost, "/v1/barcodemappings/scan", dto.ScanRequest{BarcodeNumber: "4006381333931"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	art := decode[dto.ArticleResponse](t, resp)
	assert.Equal(t, "Stabilo Boss", art.Description)
	assert.Equal(t, "Standard", art.Category.Description)
	assert.Equal(t, "CREATED", art.Status.Description)

	resp = a.do(t, http.MethodPost, "/v1/barcodemappings/scan", dto.ScanRequest{BarcodeNumber: "0000000000000"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMail(t *testing.T) {
	a := buildTestApp(t, true)
	resp := a.do(t, http.MethodGet, "/v1/mail", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, a.mailer.sent, 1)
	assert.Equal(t, order.Subject, a.mailer.sent[0].Subject)
	assert.Len(t, a.mailer.sent[0].Attachments, 1)

	resp = a.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `warehouse_order_mails_total{result="sent",service="test"} 1`)
}

func TestMail_SinArticulos(t *testing.T) {
	a := buildTestApp(t, false)
	resp := a.do(t, http.MethodGet, "/v1/mail", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NO_ARTICLES", e.Code)
	assert.Equal(t, "No Articles found to order!", e.Message)
	assert.Empty(t, a.mailer.sent)
}
