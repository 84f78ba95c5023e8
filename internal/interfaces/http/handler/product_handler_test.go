package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/Daninc24/myshop/internal/application/catalog"
	appinv "github.com/Daninc24/myshop/internal/application/inventory"
	"github.com/Daninc24/myshop/internal/domain/catalog"
	"github.com/Daninc24/myshop/internal/domain/reporting"
)

type productTestEnv struct {
	engine      *gin.Engine
	productRepo *stubProductRepo
	logRepo     *stubLogRepo
	adminID     uuid.UUID
}

func newProductTestEnv(t *testing.T, role string, products ...*catalog.Product) *productTestEnv {
	t.Helper()

	productRepo := newStubProductRepo(products...)
	logRepo := &stubLogRepo{}
	reportRepo := &stubReportRepo{
		bestSelling: []reporting.ProductSales{
			{Title: "Espresso Beans", TotalQuantity: 42},
		},
	}

	txScope := appinv.NewNoOpTransactionScope(productRepo, logRepo, nil, nil)
	productService := appcatalog.NewProductService(productRepo, reportRepo, txScope, noopEventBus{}, testLogger)
	logService := appinv.NewLogService(logRepo, productRepo, testLogger)

	adminID := uuid.New()
	handler := NewProductHandler(productService, logService, fakeAuth(adminID, "Admin", role))

	engine := gin.New()
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)

	return &productTestEnv{
		engine:      engine,
		productRepo: productRepo,
		logRepo:     logRepo,
		adminID:     adminID,
	}
}

func mustNewProduct(t *testing.T, title string, price string, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(title, "", decimal.RequireFromString(price), stock, "grocery")
	require.NoError(t, err)
	return product
}

func (env *productTestEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	return w
}

func TestProductHandlerList(t *testing.T) {
	env := newProductTestEnv(t, "admin",
		mustNewProduct(t, "Espresso Beans", "12.50", 10),
		mustNewProduct(t, "Oat Milk", "3.20", 25),
	)

	w := env.do(http.MethodGet, "/api/v1/products", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env2 := decodeEnvelope(t, w)
	assert.True(t, env2.Success)

	var items []appcatalog.ProductResponse
	require.NoError(t, json.Unmarshal(env2.Data, &items))
	assert.Len(t, items, 2)
}

func TestProductHandlerGet(t *testing.T) {
	product := mustNewProduct(t, "Espresso Beans", "12.50", 10)
	env := newProductTestEnv(t, "admin", product)

	t.Run("found", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/v1/products/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/v1/products/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandlerBestSelling(t *testing.T) {
	env := newProductTestEnv(t, "admin")

	w := env.do(http.MethodGet, "/api/v1/products/best-selling", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Espresso Beans")
}

func TestProductHandlerCreate(t *testing.T) {
	t.Run("admin creates product", func(t *testing.T) {
		env := newProductTestEnv(t, "admin")

		w := env.do(http.MethodPost, "/api/v1/products", gin.H{
			"title": "Espresso Beans",
			"price": "12.50",
			"stock": 10,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, env.productRepo.products, 1)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		env := newProductTestEnv(t, "admin")

		w := env.do(http.MethodPost, "/api/v1/products", gin.H{
			"price": "12.50",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		env := newProductTestEnv(t, "user")

		w := env.do(http.MethodPost, "/api/v1/products", gin.H{
			"title": "Espresso Beans",
			"price": "12.50",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestProductHandlerAdjustStock(t *testing.T) {
	t.Run("adjustment updates stock and logs", func(t *testing.T) {
		product := mustNewProduct(t, "Espresso Beans", "12.50", 10)
		env := newProductTestEnv(t, "admin", product)

		w := env.do(http.MethodPut, "/api/v1/products/"+product.ID.String()+"/stock", gin.H{
			"delta":  -4,
			"reason": "manual_adjustment",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 6, env.productRepo.products[product.ID].Stock)
		require.Len(t, env.logRepo.logs, 1)
		assert.Equal(t, -4, env.logRepo.logs[0].Delta)
		assert.Equal(t, env.adminID, env.logRepo.logs[0].UserID)
	})

	t.Run("overdraw is rejected without a log entry", func(t *testing.T) {
		product := mustNewProduct(t, "Espresso Beans", "12.50", 3)
		env := newProductTestEnv(t, "admin", product)

		w := env.do(http.MethodPut, "/api/v1/products/"+product.ID.String()+"/stock", gin.H{
			"delta": -5,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env2 := decodeEnvelope(t, w)
		assert.Equal(t, "ERR_INSUFFICIENT_STOCK", env2.Error.Code)
		assert.Equal(t, 3, env.productRepo.products[product.ID].Stock)
		assert.Empty(t, env.logRepo.logs)
	})
}

func TestProductHandlerLogs(t *testing.T) {
	product := mustNewProduct(t, "Espresso Beans", "12.50", 10)
	env := newProductTestEnv(t, "admin", product)

	w := env.do(http.MethodPut, "/api/v1/products/"+product.ID.String()+"/stock", gin.H{"delta": 5})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("per-product trail", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/v1/products/"+product.ID.String()+"/logs", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var items []appinv.LogResponse
		env2 := decodeEnvelope(t, w)
		require.NoError(t, json.Unmarshal(env2.Data, &items))
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Delta)
	})

	t.Run("reconciliation derives initial stock", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/v1/products/"+product.ID.String()+"/logs/reconcile", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var rec appinv.ReconciliationResponse
		env2 := decodeEnvelope(t, w)
		require.NoError(t, json.Unmarshal(env2.Data, &rec))
		assert.Equal(t, 15, rec.CurrentStock)
		assert.Equal(t, int64(5), rec.LoggedDelta)
		assert.Equal(t, int64(10), rec.InitialStock)
	})
}

func TestProductHandlerDelete(t *testing.T) {
	product := mustNewProduct(t, "Espresso Beans", "12.50", 10)
	env := newProductTestEnv(t, "admin", product)

	w := env.do(http.MethodDelete, "/api/v1/products/"+product.ID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, env.productRepo.products)
}
