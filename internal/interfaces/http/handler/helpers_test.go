package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Daninc24/myshop/internal/domain/catalog"
	"github.com/Daninc24/myshop/internal/domain/identity"
	"github.com/Daninc24/myshop/internal/domain/inventory"
	"github.com/Daninc24/myshop/internal/domain/ordering"
	"github.com/Daninc24/myshop/internal/domain/pos"
	"github.com/Daninc24/myshop/internal/domain/reporting"
	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/Daninc24/myshop/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testLogger = zap.NewNop()

// fakeAuth injects JWT claim values the way the auth middleware would
func fakeAuth(userID uuid.UUID, name, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTUserIDKey, userID.String())
		c.Set(middleware.JWTNameKey, name)
		c.Set(middleware.JWTRoleKey, role)
		c.Next()
	}
}

// noopEventBus discards all published events
type noopEventBus struct{}

func (noopEventBus) Publish(context.Context, ...shared.DomainEvent) error { return nil }
func (noopEventBus) Subscribe(shared.EventHandler, ...string)            {}
func (noopEventBus) Unsubscribe(shared.EventHandler)                     {}
func (noopEventBus) Start(context.Context) error                         { return nil }
func (noopEventBus) Stop(context.Context) error                          { return nil }

// stubProductRepo is an in-memory catalog.ProductRepository
type stubProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newStubProductRepo(products ...*catalog.Product) *stubProductRepo {
	repo := &stubProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *stubProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *stubProductRepo) SaveWithLock(_ context.Context, product *catalog.Product, expectedVersion int) error {
	stored, ok := r.products[product.ID]
	if !ok {
		return shared.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return shared.ErrConcurrencyConflict
	}
	product.Version = expectedVersion + 1
	r.products[product.ID] = product
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.products)), nil
}

// stubLogRepo is an in-memory inventory.LogRepository
type stubLogRepo struct {
	logs []inventory.Log
}

func (r *stubLogRepo) Append(_ context.Context, logs ...*inventory.Log) error {
	for _, l := range logs {
		r.logs = append(r.logs, *l)
	}
	return nil
}

func (r *stubLogRepo) FindByProduct(_ context.Context, productID uuid.UUID, _ shared.Filter) ([]inventory.Log, error) {
	var out []inventory.Log
	for _, l := range r.logs {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLogRepo) FindAll(_ context.Context, _ shared.Filter) ([]inventory.Log, error) {
	return r.logs, nil
}

func (r *stubLogRepo) SumDeltasByProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	var sum int64
	for _, l := range r.logs {
		if l.ProductID == productID {
			sum += int64(l.Delta)
		}
	}
	return sum, nil
}

func (r *stubLogRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.logs)), nil
}

// stubOrderRepo is an in-memory ordering.OrderRepository
type stubOrderRepo struct {
	orders map[uuid.UUID]*ordering.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*ordering.Order)}
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*ordering.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) FindAll(_ context.Context, _ shared.Filter) ([]ordering.Order, error) {
	out := make([]ordering.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) FindByUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]ordering.Order, error) {
	var out []ordering.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) Save(_ context.Context, order *ordering.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *stubOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *stubOrderRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.UserID == userID {
			n++
		}
	}
	return n, nil
}

// stubSaleRepo is an in-memory pos.SaleRepository
type stubSaleRepo struct {
	sales map[uuid.UUID]*pos.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*pos.Sale)}
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*pos.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return s, nil
}

func (r *stubSaleRepo) FindAll(_ context.Context, _ shared.Filter) ([]pos.Sale, error) {
	out := make([]pos.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSaleRepo) FindByCashier(_ context.Context, cashierID uuid.UUID, _ shared.Filter) ([]pos.Sale, error) {
	var out []pos.Sale
	for _, s := range r.sales {
		if s.CashierID == cashierID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSaleRepo) Save(_ context.Context, sale *pos.Sale) error {
	r.sales[sale.ID] = sale
	return nil
}

func (r *stubSaleRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.sales)), nil
}

// stubReportRepo returns canned report rows
type stubReportRepo struct {
	summary     *reporting.SalesSummary
	byStaff     []reporting.StaffSales
	byProduct   []reporting.ProductSales
	byPayment   []reporting.PaymentBreakdown
	zReport     *reporting.ZReport
	bestSelling []reporting.ProductSales
}

func (r *stubReportRepo) GetSalesSummary(context.Context, reporting.SalesReportFilter) (*reporting.SalesSummary, error) {
	return r.summary, nil
}

func (r *stubReportRepo) GetSalesByStaff(context.Context, reporting.SalesReportFilter) ([]reporting.StaffSales, error) {
	return r.byStaff, nil
}

func (r *stubReportRepo) GetSalesByProduct(context.Context, reporting.SalesReportFilter) ([]reporting.ProductSales, error) {
	return r.byProduct, nil
}

func (r *stubReportRepo) GetPaymentBreakdown(context.Context, reporting.SalesReportFilter) ([]reporting.PaymentBreakdown, error) {
	return r.byPayment, nil
}

func (r *stubReportRepo) GetZReport(context.Context, time.Time) (*reporting.ZReport, error) {
	return r.zReport, nil
}

func (r *stubReportRepo) GetBestSellingProducts(context.Context, int) ([]reporting.ProductSales, error) {
	return r.bestSelling, nil
}

// stubUserRepo is an in-memory identity.UserRepository
type stubUserRepo struct {
	users map[uuid.UUID]*identity.User
}

func newStubUserRepo(users ...*identity.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[uuid.UUID]*identity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context, _ shared.Filter) ([]identity.User, error) {
	out := make([]identity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Save(_ context.Context, user *identity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.users)), nil
}

// envelope mirrors the response wrapper for decoding in tests
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
