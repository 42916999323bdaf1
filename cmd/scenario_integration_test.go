package cmd_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"cafeteria/cmd"
	"cafeteria/internal/adapters/out/postgres/pgtest"
	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ScenarioIntegrationTestSuite struct {
	suite.Suite
	ctx  context.Context
	db   *pgtest.Database
	root *cmd.CompositionRoot
	echo *echo.Echo
}

func (suite *ScenarioIntegrationTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	db, err := pgtest.Start(suite.ctx)
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ScenarioIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Truncate(suite.ctx))

	cfg := cmd.Config{
		SessionSecret:  "scenario-secret",
		SessionTTL:     time.Hour,
		RequestTimeout: 5 * time.Second,
		Location:       time.UTC,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	root, err := cmd.NewCompositionRoot(cfg, suite.db.Connections, nil, logger)
	suite.Require().NoError(err)
	suite.root = root
	suite.echo = root.CreateHTTPHandler()
}

func (suite *ScenarioIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		_ = suite.db.Stop(suite.ctx)
	}
}

func (suite *ScenarioIntegrationTestSuite) TestOrderLifecycle() {
	adminToken := suite.createAdminAndLogin("admin@example.com")

	rec := suite.do(http.MethodPost, "/api/v1/auth/register",
		`{"name":"Ann","email":"Ann@Example.com","password":"secret1","role":"teacher"}`, "")
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var registered servers.User
	suite.decode(rec, &registered)
	suite.Equal("ann@example.com", registered.Email)
	suite.Equal(servers.Teacher, registered.Role)

	customerToken := suite.login("ann@example.com", "secret1")

	rec = suite.do(http.MethodPost, "/api/v1/products",
		`{"name":"Espresso","price":3.00,"category":"beverage"}`, customerToken)
	suite.Require().Equal(http.StatusForbidden, rec.Code)

	rec = suite.do(http.MethodPost, "/api/v1/products",
		`{"name":"Espresso","price":3.00,"category":"beverage"}`, adminToken)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var espresso servers.Product
	suite.decode(rec, &espresso)
	suite.True(espresso.Available)

	rec = suite.do(http.MethodPost, "/api/v1/orders",
		`{"items":[{"product_id":`+strconv.FormatInt(espresso.Id, 10)+`,"quantity":2}]}`, customerToken)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created servers.Order
	suite.decode(rec, &created)
	suite.Equal(servers.Pending, created.Status)
	suite.InDelta(6.00, created.Total, 0.0001)
	suite.Require().Len(created.Lines, 1)
	suite.Equal("Espresso", created.Lines[0].ProductName)
	orderPath := "/api/v1/orders/" + created.Id.String()

	suite.expectStatus(orderPath, `{"status":"ready"}`, adminToken, http.StatusOK, "")
	suite.expectStatus(orderPath, `{"status":"delivered"}`, customerToken, http.StatusForbidden, servers.Forbidden)
	suite.expectStatus(orderPath, `{"status":"delivered"}`, adminToken, http.StatusOK, "")
	suite.expectStatus(orderPath, `{"status":"cancelled"}`, adminToken, http.StatusBadRequest, servers.InvalidTransition)

	rec = suite.do(http.MethodPatch, "/api/v1/products/"+strconv.FormatInt(espresso.Id, 10),
		`{"price":4.00}`, adminToken)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodGet, orderPath, "", customerToken)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var delivered servers.Order
	suite.decode(rec, &delivered)
	suite.Equal(servers.Delivered, delivered.Status)
	suite.InDelta(6.00, delivered.Total, 0.0001)

	rec = suite.do(http.MethodGet, "/api/v1/users/me/stats", "", customerToken)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var stats servers.UserStats
	suite.decode(rec, &stats)
	suite.Equal(int64(1), stats.OrderCount)
	suite.InDelta(6.00, stats.TotalSpent, 0.0001)
	suite.Require().NotNil(stats.FavouriteProduct)
	suite.Equal("Espresso", stats.FavouriteProduct.Name)

	rec = suite.do(http.MethodGet, "/api/v1/admin/stats", "", adminToken)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var adminStats servers.AdminStats
	suite.decode(rec, &adminStats)
	suite.Equal(int64(1), adminStats.TotalOrders)
	suite.Equal(int64(1), adminStats.DeliveredOrders)
	suite.InDelta(6.00, adminStats.SalesToday, 0.0001)
}

func (suite *ScenarioIntegrationTestSuite) TestCustomersSeeOnlyTheirOrders() {
	adminToken := suite.createAdminAndLogin("admin@example.com")
	productID := suite.createProduct(adminToken, "Croissant", "2.50", "food")

	first := suite.registerAndLogin("ann@example.com")
	second := suite.registerAndLogin("bob@example.com")

	body := `{"product_id":` + strconv.FormatInt(productID, 10) + `,"quantity":1}`
	rec := suite.do(http.MethodPost, "/api/v1/orders", body, first)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var order servers.Order
	suite.decode(rec, &order)

	rec = suite.do(http.MethodGet, "/api/v1/orders", "", second)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var listed []servers.Order
	suite.decode(rec, &listed)
	suite.Empty(listed)

	rec = suite.do(http.MethodGet, "/api/v1/orders/"+order.Id.String(), "", second)
	suite.Equal(http.StatusForbidden, rec.Code)

	suite.expectStatus("/api/v1/orders/"+order.Id.String(), `{"status":"cancelled"}`, second,
		http.StatusForbidden, servers.Forbidden)
	suite.expectStatus("/api/v1/orders/"+order.Id.String(), `{"status":"cancelled"}`, first,
		http.StatusOK, "")

	rec = suite.do(http.MethodGet, "/api/v1/orders?status=cancelled", "", adminToken)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.decode(rec, &listed)
	suite.Len(listed, 1)
}

func (suite *ScenarioIntegrationTestSuite) TestUnavailableProductCannotBeOrdered() {
	adminToken := suite.createAdminAndLogin("admin@example.com")
	productID := suite.createProduct(adminToken, "Cake", "4.00", "dessert")
	customer := suite.registerAndLogin("ann@example.com")

	rec := suite.do(http.MethodPatch, "/api/v1/products/"+strconv.FormatInt(productID, 10),
		`{"available":false}`, adminToken)
	suite.Require().Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodPost, "/api/v1/orders",
		`{"product_id":`+strconv.FormatInt(productID, 10)+`,"quantity":1}`, customer)
	suite.Require().Equal(http.StatusNotFound, rec.Code)
	suite.Equal(servers.ProductUnavailable, suite.decodeError(rec).Kind)

	rec = suite.do(http.MethodGet, "/api/v1/products", "", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var products []servers.Product
	suite.decode(rec, &products)
	suite.Empty(products)

	rec = suite.do(http.MethodGet, "/api/v1/products/all", "", adminToken)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.decode(rec, &products)
	suite.Len(products, 1)
}

func (suite *ScenarioIntegrationTestSuite) TestSessionsEndOnLogoutAndDeactivation() {
	adminToken := suite.createAdminAndLogin("admin@example.com")
	customer := suite.registerAndLogin("ann@example.com")

	rec := suite.do(http.MethodPost, "/api/v1/auth/logout", "", customer)
	suite.Require().Equal(http.StatusNoContent, rec.Code)
	rec = suite.do(http.MethodGet, "/api/v1/auth/me", "", customer)
	suite.Equal(http.StatusUnauthorized, rec.Code)

	customer = suite.login("ann@example.com", "secret1")
	rec = suite.do(http.MethodGet, "/api/v1/auth/me", "", customer)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var me servers.User
	suite.decode(rec, &me)

	rec = suite.do(http.MethodPatch, "/api/v1/users/"+strconv.FormatInt(me.Id, 10), `{"active":false}`, adminToken)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodGet, "/api/v1/auth/me", "", customer)
	suite.Equal(http.StatusUnauthorized, rec.Code)

	rec = suite.do(http.MethodPost, "/api/v1/auth/login", `{"email":"ann@example.com","password":"secret1"}`, "")
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *ScenarioIntegrationTestSuite) TestRegistrationCannotChooseAdmin() {
	rec := suite.do(http.MethodPost, "/api/v1/auth/register",
		`{"name":"Eve","email":"eve@example.com","password":"secret1","role":"admin"}`, "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal(servers.InvalidInput, suite.decodeError(rec).Kind)

	rec = suite.do(http.MethodPost, "/api/v1/auth/register",
		`{"name":"Eve","email":"eve@example.com","password":"secret1"}`, "")
	suite.Require().Equal(http.StatusCreated, rec.Code)

	rec = suite.do(http.MethodPost, "/api/v1/auth/register",
		`{"name":"Eve","email":"EVE@example.com","password":"secret1"}`, "")
	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *ScenarioIntegrationTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/api/v1/health", "", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"status":"ok","checks":{"postgres":"ok"}}`, rec.Body.String())
}

func (suite *ScenarioIntegrationTestSuite) createAdminAndLogin(email string) string {
	registerCmd, err := commands.NewRegisterAdminCommand("Admin", email, "secret1")
	suite.Require().NoError(err)

	handler := suite.root.CreateRegisterUserCommandHandler()
	_, err = handler.Handle(suite.ctx, registerCmd)
	suite.Require().NoError(err)

	return suite.login(email, "secret1")
}

func (suite *ScenarioIntegrationTestSuite) registerAndLogin(email string) string {
	rec := suite.do(http.MethodPost, "/api/v1/auth/register",
		`{"name":"Customer","email":"`+email+`","password":"secret1"}`, "")
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return suite.login(email, "secret1")
}

func (suite *ScenarioIntegrationTestSuite) login(email, password string) string {
	rec := suite.do(http.MethodPost, "/api/v1/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`, "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var res servers.LoginResponse
	suite.decode(rec, &res)
	suite.Require().NotEmpty(res.Token)
	return res.Token
}

func (suite *ScenarioIntegrationTestSuite) createProduct(token, name, price, category string) int64 {
	rec := suite.do(http.MethodPost, "/api/v1/products",
		`{"name":"`+name+`","price":`+price+`,"category":"`+category+`"}`, token)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var p servers.Product
	suite.decode(rec, &p)
	return p.Id
}

func (suite *ScenarioIntegrationTestSuite) expectStatus(
	path, body, token string,
	wantCode int,
	wantKind servers.ErrorKind,
) {
	rec := suite.do(http.MethodPatch, path, body, token)
	suite.Require().Equal(wantCode, rec.Code, rec.Body.String())
	if wantKind != "" {
		suite.Equal(wantKind, suite.decodeError(rec).Kind)
	}
}

func (suite *ScenarioIntegrationTestSuite) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *ScenarioIntegrationTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (suite *ScenarioIntegrationTestSuite) decodeError(rec *httptest.ResponseRecorder) servers.Error {
	var body servers.Error
	suite.decode(rec, &body)
	return body
}

func TestScenarioIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioIntegrationTestSuite))
}
