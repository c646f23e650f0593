package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
	"github.com/glen-sharp/emission-calculator-app/internal/ingest"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store/memory"
)

func newTestService(t *testing.T) (*APIService, store.Store) {
	t.Helper()

	base := filepath.Join("..", "ingest", "testdata", "reference")
	cfg := ingest.Config{
		EmissionFactorDir:   filepath.Join(base, "emission_factors"),
		AirTravelDir:        filepath.Join(base, "air_travel"),
		GoodsAndServicesDir: filepath.Join(base, "purchased_goods_and_services"),
		ElectricityDir:      filepath.Join(base, "electricity"),
	}

	s := memory.NewStore()
	svc, err := NewAPIService(s, ingest.NewOrchestrator(s, cfg))
	require.NoError(t, err)
	return svc, s
}

func do(svc *APIService, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	return rec
}

func authCookie(t *testing.T, svc *APIService) *http.Cookie {
	t.Helper()

	body := `{"email":"jo@example.com","password":"correct horse","first_name":"Jo","last_name":"Bloggs"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body))
	req.Header.Set(echoHeaderContentType, "application/json")
	rec := do(svc, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == constants.CookieKeyAuthToken {
			return c
		}
	}
	t.Fatal("auth cookie not set")
	return nil
}

const echoHeaderContentType = "Content-Type"

func TestHealthz(t *testing.T) {
	svc, _ := newTestService(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmissionsRequiresAuth(t *testing.T) {
	svc, _ := newTestService(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/emissions", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newTestService(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echoHeaderContentType, "application/json")
	rec := do(svc, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestThenReadEmissions(t *testing.T) {
	svc, _ := newTestService(t)
	cookie := authCookie(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest", nil)
	req.AddCookie(cookie)
	rec := do(svc, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var summary ingest.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 14, summary.TotalIngested)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/emissions", nil)
	req.AddCookie(cookie)
	rec = do(svc, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp domain.EmissionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.Emissions.EmissionsArray, 10)
	assert.InDelta(t, 765.402104, resp.Emissions.TotalAirTravelCO2e, 1e-6)
	assert.InDelta(t, 6616.8, resp.Emissions.TotalPurchasedGoodsAndServicesCO2e, 1e-6)
	assert.InDelta(t, 134.0, resp.Emissions.TotalElectricityCO2e, 1e-6)
	assert.InDelta(t, 7516.202104, resp.Emissions.TotalCO2e, 1e-6)
}

func TestLoginAndLogout(t *testing.T) {
	svc, _ := newTestService(t)
	authCookie(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"jo@example.com","password":"correct horse"}`))
	req.Header.Set(echoHeaderContentType, "application/json")
	rec := do(svc, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
