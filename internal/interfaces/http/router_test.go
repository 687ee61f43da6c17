package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicklcsdev/inventario-api/internal/application/auth"
	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
	"github.com/nicklcsdev/inventario-api/internal/application/reporte"
	"github.com/nicklcsdev/inventario-api/internal/application/usecase"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
	"github.com/nicklcsdev/inventario-api/internal/infrastructure/memory"
	apphttp "github.com/nicklcsdev/inventario-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type fakeLLM struct{}

func (fakeLLM) GenerarDescripcion(_ context.Context, nombre, _ string) (string, error) {
	return `"` + nombre + ` ideal para tu oficina."`, nil
}

func (fakeLLM) ExtraerProducto(_ context.Context, _ string) (*dto.ProductoBorrador, error) {
	return &dto.ProductoBorrador{
		Codigo:  "tec-009",
		Nombre:  "Teclado mecánico",
		Precios: map[string]decimal.Decimal{"cop": decimal.NewFromInt(250000)},
	}, nil
}

type fakeSTT struct{}

func (fakeSTT) Transcribir(_ context.Context, _ io.Reader, _ string) (string, error) {
	return "teclado mecánico código tec cero cero nueve a doscientos cincuenta mil pesos", nil
}

type fakePDF struct{}

func (fakePDF) GenerarInventarioPDF(_ context.Context, _ reporte.Inventario) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), nil
}

type fakeSender struct{ sent int }

func (f *fakeSender) EnviarReporte(_ context.Context, _ reporte.Correo) error {
	f.sent++
	return nil
}

type brokenEmpresaRepo struct{}

var errDB = errors.New("dial tcp 10.0.0.5:5432: connection refused")

func (brokenEmpresaRepo) Save(context.Context, *entity.Empresa) (*entity.Empresa, error) {
	return nil, errDB
}
func (brokenEmpresaRepo) GetByNIT(context.Context, string) (*entity.Empresa, error) {
	return nil, errDB
}
func (brokenEmpresaRepo) ListAll(context.Context) ([]*entity.Empresa, error) { return nil, errDB }
func (brokenEmpresaRepo) Delete(context.Context, string) error               { return errDB }

var _ repository.EmpresaRepository = brokenEmpresaRepo{}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type testServer struct {
	app    *fiber.App
	sender *fakeSender
	admin  string
	reader string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	empresaRepo := memory.NewEmpresaRepository(store)
	productoRepo := memory.NewProductoRepository(store)

	authUC := auth.NewAuthUseCase(memory.NewUserRepository(store), auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	generar := reporte.NewGenerarReporteUseCase(empresaRepo, productoRepo, fakePDF{})
	sender := &fakeSender{}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		EmpresaUC:        usecase.NewEmpresaUseCases(empresaRepo),
		ProductoUC:       usecase.NewProductoUseCases(productoRepo),
		AuthUC:           authUC,
		AIUC:             usecase.NewAIUseCase(fakeLLM{}, fakeSTT{}),
		Reporte:          generar,
		EnviarReporte:    reporte.NewEnviarReporteEmailUseCase(generar, sender),
		ImportarCatalogo: inventory.NewImportarCatalogoUseCase(memory.NewTxRunner(store)),
		Metrics:          apphttp.NewMetrics(),
		JWTSecret:        testJWTSecret,
		ServiceName:      "inventario-api-test",
	})

	return &testServer{
		app:    app,
		sender: sender,
		admin:  tokenForRole(t, entity.RoleAdmin),
		reader: tokenForRole(t, entity.RoleVisitante),
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
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
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

var acme = dto.EmpresaRequest{
	NIT:       "900847362-4",
	Nombre:    "NicklcsDev S.A.S",
	Direccion: "Calle 100 # 15-20, Bogotá",
	Telefono:  "3001234567",
}

func (s *testServer) crearEmpresa(t *testing.T) {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/empresas", s.admin, acme)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func (s *testServer) crearProducto(t *testing.T, codigo string) dto.ProductoResponse {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/productos", s.admin, map[string]interface{}{
		"codigo":          codigo,
		"nombre":          "Mouse inalámbrico",
		"caracteristicas": "2.4GHz, 1600 DPI",
		"empresa":         acme.NIT,
		"precios":         map[string]interface{}{"COP": 85000, "usd": "21.50"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ProductoResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetrics_ExponeContadores(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/health", "", nil)

	resp := s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `http_requests_total{method="GET",path="/health",status="200"} 1`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegisterYLogin(t *testing.T) {
	s := newTestServer(t)
	creds := dto.RegisterRequest{Email: "visitante@Test.COM", Password: "123456"}

	resp := s.do(t, http.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "visitante@test.com", user.Email)
	assert.False(t, user.IsAdmin)

	resp = s.do(t, http.MethodPost, "/api/auth/register", "", creds)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "visitante@test.com", Password: "123456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, login.Token)
	assert.False(t, login.IsAdmin)

	// el token emitido sirve para leer
	resp = s.do(t, http.MethodGet, "/api/empresas", "Bearer "+login.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "visitante@test.com", Password: "otra"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_RegisterPasswordCorta(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Email: "a@b.co", Password: "123"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpresas_CRUD(t *testing.T) {
	s := newTestServer(t)
	s.crearEmpresa(t)

	resp := s.do(t, http.MethodPost, "/api/empresas", s.admin, acme)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/empresas", s.reader, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.EmpresaResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, acme.NIT, list[0].NIT)

	nuevo := "NicklcsDev Colombia S.A.S"
	resp = s.do(t, http.MethodPut, "/api/empresas/"+acme.NIT, s.admin, dto.ActualizarEmpresaRequest{Nombre: &nuevo})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.EmpresaResponse](t, resp)
	assert.Equal(t, nuevo, updated.Nombre)
	assert.Equal(t, acme.Telefono, updated.Telefono)

	resp = s.do(t, http.MethodGet, "/api/empresas/"+acme.NIT, s.reader, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, nuevo, decode[dto.EmpresaResponse](t, resp).Nombre)

	resp = s.do(t, http.MethodDelete, "/api/empresas/"+acme.NIT, s.admin, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/empresas/"+acme.NIT, s.reader, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmpresas_Validacion(t *testing.T) {
	s := newTestServer(t)
	bad := acme
	bad.Telefono = "12ab"

	resp := s.do(t, http.MethodPost, "/api/empresas", s.admin, bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	// un NIT más largo que la columna es 400, no una falla del almacenamiento
	largo := acme
	largo.NIT = "123456789012345678901"
	resp = s.do(t, http.MethodPost, "/api/empresas", s.admin, largo)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestEmpresas_Permisos(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/empresas", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/empresas", s.reader, acme)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/api/empresas/"+acme.NIT, s.reader, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEmpresas_EliminarArrastraProductos(t *testing.T) {
	s := newTestServer(t)
	s.crearEmpresa(t)
	p := s.crearProducto(t, "TEC-001")

	resp := s.do(t, http.MethodDelete, "/api/empresas/"+acme.NIT, s.admin, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/productos/"+itoa(p.ID), s.reader, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmpresas_ErrorInfraestructura(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		EmpresaUC:  usecase.NewEmpresaUseCases(brokenEmpresaRepo{}),
		ProductoUC: usecase.NewProductoUseCases(memory.NewProductoRepository(memory.NewStore())),
		JWTSecret:  testJWTSecret,
	})
	req := httptest.NewRequest(http.MethodGet, "/api/empresas", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, body.Message, "10.0.0.5", "la causa no se filtra al cliente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CRUD(t *testing.T) {
	s := newTestServer(t)
	s.crearEmpresa(t)
	p := s.crearProducto(t, "TEC-001")

	assert.NotZero(t, p.ID)
	assert.True(t, p.Precios["USD"].Equal(decimal.RequireFromString("21.5")), "la moneda se normaliza")

	resp := s.do(t, http.MethodPost, "/api/productos", s.admin, map[string]interface{}{
		"codigo": "TEC-001", "nombre": "Otro", "empresa": acme.NIT,
		"precios": map[string]interface{}{"COP": 1},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/productos/"+itoa(p.ID), s.reader, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "TEC-001", decode[dto.ProductoResponse](t, resp).Codigo)

	resp = s.do(t, http.MethodPut, "/api/productos/"+itoa(p.ID), s.admin, map[string]interface{}{
		"precios": map[string]interface{}{"EUR": "19.99"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.ProductoResponse](t, resp)
	assert.Len(t, updated.Precios, 1)
	assert.Equal(t, "Mouse inalámbrico", updated.Nombre)

	resp = s.do(t, http.MethodDelete, "/api/productos/"+itoa(p.ID), s.admin, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/api/productos/"+itoa(p.ID), s.admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductos_ListarYFiltrar(t *testing.T) {
	s := newTestServer(t)
	s.crearEmpresa(t)
	s.crearProducto(t, "TEC-001")
	s.crearProducto(t, "TEC-002")

	resp := s.do(t, http.MethodGet, "/api/productos", s.reader, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ProductoResponse](t, resp), 2)

	resp = s.do(t, http.MethodGet, "/api/productos?empresa="+acme.NIT, s.reader, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ProductoResponse](t, resp), 2)

	resp = s.do(t, http.MethodGet, "/api/empresas/"+acme.NIT+"/productos", s.reader, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ProductoResponse](t, resp), 2)

	resp = s.do(t, http.MethodGet, "/api/productos?empresa=111-1", s.reader, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]dto.ProductoResponse](t, resp))
}

func TestProductos_EntradaInvalida(t *testing.T) {
	s := newTestServer(t)
	s.crearEmpresa(t)

	resp := s.do(t, http.MethodGet, "/api/productos/abc", s.reader, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decode[dto.ErrorResponse](t, resp).Code)

	resp = s.do(t, http.MethodPost, "/api/productos", s.admin, map[string]interface{}{
		"codigo": "X-1", "nombre": "X", "empresa": acme.NIT,
		"precios": map[string]interface{}{"COP": -5},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	resp = s.do(t, http.MethodPost, "/api/productos", s.admin, map[string]interface{}{
		"codigo": "X-1", "nombre": "X", "empresa": acme.NIT,
		"precios": map[string]interface{}{"COP": "mucho"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)

	resp = s.do(t, http.MethodPost, "/api/productos", s.admin, map[string]interface{}{
		"codigo": "X-1", "nombre": "X", "empresa": "111-1",
		"precios": map[string]interface{}{"COP": 5},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReporte_Descargar(t *testing.T) {
	s := newTestServer(t)
	s.crearEmpresa(t)
	s.crearProducto(t, "TEC-001")

	resp := s.do(t, http.MethodGet, "/api/productos/reporte", s.reader, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario.pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp = s.do(t, http.MethodGet, "/api/productos/reporte?empresa=111-1", s.reader, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReporte_EnviarEmail(t *testing.T) {
	s := newTestServer(t)
	s.crearEmpresa(t)
	s.crearProducto(t, "TEC-001")

	resp := s.do(t, http.MethodPost, "/api/productos/reporte/email", s.reader, dto.EnviarReporteRequest{Email: "no-es-correo"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, s.sender.sent)

	resp = s.do(t, http.MethodPost, "/api/productos/reporte/email", s.reader, dto.EnviarReporteRequest{Email: "gerencia@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.EnviarReporteResponse](t, resp)
	assert.Equal(t, "gerencia@example.com", out.Destino)
	assert.Equal(t, 1, out.Items)
	assert.Equal(t, 1, s.sender.sent)
}

// ──────────────────────────────────────────────────────────────────────────────
// IA
// ──────────────────────────────────────────────────────────────────────────────

func TestAI_GenerarDescripcion(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/productos/generar-descripcion", s.reader, dto.DescripcionRequest{Nombre: "Silla ergonómica"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Silla ergonómica ideal para tu oficina.", decode[dto.DescripcionResponse](t, resp).Descripcion)

	resp = s.do(t, http.MethodPost, "/api/productos/generar-descripcion", s.reader, dto.DescripcionRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAI_ProductoDesdeVoz(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("audio", "dictado.webm")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-audio"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/productos/voz", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", s.reader)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.VozResponse](t, resp)
	assert.NotEmpty(t, out.Transcripcion)
	assert.Equal(t, "TEC-009", out.Producto.Codigo)
	assert.Contains(t, out.Producto.Precios, "COP")
}

func TestAI_ProductoDesdeVoz_SinAudio(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/productos/voz", s.reader, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MISSING_AUDIO", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogo_Importar(t *testing.T) {
	s := newTestServer(t)
	catalogo := dto.CatalogoRequest{
		Empresa: acme,
		Productos: []dto.CatalogoProductoRequest{
			{Codigo: "TEC-001", Nombre: "Mouse", Precios: map[string]decimal.Decimal{"COP": decimal.NewFromInt(85000)}},
			{Codigo: "TEC-002", Nombre: "Teclado", Precios: map[string]decimal.Decimal{"COP": decimal.NewFromInt(120000)}},
		},
	}

	resp := s.do(t, http.MethodPost, "/api/catalogo/importar", s.reader, catalogo)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/catalogo/importar", s.admin, catalogo)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.CatalogoResponse](t, resp)
	assert.Equal(t, acme.NIT, out.Empresa.NIT)
	assert.Len(t, out.Productos, 2)

	// un producto inválido aborta todo el catálogo
	catalogo.Productos[1].Precios = nil
	catalogo.Productos[0].Nombre = "Mouse v2"
	resp = s.do(t, http.MethodPost, "/api/catalogo/importar", s.admin, catalogo)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/productos", s.reader, nil)
	list := decode[[]dto.ProductoResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "Mouse", list[0].Nombre)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
