package adminControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/Franxho892/Gourmet-Express-Frontend/backend"
)

func exportRouter(t *testing.T, handler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	r := gin.New()
	r.GET("/admin/export", ExportReservationsToExcel(backend.NewReservationClient(srv.URL, nil)))
	return r
}

func TestExportWritesOneRowPerReservation(t *testing.T) {
	r := exportRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[
			{"id":905,"fecha":"2026-03-12","hora":"20:00","personas":4,"nombre":"Ana","telefono":"+56911111111","status":"PENDIENTE"},
			{"id":906,"fecha":"2026-03-13","hora":"13:00","personas":2,"nombre":"Luis","telefono":"+56922222222","status":"CONFIRMADA"}
		]`))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/export", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "reservas_")

	file, err := xlsx.OpenBinary(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.Len(t, sheet.Rows, 3, "header plus one row per reservation")
	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "905", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "Ana", sheet.Rows[1].Cells[4].Value)
	assert.Equal(t, "CONFIRMADA", sheet.Rows[2].Cells[6].Value)
}

func TestExportBackendDown(t *testing.T) {
	r := exportRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/export", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "No se pudieron cargar las reservas")
}
