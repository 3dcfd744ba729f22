package adminControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Franxho892/Gourmet-Express-Frontend/backend"
)

// GET /admin/export — downloads every reservation as a spreadsheet.
func ExportReservationsToExcel(reservations *backend.ReservationClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := reservations.All()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron cargar las reservas desde el backend."})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Reservas")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Fecha", "Hora", "Personas", "Nombre", "Telefono", "Status"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, r := range all {
			row := sheet.AddRow()
			row.AddCell().SetValue(r.ID)
			row.AddCell().SetValue(r.Fecha)
			row.AddCell().SetValue(r.Hora)
			row.AddCell().SetValue(r.Personas)
			row.AddCell().SetValue(r.Nombre)
			row.AddCell().SetValue(r.Telefono)
			row.AddCell().SetValue(r.Status)
		}

		filename := "reservas_" + time.Now().Format("2006-01-02") + ".xlsx"
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
