package medicineControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariafernandahr/pharmacy-api/store"
	"github.com/mariafernandahr/pharmacy-api/web"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

func ExportMedicinesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		medicines, err := store.ListMedicines(db)
		if err != nil {
			web.Error(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Medicines")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{"ID", "Name", "DueDate", "Recommendations", "LaboratoryID"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, m := range medicines {
			row := sheet.AddRow()
			row.AddCell().SetValue(m.ID)
			row.AddCell().SetValue(m.Name)
			row.AddCell().SetValue(m.DueDate.Format("2006-01-02 15:04:05"))
			if m.Recommendations != nil {
				row.AddCell().SetValue(*m.Recommendations)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(m.LaboratoryID)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=medicines.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
