package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

// ExportProductsToExcel streams the live inventory as an .xlsx download.
func ExportProductsToExcel(inv *store.InventoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := inv.List()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Inventory")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Category", "Price", "InStock", "Badge", "Popular", "Description"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.InStock)
			row.AddCell().SetValue(string(p.Badge))
			row.AddCell().SetValue(p.IsPopular)
			row.AddCell().SetValue(p.Description)
		}

		c.Header("Content-Disposition", "attachment; filename=inventory.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
