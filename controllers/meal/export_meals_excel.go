package mealController

import (
	"net/http"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

func ExportMealsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var meals []models.Meal
		if err := db.Preload("Category").Find(&meals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Meals")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "CategoryID", "Category",
			"Image", "Available", "Featured", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, m := range meals {
			row := sheet.AddRow()
			row.AddCell().SetValue(m.ID)
			row.AddCell().SetValue(m.Name)
			row.AddCell().SetValue(m.Description)
			row.AddCell().SetValue(m.Price)
			row.AddCell().SetValue(m.CategoryID)
			row.AddCell().SetValue(m.Category.Name)
			row.AddCell().SetValue(m.Image)
			row.AddCell().SetValue(m.Available)
			row.AddCell().SetValue(m.Featured)
			row.AddCell().SetValue(m.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=meals.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
