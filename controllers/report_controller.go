package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/meCodeKo/siverek-depo/models"
	"github.com/meCodeKo/siverek-depo/repository"
	"github.com/meCodeKo/siverek-depo/utils"
)

const (
	ReportInventorySummary  = "inventory-summary"
	ReportLowStock          = "low-stock"
	ReportStockMovements    = "stock-movements"
	ReportCategoryBreakdown = "category-breakdown"
)

func reportFilterFromQuery(c *fiber.Ctx) (ReportFilter, error) {
	f := ReportFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Location: c.Query("location"),
		LowStock: c.Query("lowStock") == "true",
	}
	if f.Status != "" && !models.ValidStatus(f.Status) {
		return f, errors.New("unknown status")
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, errors.New("from must be YYYY-MM-DD")
		}
		f.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, errors.New("to must be YYYY-MM-DD")
		}
		f.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	return f, nil
}

func buildReport(reportType string, f ReportFilter) (interface{}, error) {
	items, err := repository.GetAllItems()
	if err != nil {
		return nil, err
	}
	items = FilterItems(items, f)

	switch reportType {
	case ReportInventorySummary:
		cats, err := repository.GetAllCategories()
		if err != nil {
			return nil, err
		}
		locs, err := repository.GetAllLocations()
		if err != nil {
			return nil, err
		}
		return BuildInventorySummary(items, cats, locs), nil

	case ReportLowStock:
		cats, err := repository.GetAllCategories()
		if err != nil {
			return nil, err
		}
		return BuildLowStock(items, cats), nil

	case ReportStockMovements:
		txs, err := repository.QueryTransactions(models.TransactionFilter{From: f.From, To: f.To})
		if err != nil {
			return nil, err
		}
		return BuildStockMovements(txs, items), nil

	case ReportCategoryBreakdown:
		cats, err := repository.GetAllCategories()
		if err != nil {
			return nil, err
		}
		return BuildCategoryBreakdown(items, cats), nil

	default:
		return nil, fmt.Errorf("%w: unknown report type %q", models.ErrValidation, reportType)
	}
}

// GetReport builds the report named by ?type= over the optionally filtered
// item set.
func GetReport(c *fiber.Ctx) error {
	f, err := reportFilterFromQuery(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	data, err := buildReport(c.Query("type", ReportInventorySummary), f)
	if err != nil {
		return failErr(c, err)
	}
	return utils.OK(c, data)
}

// GetStatistics serves the dashboard counters.
func GetStatistics(c *fiber.Ctx) error {
	items, err := repository.GetAllItems()
	if err != nil {
		return failErr(c, err)
	}
	return utils.OK(c, BuildStatistics(items))
}

// ExportExcel streams the requested report as an .xlsx workbook.
func ExportExcel(c *fiber.Ctx) error {
	f, err := reportFilterFromQuery(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	reportType := c.Query("type", ReportInventorySummary)
	data, err := buildReport(reportType, f)
	if err != nil {
		return failErr(c, err)
	}

	wb := excelize.NewFile()
	headerStyle, _ := wb.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	sheet := "Report"
	wb.SetSheetName("Sheet1", sheet)

	writeHeaders := func(headers []string) {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			wb.SetCellValue(sheet, cell, h)
			wb.SetCellStyle(sheet, cell, cell, headerStyle)
		}
	}
	writeRow := func(row int, values []interface{}) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			wb.SetCellValue(sheet, cell, v)
		}
	}

	var lastCol string
	switch rows := data.(type) {
	case []InventorySummaryRow:
		writeHeaders([]string{"Item ID", "Name", "Category", "Location", "Quantity", "Min Stock", "Unit", "Status", "Low Stock"})
		for i, r := range rows {
			low := "no"
			if r.LowStock {
				low = "yes"
			}
			writeRow(i+2, []interface{}{r.ItemID, r.Name, r.Category, r.Location, r.Quantity, r.MinStockLevel, r.Unit, r.Status, low})
		}
		lastCol = "I"
	case []LowStockRow:
		writeHeaders([]string{"Item ID", "Name", "Category", "Quantity", "Min Stock", "Shortage", "Unit"})
		for i, r := range rows {
			writeRow(i+2, []interface{}{r.ItemID, r.Name, r.Category, r.Quantity, r.MinStockLevel, r.Shortage, r.Unit})
		}
		lastCol = "G"
	case []StockMovementRow:
		writeHeaders([]string{"Transaction ID", "Item ID", "Item", "Type", "Quantity", "Previous", "New", "Reason", "Performed By", "Date"})
		for i, r := range rows {
			writeRow(i+2, []interface{}{r.TransactionID, r.ItemID, r.ItemName, r.Type, r.Quantity,
				r.PreviousQuantity, r.NewQuantity, r.Reason, r.PerformedBy, r.CreatedAt.Format("02-01-2006 15:04")})
		}
		lastCol = "J"
	case []CategoryBreakdownRow:
		writeHeaders([]string{"Category", "Item Count", "Total Quantity", "Average Quantity"})
		for i, r := range rows {
			writeRow(i+2, []interface{}{r.Category, r.ItemCount, r.TotalQuantity, r.AverageQuantity})
		}
		lastCol = "D"
	}

	wb.AutoFilter(sheet, fmt.Sprintf("A1:%s1", lastCol), []excelize.AutoFilterOptions{})
	wb.SetPanes(sheet, &excelize.Panes{Freeze: true, Split: true, YSplit: 1})
	wb.SetActiveSheet(0)

	filename := fmt.Sprintf("%s-%s.xlsx", reportType, time.Now().Format("02-01-2006"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	buf, err := wb.WriteToBuffer()
	if err != nil {
		return failErr(c, err)
	}
	return c.Send(buf.Bytes())
}
