package controllers

import (
	"time"

	"github.com/meCodeKo/siverek-depo/models"
)

// ReportFilter narrows the item set a report is built from.
type ReportFilter struct {
	Category string
	Status   string
	Location string
	LowStock bool
	From     time.Time
	To       time.Time
}

// InventorySummaryRow is one line of the inventory-summary report.
type InventorySummaryRow struct {
	ItemID        string `json:"itemId"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	Quantity      int    `json:"quantity"`
	MinStockLevel int    `json:"minStockLevel"`
	Unit          string `json:"unit"`
	Status        string `json:"status"`
	LowStock      bool   `json:"lowStock"`
}

type LowStockRow struct {
	ItemID        string `json:"itemId"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	MinStockLevel int    `json:"minStockLevel"`
	Shortage      int    `json:"shortage"`
	Unit          string `json:"unit"`
}

type StockMovementRow struct {
	TransactionID    string    `json:"transactionId"`
	ItemID           string    `json:"itemId"`
	ItemName         string    `json:"itemName"`
	Type             string    `json:"type"`
	Quantity         int       `json:"quantity"`
	PreviousQuantity int       `json:"previousQuantity"`
	NewQuantity      int       `json:"newQuantity"`
	Reason           string    `json:"reason"`
	PerformedBy      string    `json:"performedBy"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CategoryBreakdownRow struct {
	Category        string  `json:"category"`
	ItemCount       int     `json:"itemCount"`
	TotalQuantity   int     `json:"totalQuantity"`
	AverageQuantity float64 `json:"averageQuantity"`
}

// Statistics is the dashboard summary block.
type Statistics struct {
	TotalItems       int `json:"totalItems"`
	TotalQuantity    int `json:"totalQuantity"`
	LowStockCount    int `json:"lowStockCount"`
	ActiveItems      int `json:"activeItems"`
	InactiveItems    int `json:"inactiveItems"`
	DamagedItems     int `json:"damagedItems"`
	MaintenanceItems int `json:"maintenanceItems"`
}

// FilterItems returns the items matching the filter. Date bounds apply to
// the item's creation time.
func FilterItems(items []models.Item, f ReportFilter) []models.Item {
	out := make([]models.Item, 0, len(items))
	for i := range items {
		it := &items[i]
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.Status != "" && it.Status != f.Status {
			continue
		}
		if f.Location != "" && it.Location != f.Location {
			continue
		}
		if f.LowStock && !it.IsLowStock() {
			continue
		}
		if !f.From.IsZero() && it.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && it.CreatedAt.After(f.To) {
			continue
		}
		out = append(out, *it)
	}
	return out
}

func FilterTransactions(txs []models.StockTransaction, from, to time.Time) []models.StockTransaction {
	out := make([]models.StockTransaction, 0, len(txs))
	for _, tx := range txs {
		if !from.IsZero() && tx.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && tx.CreatedAt.After(to) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func categoryNames(cats []models.Category) map[string]string {
	m := make(map[string]string, len(cats))
	for _, c := range cats {
		m[c.ID] = c.Name
	}
	return m
}

func locationNames(locs []models.Location) map[string]string {
	m := make(map[string]string, len(locs))
	for _, l := range locs {
		m[l.ID] = l.Name
	}
	return m
}

func nameOr(m map[string]string, id string) string {
	if n, ok := m[id]; ok {
		return n
	}
	return id
}

func BuildInventorySummary(items []models.Item, cats []models.Category, locs []models.Location) []InventorySummaryRow {
	catName := categoryNames(cats)
	locName := locationNames(locs)
	rows := make([]InventorySummaryRow, 0, len(items))
	for i := range items {
		it := &items[i]
		rows = append(rows, InventorySummaryRow{
			ItemID:        it.ID,
			Name:          it.Name,
			Category:      nameOr(catName, it.Category),
			Location:      nameOr(locName, it.Location),
			Quantity:      it.Quantity,
			MinStockLevel: it.MinStockLevel,
			Unit:          it.Unit,
			Status:        it.Status,
			LowStock:      it.IsLowStock(),
		})
	}
	return rows
}

func BuildLowStock(items []models.Item, cats []models.Category) []LowStockRow {
	catName := categoryNames(cats)
	var rows []LowStockRow
	for i := range items {
		it := &items[i]
		if !it.IsLowStock() {
			continue
		}
		rows = append(rows, LowStockRow{
			ItemID:        it.ID,
			Name:          it.Name,
			Category:      nameOr(catName, it.Category),
			Quantity:      it.Quantity,
			MinStockLevel: it.MinStockLevel,
			Shortage:      it.MinStockLevel - it.Quantity,
			Unit:          it.Unit,
		})
	}
	return rows
}

func BuildStockMovements(txs []models.StockTransaction, items []models.Item) []StockMovementRow {
	itemName := make(map[string]string, len(items))
	for _, it := range items {
		itemName[it.ID] = it.Name
	}
	rows := make([]StockMovementRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, StockMovementRow{
			TransactionID:    tx.ID,
			ItemID:           tx.ItemID,
			ItemName:         nameOr(itemName, tx.ItemID),
			Type:             tx.Type,
			Quantity:         tx.Quantity,
			PreviousQuantity: tx.PreviousQuantity,
			NewQuantity:      tx.NewQuantity,
			Reason:           tx.Reason,
			PerformedBy:      tx.PerformedBy,
			CreatedAt:        tx.CreatedAt,
		})
	}
	return rows
}

// BuildCategoryBreakdown aggregates per category. Categories without items
// are omitted.
func BuildCategoryBreakdown(items []models.Item, cats []models.Category) []CategoryBreakdownRow {
	type agg struct {
		count    int
		quantity int
	}
	byCat := make(map[string]*agg)
	for i := range items {
		it := &items[i]
		a, ok := byCat[it.Category]
		if !ok {
			a = &agg{}
			byCat[it.Category] = a
		}
		a.count++
		a.quantity += it.Quantity
	}

	catName := categoryNames(cats)
	var rows []CategoryBreakdownRow
	// Iterate categories in their stored order so output is stable.
	for _, c := range cats {
		a, ok := byCat[c.ID]
		if !ok {
			continue
		}
		rows = append(rows, CategoryBreakdownRow{
			Category:        c.Name,
			ItemCount:       a.count,
			TotalQuantity:   a.quantity,
			AverageQuantity: float64(a.quantity) / float64(a.count),
		})
		delete(byCat, c.ID)
	}
	// Items referencing an unknown category still count.
	for id, a := range byCat {
		rows = append(rows, CategoryBreakdownRow{
			Category:        nameOr(catName, id),
			ItemCount:       a.count,
			TotalQuantity:   a.quantity,
			AverageQuantity: float64(a.quantity) / float64(a.count),
		})
	}
	return rows
}

func BuildStatistics(items []models.Item) Statistics {
	var s Statistics
	for i := range items {
		it := &items[i]
		s.TotalItems++
		s.TotalQuantity += it.Quantity
		if it.IsLowStock() {
			s.LowStockCount++
		}
		switch it.Status {
		case models.StatusActive:
			s.ActiveItems++
		case models.StatusInactive:
			s.InactiveItems++
		case models.StatusDamaged:
			s.DamagedItems++
		case models.StatusMaintenance:
			s.MaintenanceItems++
		}
	}
	return s
}
