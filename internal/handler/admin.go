package handler

import (
	"fmt"
	"time"

	"github.com/matthewmachida/yumis-bakery/internal/live"
	"github.com/matthewmachida/yumis-bakery/internal/store"
	"github.com/matthewmachida/yumis-bakery/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// AdminHandler serves the back-office surface: stock overview, restock
// and the sales report export.
type AdminHandler struct {
	Store store.Store
	Feed  *live.Hub // may be nil
}

func NewAdminHandler(st store.Store, feed *live.Hub) *AdminHandler {
	return &AdminHandler{Store: st, Feed: feed}
}

// ListStock answers GET /api/admin/stock with every flavor row.
func (h *AdminHandler) ListStock(c *gin.Context) {
	flavors, err := h.Store.Flavors()
	if err != nil {
		util.Fail(c, util.StatusServerErr)
		return
	}
	c.JSON(util.StatusSuccess, flavors)
}

type restockReq struct {
	Item     int64 `form:"item" json:"item"`
	Quantity int   `form:"quantity" json:"quantity"`
}

// Restock answers POST /api/admin/restock, raising one flavor's stock
// counter and pushing the new level to the live feed.
func (h *AdminHandler) Restock(c *gin.Context) {
	var req restockReq
	if err := c.ShouldBind(&req); err != nil || req.Item <= 0 || req.Quantity <= 0 {
		util.Fail(c, util.StatusNotFound)
		return
	}

	stock, err := h.Store.Restock(req.Item, req.Quantity)
	if err != nil {
		if err == store.ErrNotFound {
			util.Fail(c, util.StatusNotFound)
		} else {
			util.Fail(c, util.StatusServerErr)
		}
		return
	}

	if h.Feed != nil {
		h.Feed.Broadcast(live.StockEvent{Item: req.Item, Stock: stock})
	}
	c.JSON(util.StatusSuccess, gin.H{"item": req.Item, "stock": stock})
}

// ReportXLSX answers GET /api/admin/report.xlsx with every transaction
// line flattened into a spreadsheet.
func (h *AdminHandler) ReportXLSX(c *gin.Context) {
	rows, err := h.Store.ReportRows()
	if err != nil {
		util.Fail(c, util.StatusServerErr)
		return
	}

	f := excelize.NewFile()
	sheetName := "Sales"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Fail(c, util.StatusServerErr)
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Transaction", "Username", "Item", "Flavor", "Quantity", "Price", "Line Total", "Modifications"}
	for i, name := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, name)
	}

	for idx, r := range rows {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.TransactionID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Username)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Flavor)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Quantity)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Price)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.Price*float64(r.Quantity))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.Modifications)
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 16)
	f.SetColWidth(sheetName, "C", "D", 18)
	f.SetColWidth(sheetName, "E", "G", 10)
	f.SetColWidth(sheetName, "H", "H", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"sales_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Fail(c, util.StatusServerErr)
	}
}
