package handler

import (
	"github.com/matthewmachida/yumis-bakery/internal/live"
	"github.com/matthewmachida/yumis-bakery/internal/service"
	"github.com/matthewmachida/yumis-bakery/internal/store"
	"github.com/matthewmachida/yumis-bakery/internal/util"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler serves the checkout endpoint.
type PurchaseHandler struct {
	Purchases *service.PurchaseService
	Store     store.Store
	Feed      *live.Hub // may be nil
}

func NewPurchaseHandler(purchases *service.PurchaseService, st store.Store, feed *live.Hub) *PurchaseHandler {
	return &PurchaseHandler{Purchases: purchases, Store: st, Feed: feed}
}

type purchaseReq struct {
	Username string `form:"username" json:"username"`
	Cart     string `form:"cart" json:"cart"` // JSON-encoded cart payload
}

// Purchase answers POST /purchase and runs the checkout pipeline to one
// terminal outcome. After a successful commit the new stock levels are
// pushed to the live feed.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	var req purchaseReq
	if err := c.ShouldBind(&req); err != nil {
		util.Fail(c, util.StatusNotFound)
		return
	}

	summary, err := h.Purchases.Purchase(req.Username, req.Cart)
	if err != nil {
		fail(c, err)
		return
	}

	if h.Feed != nil {
		for _, it := range summary.Items {
			if stock, err := h.Store.StockFor(it.Item); err == nil {
				h.Feed.Broadcast(live.StockEvent{Item: it.Item, Stock: stock})
			}
		}
	}

	c.JSON(util.StatusSuccess, summary)
}
