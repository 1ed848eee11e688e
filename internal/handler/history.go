package handler

import (
	"github.com/matthewmachida/yumis-bakery/internal/service"
	"github.com/matthewmachida/yumis-bakery/internal/util"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves the per-user order history.
type HistoryHandler struct {
	Svc *service.HistoryService
}

func NewHistoryHandler(history *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{Svc: history}
}

// History answers GET /cart/:username with one summary per past
// transaction. The user must currently be logged in.
func (h *HistoryHandler) History(c *gin.Context) {
	username := c.Param("username")

	summaries, err := h.Svc.HistoryFor(username)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(util.StatusSuccess, summaries)
}
