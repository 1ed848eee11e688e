package handler

import (
	"github.com/matthewmachida/yumis-bakery/internal/service"
	"github.com/matthewmachida/yumis-bakery/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the dessert list, detail and search endpoints.
type CatalogHandler struct {
	Catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// GetDesserts answers GET /getDesserts. Without a dessert query it lists
// every dessert card; with one it returns the nested detail object.
func (h *CatalogHandler) GetDesserts(c *gin.Context) {
	if name, ok := c.GetQuery("dessert"); ok {
		detail, err := h.Catalog.GetOne(name)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(util.StatusSuccess, detail)
		return
	}

	cards, err := h.Catalog.GetAll()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(util.StatusSuccess, cards)
}

// Search answers GET /search. A present input parameter wins over the
// filter flags; absent flags default to false, and customizable is only
// applied when the client sent it.
func (h *CatalogHandler) Search(c *gin.Context) {
	if input, ok := c.GetQuery("input"); ok {
		cards, err := h.Catalog.SearchText(input)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(util.StatusSuccess, cards)
		return
	}

	small := boolQuery(c, "small")
	large := boolQuery(c, "large")
	var customizable *bool
	if _, ok := c.GetQuery("customizable"); ok {
		v := boolQuery(c, "customizable")
		customizable = &v
	}

	cards, err := h.Catalog.SearchFilters(small, large, customizable)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(util.StatusSuccess, cards)
}

func boolQuery(c *gin.Context, key string) bool {
	v := c.Query(key)
	return v == "1" || v == "true"
}
