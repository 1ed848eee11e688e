package handler

import (
	"errors"

	"github.com/matthewmachida/yumis-bakery/internal/logger"
	"github.com/matthewmachida/yumis-bakery/internal/service"
	"github.com/matthewmachida/yumis-bakery/internal/util"

	"github.com/gin-gonic/gin"
)

// fail maps a service error onto the fixed status+message scheme. Any
// error outside the taxonomy is reported generically.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrNotFound):
		util.Fail(c, util.StatusNotFound)
	case errors.Is(err, service.ErrBadLogin):
		util.Fail(c, util.StatusBadLogin)
	case errors.Is(err, service.ErrNotLoggedIn):
		util.Fail(c, util.StatusLoggedOut)
	case errors.Is(err, service.ErrEmptyCart):
		util.Fail(c, util.StatusEmptyCart)
	case errors.Is(err, service.ErrOutOfStock):
		util.Fail(c, util.StatusOutOfStock)
	case errors.Is(err, service.ErrConflict):
		util.Fail(c, util.StatusInfoTaken)
	default:
		logger.Log.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
		util.Fail(c, util.StatusServerErr)
	}
}
