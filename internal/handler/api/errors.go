package api

import (
	"net/http"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/handler/httperr"
	"purchase-pipeline/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body"

// abortPurchaseError maps validation to 400 with the rule that failed and everything else to
// a 500 carrying only safeMsg.
func abortPurchaseError(c *gin.Context, err error, safeMsg string) {
	if errs.Is(err, purchase.ErrValidation) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, safeMsg)
}
