package api

import (
	"net/http"

	reqdto "purchase-pipeline/internal/handler/dto/request"
	resdto "purchase-pipeline/internal/handler/dto/response"
	"purchase-pipeline/internal/handler/httperr"
	"purchase-pipeline/internal/usecase/commands"
	"purchase-pipeline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgPurchaseCreated = "Purchase created"

type BuyHandler struct {
	cmds commands.PurchaseCommands
	q    queries.PurchaseQueries
}

func NewBuyHandler(cmds commands.PurchaseCommands, q queries.PurchaseQueries) *BuyHandler {
	return &BuyHandler{cmds: cmds, q: q}
}

// @Summary Submit purchase
// @Description Validate a purchase and publish it to the purchase stream keyed by userid
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body reqdto.BuyRequest true "Purchase"
// @Success 201 {object} resdto.BuyResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /buy [post]
func (h *BuyHandler) Buy(c *gin.Context) {
	var req reqdto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	p, err := h.cmds.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		abortPurchaseError(c, err, "Failed to submit purchase")
		return
	}

	c.JSON(http.StatusCreated, resdto.BuyResponse{
		Message:  msgPurchaseCreated,
		Purchase: resdto.FromDomain(p),
	})
}

// @Summary List user purchases
// @Description All stored purchases for a user, newest first, read through the consumer service
// @Tags purchases
// @Produce json
// @Param userid path string true "User ID"
// @Success 200 {array} resdto.PurchaseResponse
// @Failure 500 {object} httperr.Response
// @Router /getAllUserBuys/{userid} [get]
func (h *BuyHandler) GetAllUserBuys(c *gin.Context) {
	items, err := h.q.ListByUser(c.Request.Context(), c.Param("userid"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch purchases")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReadModels(items))
}
