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

const msgFetchFailed = "Failed to fetch purchases"

type PurchaseHandler struct {
	cmds commands.DirectWriteCommands
	q    queries.PurchaseQueries
}

func NewPurchaseHandler(cmds commands.DirectWriteCommands, q queries.PurchaseQueries) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds, q: q}
}

// @Summary List user purchases
// @Description All stored purchases for a user, newest first
// @Tags purchases
// @Produce json
// @Param userid path string true "User ID"
// @Success 200 {array} resdto.PurchaseResponse
// @Failure 500 {object} httperr.Response
// @Router /purchases/{userid} [get]
func (h *PurchaseHandler) ListByUser(c *gin.Context) {
	items, err := h.q.ListByUser(c.Request.Context(), c.Param("userid"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgFetchFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReadModels(items))
}

// @Summary List recent purchases
// @Description The 500 most recent purchases across all users, newest first
// @Tags purchases
// @Produce json
// @Success 200 {array} resdto.PurchaseResponse
// @Failure 500 {object} httperr.Response
// @Router /purchases [get]
func (h *PurchaseHandler) ListRecent(c *gin.Context) {
	items, err := h.q.ListRecent(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgFetchFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReadModels(items))
}

// @Summary Store purchase directly
// @Description Validate and store a purchase without going through the stream
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body reqdto.DirectWriteRequest true "Purchase"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /purchases [post]
func (h *PurchaseHandler) DirectWrite(c *gin.Context) {
	var req reqdto.DirectWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	stored, err := h.cmds.Write(c.Request.Context(), req.ToInput())
	if err != nil {
		abortPurchaseError(c, err, "Failed to store purchase")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReadModel(stored))
}
