package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"seedfund/internal/application/account/usecases"
	"seedfund/internal/interfaces/http/middleware"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

// AdminHandler serves the approval queue. Routes behind it require the admin
// role; the handler itself only deals with the commands.
type AdminHandler struct {
	listPendingUseCase listPendingAccountsUseCase
	approveUseCase     approveAccountUseCase
	rejectUseCase      rejectAccountUseCase
	logger             logger.Interface
}

func NewAdminHandler(
	listPendingUC listPendingAccountsUseCase,
	approveUC approveAccountUseCase,
	rejectUC rejectAccountUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		listPendingUseCase: listPendingUC,
		approveUseCase:     approveUC,
		rejectUseCase:      rejectUC,
		logger:             logger,
	}
}

type RejectAccountRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *AdminHandler) ListPendingAccounts(c *gin.Context) {
	page, pageSize := pagination(c)

	cmd := usecases.ListPendingAccountsCommand{Page: page, PageSize: pageSize}

	result, err := h.listPendingUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to list pending accounts", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Accounts))
	for _, acct := range result.Accounts {
		entry := accountPayload(acct)
		entry["created_at"] = acct.CreatedAt()
		items = append(items, entry)
	}

	utils.SuccessResponse(c, http.StatusOK, "", utils.ListResponse{
		Items:    items,
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *AdminHandler) ApproveAccount(c *gin.Context) {
	accountID, err := pathID(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid account id")
		return
	}

	cmd := usecases.ApproveAccountCommand{
		AccountID: accountID,
		AdminID:   middleware.AccountID(c),
	}

	if err := h.approveUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("account approval failed", "error", err, "account_id", accountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "account approved", nil)
}

func (h *AdminHandler) RejectAccount(c *gin.Context) {
	accountID, err := pathID(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid account id")
		return
	}

	var req RejectAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RejectAccountCommand{
		AccountID: accountID,
		AdminID:   middleware.AccountID(c),
		Reason:    req.Reason,
	}

	if err := h.rejectUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("account rejection failed", "error", err, "account_id", accountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "account rejected", nil)
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
