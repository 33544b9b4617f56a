package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seedfund/internal/application/account/usecases"
	"seedfund/internal/domain/account"
	"seedfund/internal/interfaces/http/middleware"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

type AccountHandler struct {
	updateProfileUseCase    updateProfileUseCase
	selectRoleUseCase       selectRoleUseCase
	resubmitUseCase         resubmitApplicationUseCase
	changePasswordUseCase   changePasswordUseCase
	listAuthMethodsUseCase  listAuthMethodsUseCase
	setPrimaryMethodUseCase setPrimaryAuthMethodUseCase
	unlinkMethodUseCase     unlinkAuthMethodUseCase
	accountRepo             account.Repository
	logger                  logger.Interface
}

func NewAccountHandler(
	updateProfileUC updateProfileUseCase,
	selectRoleUC selectRoleUseCase,
	resubmitUC resubmitApplicationUseCase,
	changePasswordUC changePasswordUseCase,
	listAuthMethodsUC listAuthMethodsUseCase,
	setPrimaryMethodUC setPrimaryAuthMethodUseCase,
	unlinkMethodUC unlinkAuthMethodUseCase,
	accountRepo account.Repository,
	logger logger.Interface,
) *AccountHandler {
	return &AccountHandler{
		updateProfileUseCase:    updateProfileUC,
		selectRoleUseCase:       selectRoleUC,
		resubmitUseCase:         resubmitUC,
		changePasswordUseCase:   changePasswordUC,
		listAuthMethodsUseCase:  listAuthMethodsUC,
		setPrimaryMethodUseCase: setPrimaryMethodUC,
		unlinkMethodUseCase:     unlinkMethodUC,
		accountRepo:             accountRepo,
		logger:                  logger,
	}
}

type UpdateProfileRequest struct {
	Profile account.Profile `json:"profile" binding:"required"`
}

type SelectRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type ResubmitApplicationRequest struct {
	Profile account.Profile `json:"profile" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type AuthMethodRequest struct {
	Method     string  `json:"method" binding:"required"`
	ProviderID *string `json:"provider_id"`
}

func (h *AccountHandler) GetMe(c *gin.Context) {
	accountID := middleware.AccountID(c)

	acct, err := h.accountRepo.GetByID(c.Request.Context(), accountID)
	if err != nil {
		h.logger.Errorw("failed to load account", "error", err, "account_id", accountID)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if acct == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Account not found")
		return
	}

	payload := accountPayload(acct)
	payload["next_step"] = acct.NextStep()
	payload["rejection_reason"] = acct.RejectionReason()

	utils.SuccessResponse(c, http.StatusOK, "", payload)
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateProfileCommand{
		AccountID: middleware.AccountID(c),
		Profile:   req.Profile,
	}

	result, err := h.updateProfileUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("profile update failed", "error", err, "account_id", cmd.AccountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", gin.H{
		"profile_complete": result.ProfileComplete,
		"next_step":        result.NextStep,
	})
}

func (h *AccountHandler) SelectRole(c *gin.Context) {
	var req SelectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.SelectRoleCommand{
		AccountID: middleware.AccountID(c),
		Role:      req.Role,
	}

	result, err := h.selectRoleUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("role selection failed", "error", err, "account_id", cmd.AccountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role selected", gin.H{
		"role":      string(result.Role),
		"next_step": result.NextStep,
	})
}

func (h *AccountHandler) ResubmitApplication(c *gin.Context) {
	var req ResubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ResubmitApplicationCommand{
		AccountID: middleware.AccountID(c),
		Profile:   req.Profile,
	}

	result, err := h.resubmitUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("application resubmission failed", "error", err, "account_id", cmd.AccountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "application resubmitted for review", gin.H{
		"next_step": result.NextStep,
	})
}

func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ChangePasswordCommand{
		AccountID:       middleware.AccountID(c),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	if err := h.changePasswordUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("password change failed", "error", err, "account_id", cmd.AccountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed successfully", nil)
}

func (h *AccountHandler) ListAuthMethods(c *gin.Context) {
	cmd := usecases.ListAuthMethodsCommand{AccountID: middleware.AccountID(c)}

	methods, err := h.listAuthMethodsUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to list auth methods", "error", err, "account_id", cmd.AccountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(methods))
	for _, m := range methods {
		items = append(items, gin.H{
			"method":       string(m.Method),
			"is_primary":   m.IsPrimary,
			"last_used_at": m.LastUsedAt,
			"created_at":   m.CreatedAt,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"methods": items})
}

func (h *AccountHandler) SetPrimaryAuthMethod(c *gin.Context) {
	var req AuthMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.SetPrimaryAuthMethodCommand{
		AccountID:  middleware.AccountID(c),
		Method:     account.Method(req.Method),
		ProviderID: req.ProviderID,
	}

	if err := h.setPrimaryMethodUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("primary method change failed", "error", err, "account_id", cmd.AccountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "primary login method updated", nil)
}

func (h *AccountHandler) UnlinkAuthMethod(c *gin.Context) {
	var req AuthMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UnlinkAuthMethodCommand{
		AccountID:  middleware.AccountID(c),
		Method:     account.Method(req.Method),
		ProviderID: req.ProviderID,
	}

	if err := h.unlinkMethodUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("method unlink failed", "error", err, "account_id", cmd.AccountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login method unlinked", nil)
}
