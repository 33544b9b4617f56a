package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seedfund/internal/application/account/usecases"
	"seedfund/internal/domain/account"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

type AuthHandler struct {
	signupUseCase             signupUseCase
	loginUseCase              loginUseCase
	requestLoginOTPUseCase    requestLoginOTPUseCase
	verifyEmailUseCase        verifyEmailUseCase
	resendVerificationUseCase resendVerificationUseCase
	requestResetUseCase       requestPasswordResetUseCase
	resetPasswordUseCase      resetPasswordUseCase
	refreshTokenUseCase       refreshTokenUseCase
	initiateOAuthUseCase      initiateOAuthUseCase
	handleOAuthUseCase        handleOAuthCallbackUseCase
	logger                    logger.Interface
}

func NewAuthHandler(
	signupUC signupUseCase,
	loginUC loginUseCase,
	requestLoginOTPUC requestLoginOTPUseCase,
	verifyEmailUC verifyEmailUseCase,
	resendVerificationUC resendVerificationUseCase,
	requestResetUC requestPasswordResetUseCase,
	resetPasswordUC resetPasswordUseCase,
	refreshTokenUC refreshTokenUseCase,
	initiateOAuthUC initiateOAuthUseCase,
	handleOAuthUC handleOAuthCallbackUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signupUseCase:             signupUC,
		loginUseCase:              loginUC,
		requestLoginOTPUseCase:    requestLoginOTPUC,
		verifyEmailUseCase:        verifyEmailUC,
		resendVerificationUseCase: resendVerificationUC,
		requestResetUseCase:       requestResetUC,
		resetPasswordUseCase:      resetPasswordUC,
		refreshTokenUseCase:       refreshTokenUC,
		initiateOAuthUseCase:      initiateOAuthUC,
		handleOAuthUseCase:        handleOAuthUC,
		logger:                    logger,
	}
}

type SignupRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     string          `json:"role" binding:"required"`
	Profile  account.Profile `json:"profile"`
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Credential string `json:"credential" binding:"required"`
	// Method selects the credential channel, "password" or "otp".
	// Defaults to password when omitted.
	Method string `json:"method"`
}

type RequestLoginOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.SignupCommand{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Profile:  req.Profile,
	}

	result, err := h.signupUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("signup failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "registration successful, please verify your email"
	if result.CodeResent {
		message = "a new verification code has been sent to your email"
	}

	utils.SuccessResponse(c, http.StatusCreated, message, gin.H{
		"account_id":  result.AccountID,
		"email":       result.Email,
		"next_step":   result.NextStep,
		"code_resent": result.CodeResent,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	method := account.Method(req.Method)
	if req.Method == "" {
		method = account.MethodPassword
	}

	cmd := usecases.LoginCommand{
		Email:      req.Email,
		Credential: req.Credential,
		Method:     method,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"account":       accountPayload(result.Account),
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
		"next_step":     result.NextStep,
	})
}

func (h *AuthHandler) RequestLoginOTP(c *gin.Context) {
	var req RequestLoginOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RequestLoginOTPCommand{Email: req.Email}

	if err := h.requestLoginOTPUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("login code request failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "a login code has been sent to your email", nil)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.VerifyEmailCommand{
		Email: req.Email,
		Code:  req.Code,
	}

	result, err := h.verifyEmailUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("email verification failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "email verified successfully", gin.H{
		"account_id": result.AccountID,
		"next_step":  result.NextStep,
	})
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ResendVerificationCommand{Email: req.Email}

	if err := h.resendVerificationUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("verification resend failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "a new verification code has been sent to your email", nil)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RequestPasswordResetCommand{Email: req.Email}

	if err := h.requestResetUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("password reset request failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "if the email is registered, a reset code has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ResetPasswordCommand{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	}

	if err := h.resetPasswordUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("password reset failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password has been reset successfully", nil)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RefreshTokenCommand{RefreshToken: req.RefreshToken}

	pair, err := h.refreshTokenUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("token refresh failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_in":    pair.ExpiresIn,
	})
}

// InitiateOAuth redirects the browser to the provider consent page. The
// provider comes from the path so the same handler serves google and
// linkedin.
func (h *AuthHandler) InitiateOAuth(c *gin.Context) {
	provider := c.Param("provider")

	cmd := usecases.InitiateOAuthLoginCommand{Provider: provider}
	if redirect := c.Query("redirect_url"); redirect != "" {
		cmd.RedirectURL = &redirect
	}

	result, err := h.initiateOAuthUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("oauth initiation failed", "error", err, "provider", provider)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, result.AuthURL)
}

func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	state := c.Query("state")

	if code == "" || state == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "code and state are required")
		return
	}

	cmd := usecases.HandleOAuthCallbackCommand{
		Provider: provider,
		Code:     code,
		State:    state,
	}

	result, err := h.handleOAuthUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("oauth callback failed", "error", err, "provider", provider)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"account":       accountPayload(result.Account),
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
		"is_new_user":   result.IsNewUser,
		"next_step":     result.NextStep,
	})
}

// accountPayload is the account shape shared by login and OAuth responses.
func accountPayload(acct *account.Account) gin.H {
	return gin.H{
		"id":              acct.ID(),
		"email":           acct.Email(),
		"role":            string(acct.Role()),
		"is_verified":     acct.IsVerified(),
		"approval_status": string(acct.ApprovalStatus()),
		"profile":         acct.Profile(),
	}
}
