package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seedfund/internal/application/project/usecases"
	"seedfund/internal/domain/project"
	"seedfund/internal/interfaces/http/middleware"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

type ProjectHandler struct {
	createUseCase          createProjectUseCase
	publishUseCase         publishProjectUseCase
	listUseCase            listProjectsUseCase
	getUseCase             getProjectUseCase
	investUseCase          investUseCase
	rateUseCase            rateProjectUseCase
	toggleWatchlistUseCase toggleWatchlistUseCase
	listWatchlistUseCase   listWatchlistUseCase
	listInvestmentsUseCase listInvestmentsUseCase
	logger                 logger.Interface
}

func NewProjectHandler(
	createUC createProjectUseCase,
	publishUC publishProjectUseCase,
	listUC listProjectsUseCase,
	getUC getProjectUseCase,
	investUC investUseCase,
	rateUC rateProjectUseCase,
	toggleWatchlistUC toggleWatchlistUseCase,
	listWatchlistUC listWatchlistUseCase,
	listInvestmentsUC listInvestmentsUseCase,
	logger logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createUseCase:          createUC,
		publishUseCase:         publishUC,
		listUseCase:            listUC,
		getUseCase:             getUC,
		investUseCase:          investUC,
		rateUseCase:            rateUC,
		toggleWatchlistUseCase: toggleWatchlistUC,
		listWatchlistUseCase:   listWatchlistUC,
		listInvestmentsUseCase: listInvestmentsUC,
		logger:                 logger,
	}
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Summary     string `json:"summary" binding:"max=2000"`
	Category    string `json:"category" binding:"required"`
	FundingGoal int64  `json:"funding_goal" binding:"required,gt=0"`
}

type InvestRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type RateProjectRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateProjectCommand{
		OwnerID:     middleware.AccountID(c),
		Title:       req.Title,
		Summary:     req.Summary,
		Category:    req.Category,
		FundingGoal: req.FundingGoal,
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("project creation failed", "error", err, "owner_id", cmd.OwnerID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, projectPayload(result.Project), "project created as draft")
}

func (h *ProjectHandler) PublishProject(c *gin.Context) {
	projectID, err := pathID(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	cmd := usecases.PublishProjectCommand{
		ProjectID: projectID,
		AccountID: middleware.AccountID(c),
	}

	if err := h.publishUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("project publish failed", "error", err, "project_id", projectID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project published", nil)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, pageSize := pagination(c)

	cmd := usecases.ListProjectsCommand{
		Category: c.Query("category"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to list projects", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Projects))
	for _, p := range result.Projects {
		items = append(items, projectPayload(p))
	}

	utils.SuccessResponse(c, http.StatusOK, "", utils.ListResponse{
		Items:    items,
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := pathID(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	cmd := usecases.GetProjectCommand{ProjectID: projectID}

	result, err := h.getUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload := projectPayload(result.Project)
	payload["average_rating"] = result.AverageRating
	payload["rating_count"] = result.RatingCount

	utils.SuccessResponse(c, http.StatusOK, "", payload)
}

func (h *ProjectHandler) Invest(c *gin.Context) {
	projectID, err := pathID(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var req InvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.InvestCommand{
		ProjectID: projectID,
		AccountID: middleware.AccountID(c),
		Amount:    req.Amount,
	}

	result, err := h.investUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("investment failed", "error", err, "project_id", projectID, "account_id", cmd.AccountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"investment_id": result.Investment.ID,
		"amount":        result.Investment.Amount,
		"funding_total": result.FundingTotal,
		"funded":        result.Funded,
	}, "investment recorded")
}

func (h *ProjectHandler) RateProject(c *gin.Context) {
	projectID, err := pathID(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var req RateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RateProjectCommand{
		ProjectID: projectID,
		AccountID: middleware.AccountID(c),
		Score:     req.Score,
	}

	result, err := h.rateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("rating failed", "error", err, "project_id", projectID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "rating saved", gin.H{
		"average_rating": result.AverageRating,
		"rating_count":   result.RatingCount,
	})
}

func (h *ProjectHandler) ToggleWatchlist(c *gin.Context) {
	projectID, err := pathID(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	cmd := usecases.ToggleWatchlistCommand{
		ProjectID: projectID,
		AccountID: middleware.AccountID(c),
	}

	result, err := h.toggleWatchlistUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("watchlist toggle failed", "error", err, "project_id", projectID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"watching": result.Watching})
}

func (h *ProjectHandler) ListWatchlist(c *gin.Context) {
	page, pageSize := pagination(c)

	cmd := usecases.ListWatchlistCommand{
		AccountID: middleware.AccountID(c),
		Page:      page,
		PageSize:  pageSize,
	}

	result, err := h.listWatchlistUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to list watchlist", "error", err, "account_id", cmd.AccountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, gin.H{
			"project_id": item.ProjectID,
			"added_at":   item.CreatedAt,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", utils.ListResponse{
		Items:    items,
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *ProjectHandler) ListInvestments(c *gin.Context) {
	page, pageSize := pagination(c)

	cmd := usecases.ListInvestmentsCommand{
		AccountID: middleware.AccountID(c),
		Page:      page,
		PageSize:  pageSize,
	}

	result, err := h.listInvestmentsUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to list investments", "error", err, "account_id", cmd.AccountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Investments))
	for _, inv := range result.Investments {
		items = append(items, gin.H{
			"investment_id": inv.ID,
			"project_id":    inv.ProjectID,
			"amount":        inv.Amount,
			"created_at":    inv.CreatedAt,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", utils.ListResponse{
		Items:    items,
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	})
}

func projectPayload(p *project.Project) gin.H {
	return gin.H{
		"id":            p.ID,
		"owner_id":      p.OwnerID,
		"title":         p.Title,
		"summary":       p.Summary,
		"category":      p.Category,
		"funding_goal":  p.FundingGoal,
		"funding_total": p.FundingTotal,
		"status":        string(p.Status),
		"created_at":    p.CreatedAt,
	}
}
