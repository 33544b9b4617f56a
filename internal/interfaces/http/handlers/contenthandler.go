package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seedfund/internal/application/content/usecases"
	"seedfund/internal/domain/content"
	"seedfund/internal/interfaces/http/middleware"
	"seedfund/internal/shared/authorization"
	"seedfund/internal/shared/constants"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

type ContentHandler struct {
	createUseCase createArticleUseCase
	updateUseCase updateArticleUseCase
	getUseCase    getArticleUseCase
	listUseCase   listArticlesUseCase
	logger        logger.Interface
}

func NewContentHandler(
	createUC createArticleUseCase,
	updateUC updateArticleUseCase,
	getUC getArticleUseCase,
	listUC listArticlesUseCase,
	logger logger.Interface,
) *ContentHandler {
	return &ContentHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		logger:        logger,
	}
}

type CreateArticleRequest struct {
	Kind    string `json:"kind" binding:"required"`
	Title   string `json:"title" binding:"required,min=3,max=200"`
	Body    string `json:"body" binding:"required"`
	Publish bool   `json:"publish"`
}

type UpdateArticleRequest struct {
	Title   *string `json:"title"`
	Body    *string `json:"body"`
	Publish *bool   `json:"publish"`
}

func (h *ContentHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateArticleCommand{
		AuthorID: middleware.AccountID(c),
		Kind:     content.Kind(req.Kind),
		Title:    req.Title,
		Body:     req.Body,
		Publish:  req.Publish,
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("article creation failed", "error", err, "author_id", cmd.AuthorID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, articlePayload(result.Article), "article created")
}

func (h *ContentHandler) UpdateArticle(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateArticleCommand{
		Slug:      c.Param("slug"),
		AccountID: middleware.AccountID(c),
		IsAdmin:   isAdmin(c),
		Title:     req.Title,
		Body:      req.Body,
		Publish:   req.Publish,
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("article update failed", "error", err, "slug", cmd.Slug)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "article updated", articlePayload(result.Article))
}

// GetArticle serves the rendered article. Drafts stay hidden from the public;
// authenticated admins may preview them.
func (h *ContentHandler) GetArticle(c *gin.Context) {
	cmd := usecases.GetArticleCommand{
		Slug:          c.Param("slug"),
		IncludeDrafts: isAdmin(c),
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload := articlePayload(result.Article)
	payload["body_html"] = result.BodyHTML

	utils.SuccessResponse(c, http.StatusOK, "", payload)
}

func (h *ContentHandler) ListArticles(c *gin.Context) {
	page, pageSize := pagination(c)

	cmd := usecases.ListArticlesCommand{
		Kind:          content.Kind(c.DefaultQuery("kind", string(content.KindBlog))),
		PublishedOnly: !isAdmin(c),
		Page:          page,
		PageSize:      pageSize,
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to list articles", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Articles))
	for _, a := range result.Articles {
		items = append(items, articlePayload(a))
	}

	utils.SuccessResponse(c, http.StatusOK, "", utils.ListResponse{
		Items:    items,
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	})
}

func articlePayload(a *content.Article) gin.H {
	return gin.H{
		"slug":       a.Slug,
		"kind":       string(a.Kind),
		"title":      a.Title,
		"body":       a.Body,
		"published":  a.Published,
		"author_id":  a.AuthorID,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
	}
}

func isAdmin(c *gin.Context) bool {
	role, _ := c.Get(constants.ContextKeyRole)
	s, ok := role.(string)
	return ok && authorization.Role(s).IsAdmin()
}
