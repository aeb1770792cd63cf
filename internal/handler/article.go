package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inkpost/backend/internal/model"
	"github.com/inkpost/backend/internal/service"
)

type ArticleHandler struct {
	svc *service.ArticleService
}

func NewArticleHandler(svc *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// List godoc
// @Summary List articles
// @Description Anonymous callers see public articles; authenticated callers also see their own.
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} model.APIResponse{data=model.PagedResult[model.ArticleResponse]}
// @Failure 500 {object} model.APIResponse
// @Router /api/articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	var p model.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		writeBadRequest(c, "invalid pagination parameters")
		return
	}

	result, err := h.svc.List(c.Request.Context(), GetAuthUser(c), p)
	if err != nil {
		writeError(c, err)
		return
	}

	writeEnvelope(c, model.NewSuccess(result))
}

// Get godoc
// @Summary Get an article by id
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} model.APIResponse{data=model.ArticleResponse}
// @Failure 400 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Router /api/articles/{id} [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid article id")
		return
	}

	article, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	writeEnvelope(c, model.NewSuccess(article))
}

// Create godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateArticleRequest true "Title, content and visibility"
// @Success 200 {object} model.APIResponse{data=model.ArticleResponse}
// @Failure 400 {object} model.APIResponse
// @Failure 401 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /api/articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	actor := GetAuthUser(c)
	article, err := h.svc.Create(c.Request.Context(), *actor, req)
	if err != nil {
		writeError(c, err)
		return
	}

	writeEnvelope(c, model.NewSuccessWithMessage(article, "created"))
}

// Update godoc
// @Summary Update an article
// @Description Articles can only be updated by their owner.
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body model.CreateArticleRequest true "Title, content and visibility"
// @Success 200 {object} model.APIResponse{data=model.ArticleResponse}
// @Failure 400 {object} model.APIResponse
// @Failure 401 {object} model.APIResponse
// @Failure 403 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Router /api/articles/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid article id")
		return
	}

	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	actor := GetAuthUser(c)
	article, err := h.svc.Update(c.Request.Context(), *actor, id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	writeEnvelope(c, model.NewSuccessWithMessage(article, "updated"))
}

// Delete godoc
// @Summary Delete an article
// @Description Articles can only be deleted by their owner.
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 401 {object} model.APIResponse
// @Failure 403 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Router /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid article id")
		return
	}

	actor := GetAuthUser(c)
	if err := h.svc.Delete(c.Request.Context(), *actor, id); err != nil {
		writeError(c, err)
		return
	}

	writeEnvelope(c, model.NewMessage("article deleted"))
}
