package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inkpost/backend/internal/model"
	"github.com/inkpost/backend/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} model.APIResponse{data=model.PagedResult[model.UserResponse]}
// @Failure 500 {object} model.APIResponse
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var p model.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		writeBadRequest(c, "invalid pagination parameters")
		return
	}

	result, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}

	writeEnvelope(c, model.NewSuccess(result))
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.APIResponse{data=model.UserResponse}
// @Failure 400 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid user id")
		return
	}

	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	writeEnvelope(c, model.NewSuccess(user))
}

// Update godoc
// @Summary Update a user
// @Description Accounts can only be updated by their owner.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body model.UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.APIResponse{data=model.UserResponse}
// @Failure 400 {object} model.APIResponse
// @Failure 401 {object} model.APIResponse
// @Failure 403 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid user id")
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	actor := GetAuthUser(c)
	user, err := h.svc.Update(c.Request.Context(), *actor, id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	writeEnvelope(c, model.NewSuccessWithMessage(user, "updated"))
}

// Delete godoc
// @Summary Delete a user
// @Description Accounts can only be deleted by their owner.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 401 {object} model.APIResponse
// @Failure 403 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid user id")
		return
	}

	actor := GetAuthUser(c)
	if err := h.svc.Delete(c.Request.Context(), *actor, id); err != nil {
		writeError(c, err)
		return
	}

	writeEnvelope(c, model.NewMessage("user deleted"))
}
