package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/modules/serializer"
	"github.com/trackboard/trackboard/internal/modules/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

type ListUsersReq struct {
	pageParams
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Param		page	query		integer	false	"Page number, default 1"
//	@Param		limit	query		integer	false	"Page size, default 10"
//	@Param		sort	query		string	false	"Sort field, default createdAt"
//	@Param		order	query		string	false	"ASC or DESC, default DESC"
//	@Param		q		query		string	false	"Case-insensitive name filter"
//	@Security	BearerAuth
//	@Success	200		{object}	listing.Result[model.User]
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req ListUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	out, err := h.svc.List(c.Request.Context(), repo.UserFilter{Params: req.listing()})
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

type CreateUserReq struct {
	Name     string `json:"name" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateUser godoc
//
//	@Summary	Create user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		handler.CreateUserReq	true	"CreateUser payload"
//	@Security	BearerAuth
//	@Success	201		{object}	model.User
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	user, err := h.svc.Create(c.Request.Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser godoc
//
//	@Summary	Get user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		string	true	"User ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	model.User
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type UpdateUserReq struct {
	Name     *string `json:"name" binding:"omitempty,max=150"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	IsActive *bool   `json:"isActive"`
}

// UpdateUser godoc
//
//	@Summary	Update user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"User ID"	Format(uuid)
//	@Param		payload	body		handler.UpdateUserReq	true	"UpdateUser payload"
//	@Security	BearerAuth
//	@Success	200		{object}	model.User
//	@Router		/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	var req UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	user, err := h.svc.Update(c.Request.Context(), id, service.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
//
//	@Summary	Delete user
//	@Tags		users
//	@Param		id	path	string	true	"User ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	204
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
