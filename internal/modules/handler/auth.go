package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackboard/trackboard/internal/modules/serializer"
	"github.com/trackboard/trackboard/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRes struct {
	AccessToken string `json:"accessToken"`
}

// Login godoc
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		handler.LoginReq	true	"Credentials"
//	@Success	200		{object}	handler.LoginRes
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginRes{AccessToken: token})
}
