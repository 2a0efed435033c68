package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/internal/rest/request"
	"github.com/snapfeed-app/snapfeed-backend/internal/rest/response"
)

// AuthHandler represent the httphandler for the credential flows
type AuthHandler struct {
	Creds domain.CredentialService
	Users domain.UserUsecase
}

func NewAuthHandler(creds domain.CredentialService, users domain.UserUsecase) *AuthHandler {
	return &AuthHandler{
		Creds: creds,
		Users: users,
	}
}

// Register signs the email up with the credential service and creates the
// matching profile record under the issued subject id.
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, err.Error()))
		return
	}

	ctx := c.Request.Context()
	subjectID, err := h.Creds.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	if err := h.Users.Register(ctx, subjectID, req.Name, req.Email); err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewMessage(http.StatusOK,
		"user registered, check your email to confirm the verification code"))
}

func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	var req request.ConfirmEmail
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, err.Error()))
		return
	}

	if err := h.Creds.ConfirmEmail(c.Request.Context(), req.Email, req.Code); err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewMessage(http.StatusOK, "user verified"))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, err.Error()))
		return
	}

	tokens, err := h.Creds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewBody(http.StatusOK, tokens))
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req request.ForgotPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, err.Error()))
		return
	}

	if err := h.Creds.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewMessage(http.StatusOK, "reset code sent to your email"))
}

func (h *AuthHandler) ConfirmPassword(c *gin.Context) {
	var req request.ConfirmPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, err.Error()))
		return
	}

	if err := h.Creds.ConfirmPassword(c.Request.Context(), req.Email, req.Password, req.Code); err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewMessage(http.StatusOK, "password changed"))
}
