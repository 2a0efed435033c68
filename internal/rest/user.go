package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/internal/rest/response"
)

// UserHandler represent the httphandler for user profiles and the follow graph
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Me returns the caller's own profile
func (h *UserHandler) Me(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.NewMessage(http.StatusUnauthorized, "user not authenticated"))
		return
	}

	user, err := h.Service.Get(c.Request.Context(), uid)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewBody(http.StatusOK, response.NewUserFromDomain(&user)))
}

// GetByID returns another user's profile
func (h *UserHandler) GetByID(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, domain.ErrBadParamInput.Error()))
		return
	}

	user, err := h.Service.Get(c.Request.Context(), userID)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewBody(http.StatusOK, response.NewUserFromDomain(&user)))
}

// Search lists users whose display name contains the filter
func (h *UserHandler) Search(c *gin.Context) {
	filter := c.Param("filter")
	if filter == "" {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, domain.ErrBadParamInput.Error()))
		return
	}
	lastKey := c.Query("lastKey")

	users, nextCursor, err := h.Service.Search(c.Request.Context(), filter, lastKey)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	data := make([]response.User, len(users))
	for i := range users {
		data[i] = response.NewUserFromDomain(&users[i])
	}
	c.JSON(http.StatusOK, response.NewBody(http.StatusOK, response.List{
		Count:   len(data),
		LastKey: nextCursor,
		Data:    data,
	}))
}

// UpdateMe changes the caller's display name and/or avatar (multipart)
func (h *UserHandler) UpdateMe(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.NewMessage(http.StatusUnauthorized, "user not authenticated"))
		return
	}

	name := c.PostForm("name")
	avatar, err := readUpload(c, "avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, domain.ErrBadParamInput.Error()))
		return
	}
	if name == "" && avatar == nil {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, domain.ErrBadParamInput.Error()))
		return
	}

	if err := h.Service.UpdateProfile(c.Request.Context(), uid, name, avatar); err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewMessage(http.StatusOK, "profile updated"))
}

// ToggleFollow flips the follow edge from the caller to the target user
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.NewMessage(http.StatusUnauthorized, "user not authenticated"))
		return
	}

	followID := c.Param("followId")
	if followID == "" {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, domain.ErrBadParamInput.Error()))
		return
	}

	following, err := h.Service.ToggleFollow(c.Request.Context(), uid, followID)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewBody(http.StatusOK, gin.H{"following": following}))
}
