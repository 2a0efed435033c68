package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/internal/rest/response"
)

// FeedHandler represent the httphandler for the read-time feed assembly
type FeedHandler struct {
	Service domain.FeedUsecase
}

func NewFeedHandler(svc domain.FeedUsecase) *FeedHandler {
	return &FeedHandler{
		Service: svc,
	}
}

// GetByUser pages through a single user's posts, most recent first
func (h *FeedHandler) GetByUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, domain.ErrBadParamInput.Error()))
		return
	}
	cursor := c.Query("lastKey")

	page, err := h.Service.ListUserPosts(c.Request.Context(), userID, cursor)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewBody(http.StatusOK, response.NewPostListFromDomain(page)))
}

// GetHome pages through posts by the caller and everyone the caller follows
func (h *FeedHandler) GetHome(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.NewMessage(http.StatusUnauthorized, "user not authenticated"))
		return
	}
	cursor := c.Query("lastKey")

	page, err := h.Service.ListHomeFeed(c.Request.Context(), uid, cursor)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewBody(http.StatusOK, response.NewPostListFromDomain(page)))
}
