package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/internal/rest/request"
	"github.com/snapfeed-app/snapfeed-backend/internal/rest/response"
)

// PostHandler represent the httphandler for post mutations
type PostHandler struct {
	Service domain.PostUsecase
}

func NewPostHandler(svc domain.PostUsecase) *PostHandler {
	return &PostHandler{
		Service: svc,
	}
}

// Create stores a new post from a multipart body (description + file)
func (h *PostHandler) Create(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.NewMessage(http.StatusUnauthorized, "user not authenticated"))
		return
	}

	description := c.PostForm("description")
	image, err := readUpload(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, domain.ErrBadParamInput.Error()))
		return
	}
	if image == nil {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, "file is required"))
		return
	}

	post, err := h.Service.Create(c.Request.Context(), uid, description, *image)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewBody(http.StatusOK, response.NewPostFromDomain(&post)))
}

// ToggleLike flips the caller's like on the post
func (h *PostHandler) ToggleLike(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.NewMessage(http.StatusUnauthorized, "user not authenticated"))
		return
	}

	postID := c.Param("postId")
	if postID == "" {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, domain.ErrBadParamInput.Error()))
		return
	}

	liked, err := h.Service.ToggleLike(c.Request.Context(), uid, postID)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewBody(http.StatusOK, gin.H{"liked": liked}))
}

// Comment appends a comment to the post
func (h *PostHandler) Comment(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.NewMessage(http.StatusUnauthorized, "user not authenticated"))
		return
	}

	postID := c.Param("postId")
	if postID == "" {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, domain.ErrBadParamInput.Error()))
		return
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewMessage(http.StatusBadRequest, err.Error()))
		return
	}

	if err := h.Service.AddComment(c.Request.Context(), uid, postID, req.Comment); err != nil {
		code := getStatusCode(err)
		c.JSON(code, response.NewMessage(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.NewMessage(http.StatusOK, "comment added"))
}
