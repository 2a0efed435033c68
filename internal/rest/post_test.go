package rest_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/domain/mocks"
	"github.com/snapfeed-app/snapfeed-backend/internal/rest"
)

func multipartBody(t *testing.T, description, filename string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.WriteField("description", description))
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte{0x1, 0x2, 0x3})
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestPostHandlerCreate(t *testing.T) {
	mockUsecase := new(mocks.PostUsecase)
	created := domain.Post{
		ID:          "p1",
		UserID:      "u1",
		Description: "a lovely sunset",
		Image:       "post-key.jpg",
		Date:        time.Now(),
	}
	mockUsecase.On("Create", mock.Anything, "u1", "a lovely sunset", mock.Anything).
		Return(created, nil).Once()

	r := newRouter("u1")
	handler := rest.NewPostHandler(mockUsecase)
	r.POST("/posts", handler.Create)

	body, contentType := multipartBody(t, "a lovely sunset", "sunset.jpg")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		StatusCode int `json:"statusCode"`
		Body       struct {
			ID     string `json:"id"`
			UserID string `json:"userId"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "p1", envelope.Body.ID)
	assert.Equal(t, "u1", envelope.Body.UserID)
	mockUsecase.AssertExpectations(t)
}

func TestPostHandlerCreateMissingFile(t *testing.T) {
	mockUsecase := new(mocks.PostUsecase)

	r := newRouter("u1")
	handler := rest.NewPostHandler(mockUsecase)
	r.POST("/posts", handler.Create)

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.WriteField("description", "a lovely sunset"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPostHandlerToggleLike(t *testing.T) {
	mockUsecase := new(mocks.PostUsecase)
	mockUsecase.On("ToggleLike", mock.Anything, "u1", "p1").
		Return(true, nil).Once()

	r := newRouter("u1")
	handler := rest.NewPostHandler(mockUsecase)
	r.PATCH("/posts/:postId/like", handler.ToggleLike)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/posts/p1/like", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Body struct {
			Liked bool `json:"liked"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Body.Liked)
}

func TestPostHandlerComment(t *testing.T) {
	mockUsecase := new(mocks.PostUsecase)
	mockUsecase.On("AddComment", mock.Anything, "u1", "p1", "what a view").
		Return(nil).Once()

	r := newRouter("u1")
	handler := rest.NewPostHandler(mockUsecase)
	r.POST("/posts/:postId/comments", handler.Comment)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/p1/comments",
		strings.NewReader(`{"comment":"what a view"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsecase.AssertExpectations(t)
}

func TestPostHandlerCommentMissingBody(t *testing.T) {
	mockUsecase := new(mocks.PostUsecase)

	r := newRouter("u1")
	handler := rest.NewPostHandler(mockUsecase)
	r.POST("/posts/:postId/comments", handler.Comment)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/p1/comments",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUsecase.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
