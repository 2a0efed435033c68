package rest

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

// getStatusCode maps domain errors onto the flat envelope convention:
// every locally detected failure (missing entity included) is a 400, only
// upstream failures surface as 500.
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrNotFound,
		domain.ErrBadParamInput,
		domain.ErrInvalidOperation,
		domain.ErrConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// callerID returns the authenticated subject id placed in the context by
// the auth middleware.
func callerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// readUpload loads a multipart file field into memory. A missing field is
// reported as (nil, nil) so optional uploads stay optional.
func readUpload(c *gin.Context, field string) (*domain.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func(f multipart.File) {
		_ = f.Close()
	}(file)

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &domain.FileUpload{
		Name:    header.Filename,
		Content: content,
	}, nil
}
