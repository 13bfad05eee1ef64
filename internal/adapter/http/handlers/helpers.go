package handlers

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"torchline_portal/internal/adapter/http/middleware"
	"torchline_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Reads stop one byte past the upload limit so the use case still sees an
// oversized file and rejects it.
const uploadReadLimit = 10*1024*1024 + 1

func readUpload(fh *multipart.FileHeader) (usecase.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return usecase.FileUpload{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, uploadReadLimit))
	if err != nil {
		return usecase.FileUpload{}, err
	}
	return usecase.FileUpload{
		FileName: fh.Filename,
		FileType: strings.ToLower(fh.Header.Get("Content-Type")),
		Content:  content,
	}, nil
}

// actor is the session email, empty for anonymous requests.
func actor(c *gin.Context) string {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return ""
	}
	return user.Email
}

func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
