package handler

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/mdpad/mdpad/internal/render"
)

type PostHandler struct {
	logger *zap.Logger
}

func NewPost(l *zap.Logger) *PostHandler {
	return &PostHandler{
		logger: l,
	}
}

// Preview renders a posted markdown body to sanitized HTML. Stateless: no
// document is stored or read.
func (h *PostHandler) Preview(res http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	defer req.Body.Close()

	if err != nil {
		res.WriteHeader(http.StatusBadRequest)
		return
	}

	if len(body) == 0 {
		res.WriteHeader(http.StatusBadRequest)
		return
	}

	html := render.Render(body)

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.WriteHeader(http.StatusOK)

	_, writeErr := res.Write(html)
	if writeErr != nil {
		h.logger.Error("failed to write preview response", zap.Error(writeErr))
	}
}
