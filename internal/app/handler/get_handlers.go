package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type GetHandler struct {
	logger *zap.Logger
}

func NewGet(l *zap.Logger) *GetHandler {
	return &GetHandler{
		logger: l,
	}
}

// Health is the diagnostic endpoint. Document state lives entirely on the
// client, so there is nothing else to report.
func (h *GetHandler) Health(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)

	response, _ := json.Marshal(map[string]string{"status": "ok"})
	_, writeErr := res.Write(response)
	if writeErr != nil {
		h.logger.Error("failed to write health response", zap.Error(writeErr))
	}
}
