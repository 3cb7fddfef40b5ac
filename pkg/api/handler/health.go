package handler

import (
	"net/http"

	"github.com/mkravets/skin-assist-bot/pkg/api/response"
)

type health struct {
	writer response.JSONWriter
}

func NewHealth() *health {
	return &health{}
}

func (h *health) Handle(w http.ResponseWriter, r *http.Request) {
	h.writer.Success(w, map[string]string{"status": "healthy"})
}
