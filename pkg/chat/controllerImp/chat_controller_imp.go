package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"figchat/pkg/ai"
	"figchat/pkg/chat/service"
	"figchat/pkg/rag/embedder"
	"figchat/pkg/rag/index"
)

type ChatCtrl struct {
	s service.ChatService
}

func New(s service.ChatService) *ChatCtrl { return &ChatCtrl{s: s} }

type askReq struct {
	Question string `json:"question"`
}

func (h *ChatCtrl) Ask(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req askReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	answer, err := h.s.Ask(c.Request().Context(), uint(id), req.Question)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"answer": answer})
	case errors.Is(err, service.ErrEmptyQuestion):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "figure not found"})
	case errors.Is(err, index.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no documents indexed for this figure"})
	case errors.Is(err, embedder.ErrUnavailable), errors.Is(err, ai.ErrUnavailable):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
