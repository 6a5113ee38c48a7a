package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"figchat/entities"
	"figchat/pkg/figure/repository"
	ragsvc "figchat/pkg/rag/service"
)

type FigureCtrl struct {
	repo repository.FigureRepository
	rag  ragsvc.RAGService
}

func New(repo repository.FigureRepository, rag ragsvc.RAGService) *FigureCtrl {
	return &FigureCtrl{repo: repo, rag: rag}
}

type figureReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *FigureCtrl) Create(c echo.Context) error {
	var req figureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	f := &entities.Figure{Name: req.Name, Description: strings.TrimSpace(req.Description)}
	if err := h.repo.Create(f); err != nil {
		if strings.Contains(strings.ToUpper(err.Error()), "UNIQUE") {
			return c.JSON(http.StatusConflict, map[string]string{"error": "figure already exists: " + req.Name})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FigureCtrl) List(c echo.Context) error {
	fs, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, fs)
}

func (h *FigureCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "figure not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FigureCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "figure not found"})
	}
	var req figureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		f.Name = name
	}
	f.Description = strings.TrimSpace(req.Description)
	if err := h.repo.Update(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

// Delete removes the figure, its documents, stored uploads and index.
func (h *FigureCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "figure not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.rag.DropFigure(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
