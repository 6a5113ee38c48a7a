package controllerImp

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"figchat/entities"
	"figchat/pkg/extract"
	figrepo "figchat/pkg/figure/repository"
	"figchat/pkg/rag/chunker"
	"figchat/pkg/rag/embedder"
	docrepo "figchat/pkg/rag/repository"
	ragsvc "figchat/pkg/rag/service"
)

const maxUploadBytes = 20 << 20

type DocumentCtrl struct {
	figures figrepo.FigureRepository
	docs    docrepo.DocumentRepository
	rag     ragsvc.RAGService
	allow   map[string]bool
}

func New(figures figrepo.FigureRepository, docs docrepo.DocumentRepository, rag ragsvc.RAGService, allowedDomains []string) *DocumentCtrl {
	allow := map[string]bool{}
	for _, h := range allowedDomains {
		allow[strings.ToLower(h)] = true
	}
	return &DocumentCtrl{figures: figures, docs: docs, rag: rag, allow: allow}
}

// Upload ingests a multipart file: extract -> chunk -> rebuild index.
// Any stage failing rejects the upload; no document row survives it.
func (h *DocumentCtrl) Upload(c echo.Context) error {
	fig, err := h.figure(c)
	if err != nil {
		return notFoundOr500(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file field is required"})
	}
	if fh.Size > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "file too large"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read upload"})
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read upload"})
	}

	doc, n, err := h.rag.IngestDocument(c.Request().Context(), fig, fh.Filename, data)
	if err != nil {
		return ingestError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"doc": doc, "chunks": n})
}

// UploadURL ingests the extracted text of an allow-listed web page.
func (h *DocumentCtrl) UploadURL(c echo.Context) error {
	fig, err := h.figure(c)
	if err != nil {
		return notFoundOr500(c, err)
	}
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil || u.Host == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	doc, n, err := h.rag.IngestURL(c.Request().Context(), fig, body.URL)
	if err != nil {
		return ingestError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"doc": doc, "chunks": n})
}

func (h *DocumentCtrl) List(c echo.Context) error {
	fig, err := h.figure(c)
	if err != nil {
		return notFoundOr500(c, err)
	}
	ds, err := h.docs.ByFigure(fig.FigureID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ds)
}

// Reindex rebuilds the figure's index from its stored documents.
func (h *DocumentCtrl) Reindex(c echo.Context) error {
	fig, err := h.figure(c)
	if err != nil {
		return notFoundOr500(c, err)
	}
	n, err := h.rag.Rebuild(c.Request().Context(), fig.FigureID)
	if err != nil {
		return ingestError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"figure_id": fig.FigureID, "chunks": n})
}

func (h *DocumentCtrl) figure(c echo.Context) (*entities.Figure, error) {
	id, _ := strconv.Atoi(c.Param("id"))
	return h.figures.FindByID(uint(id))
}

func notFoundOr500(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "figure not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func ingestError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, extract.ErrNoText),
		errors.Is(err, extract.ErrUnsupported),
		errors.Is(err, chunker.ErrEmptyText):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, embedder.ErrUnavailable):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
