package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	figCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	docCtrl interface {
		Upload(echo.Context) error
		UploadURL(echo.Context) error
		List(echo.Context) error
		Reindex(echo.Context) error
	},
	chatCtrl interface{ Ask(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/figures", figCtrl.Create)
	e.GET("/figures", figCtrl.List)
	e.GET("/figures/:id", figCtrl.Get)
	e.PUT("/figures/:id", figCtrl.Update)
	e.DELETE("/figures/:id", figCtrl.Delete)

	g := e.Group("/figures/:id")
	g.POST("/documents", docCtrl.Upload)
	g.POST("/documents/url", docCtrl.UploadURL)
	g.GET("/documents", docCtrl.List)
	g.POST("/reindex", docCtrl.Reindex)
	g.POST("/chat", chatCtrl.Ask)

	return e
}
