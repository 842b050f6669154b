package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "karaku/backend/docs"
	"karaku/backend/internal/handler"
)

func NewRouter(
	characterHandler *handler.CharacterHandler,
	translationHandler *handler.TranslationHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	characterHandler.RegisterRoutes(api)
	translationHandler.RegisterRoutes(api)

	return e
}
