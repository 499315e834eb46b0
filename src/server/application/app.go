package application

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	separationgateway "github.com/veedubyou/track-splitter/src/server/internal/separation/gateway"
	"github.com/veedubyou/track-splitter/src/shared/split/pipeline"
)

type HTTPMethod string

const (
	GET  HTTPMethod = "GET"
	POST HTTPMethod = "POST"
)

// uploads are whole tracks
const maxUploadSize = "200M"

type App struct {
	echo     *echo.Echo
	port     string
	pipeline pipeline.Pipeline
}

type Config struct {
	Pipeline           pipeline.Config
	CORSAllowedOrigins []string
	Port               string
	Log                bool
}

func NewApp(config Config) App {
	e := echo.New()
	e.HideBanner = true

	if config.Log {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.BodyLimit(maxUploadSize))

	corsMiddleware := makeCorsMiddleware(config)

	handleRoute := func(method HTTPMethod, path string, handlerFunc echo.HandlerFunc) {
		params := func() (string, echo.HandlerFunc, echo.MiddlewareFunc) {
			return path, handlerFunc, corsMiddleware
		}

		e.OPTIONS(params())

		switch method {
		case GET:
			e.GET(params())
		case POST:
			e.POST(params())
		default:
			panic("unhandled http method!")
		}
	}

	splitPipeline := pipeline.New(config.Pipeline)
	separationGateway := separationgateway.NewGateway(
		splitPipeline.Usecase,
		config.Pipeline.InputDirPath,
		config.Pipeline.OutputDirPath,
	)

	// health check
	handleRoute(GET, "/health-check", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// separation routes
	handleRoute(POST, "/separations", separationGateway.CreateSeparation)
	handleRoute(GET, "/separations/:id", func(c echo.Context) error {
		separationID := c.Param("id")
		return separationGateway.GetSeparation(c, separationID)
	})

	// artifact downloads
	handleRoute(GET, "/downloads/:role/:filename", func(c echo.Context) error {
		role := c.Param("role")
		fileName := c.Param("filename")
		return separationGateway.Download(c, role, fileName)
	})

	return App{
		echo:     e,
		port:     config.Port,
		pipeline: splitPipeline,
	}
}

func (a *App) Start() error {
	err := a.echo.Start(a.port)
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "Couldn't start echo server")
	}

	return nil
}

func (a *App) Stop() error {
	defer a.pipeline.Close()

	err := a.echo.Close()
	if err != nil {
		return errors.Wrap(err, "Failed to stop echo server")
	}

	return nil
}

func makeCorsMiddleware(config Config) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: config.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderContentType},
	})
}
