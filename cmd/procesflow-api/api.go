// Package main provides the Procesflow API server implementation.
package main

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/vgnl/procesflow/pkg/persistence"
	"github.com/vgnl/procesflow/pkg/seed"
	"github.com/vgnl/procesflow/pkg/services"
	"github.com/vgnl/procesflow/pkg/store"
	"github.com/vgnl/procesflow/pkg/web"
)

type API struct {
	logger      *slog.Logger
	persistence persistence.Persistence
	pubsub      *gochannel.GoChannel
	validate    *validator.Validate
	debounce    time.Duration

	processStore  *store.ProcessStore
	decisionStore *store.DecisionStore
	filterStore   *store.FilterConfigStore
	autosaver     *store.Autosaver
}

func NewAPI(logger *slog.Logger, p persistence.Persistence, debounce time.Duration) *API {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewSlogLogger(logger),
	)

	a := &API{
		logger:      logger,
		persistence: p,
		pubsub:      pubsub,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		debounce:    debounce,
	}

	a.processStore = store.NewProcessStore(p, logger)
	a.decisionStore = store.NewDecisionStore(p, pubsub, logger)
	a.filterStore = store.NewFilterConfigStore(p, logger)
	a.autosaver = store.NewAutosaver(a.decisionStore, p, pubsub, logger, debounce)

	return a
}

// Init loads the bundled dataset into the process store, the persisted filter
// configuration, and the archive listings.
func (a *API) Init(ctx context.Context) error {
	data, err := seed.Load()
	if err != nil {
		return err
	}

	a.processStore.Init(ctx, data)
	a.filterStore.Load(ctx)
	a.decisionStore.RefreshFlowchartList(ctx)

	return a.autosaver.Start(ctx)
}

func (a *API) App() *fiber.App {
	archive := services.NewArchive(a.persistence)
	handlers := web.NewAPIHandlers(a.processStore, a.decisionStore, a.filterStore, archive, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Procesflow API")
	})

	p := app.Group("/process")
	p.Get("/", handlers.GetProcessGraph)
	p.Get("/nodes", handlers.GetProcessNodes)
	p.Post("/nodes", handlers.CreateProcessNode)
	p.Patch("/nodes/:id", handlers.UpdateProcessNode)
	p.Delete("/nodes/:id", handlers.DeleteProcessNode)
	p.Get("/edges", handlers.GetProcessEdges)
	p.Post("/edges", handlers.CreateProcessEdge)
	p.Patch("/edges/:id", handlers.UpdateProcessEdge)
	p.Delete("/edges/:id", handlers.DeleteProcessEdge)
	p.Get("/modules", handlers.GetProcessModules)
	p.Put("/selection", handlers.SetProcessSelection)
	p.Post("/edit-mode/toggle", handlers.ToggleEditMode)
	p.Post("/sidebar/toggle", handlers.ToggleSidebar)
	p.Get("/filters", handlers.GetFilters)
	p.Patch("/filters", handlers.UpdateFilters)
	p.Delete("/filters", handlers.ResetFilters)

	cv := app.Group("/canvasses")
	cv.Get("/", handlers.GetCanvasses)
	cv.Post("/", handlers.SaveCanvas)
	cv.Post("/new", handlers.NewCanvas)
	cv.Post("/:id/load", handlers.LoadCanvas)
	cv.Delete("/:id", handlers.DeleteCanvas)

	d := app.Group("/decision")
	d.Get("/", handlers.GetDecisionGraph)
	d.Post("/nodes", handlers.CreateDecisionNode)
	d.Patch("/nodes/:id", handlers.UpdateDecisionNode)
	d.Delete("/nodes/:id", handlers.DeleteDecisionNode)
	d.Post("/edges", handlers.CreateDecisionEdge)
	d.Patch("/edges/:id", handlers.UpdateDecisionEdge)
	d.Delete("/edges/:id", handlers.DeleteDecisionEdge)
	d.Post("/undo", handlers.Undo)
	d.Put("/selection", handlers.SetDecisionSelection)

	f := app.Group("/flowcharts")
	f.Get("/", handlers.GetFlowcharts)
	f.Post("/", handlers.SaveFlowchart)
	f.Post("/new", handlers.NewFlowchart)
	f.Post("/:id/load", handlers.LoadFlowchart)
	f.Delete("/:id", handlers.DeleteFlowchart)

	fc := app.Group("/filter-config")
	fc.Get("/", handlers.GetFilterConfig)
	fc.Post("/reset", handlers.ResetFilterConfig)
	fc.Post("/:categorieId/opties", handlers.CreateFilterOptie)
	fc.Patch("/:categorieId/opties/:optieId", handlers.UpdateFilterOptie)
	fc.Delete("/:categorieId/opties/:optieId", handlers.DeleteFilterOptie)
	fc.Put("/:categorieId/opties/order", handlers.ReorderFilterOpties)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(ctx context.Context, port int) error {
	if err := a.Init(ctx); err != nil {
		return err
	}

	app := a.App()

	return app.Listen(":" + strconv.Itoa(port))
}

func (a *API) Close() {
	a.autosaver.Close()

	if err := a.pubsub.Close(); err != nil {
		a.logger.Error("Failed to close event bus", "error", err)
	}
}
