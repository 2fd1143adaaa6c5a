// Package server initializes and runs the scrapbook application server.
// It wires the connection manager, repositories, media uploader, and HTTP
// endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/scrapbook/internal/logging"
	"github.com/dmitrijs2005/scrapbook/internal/server/config"
	"github.com/dmitrijs2005/scrapbook/internal/server/httpapi"
	"github.com/dmitrijs2005/scrapbook/internal/server/media"
	"github.com/dmitrijs2005/scrapbook/internal/server/repositories/todos"
	"github.com/dmitrijs2005/scrapbook/internal/server/services"
	"github.com/dmitrijs2005/scrapbook/internal/server/shared/db"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager *db.MongoManager
	server  *httpapi.HTTPServer
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// The manager is created once here and injected by reference; it opens
	// its connection lazily on the first repository call.
	manager := db.NewMongoManager(c.MongoURI, c.MongoDatabase, c.MongoCollection)

	repo := todos.NewMongoRepository(manager)

	uploader := media.NewS3Uploader(media.S3Config{
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		Folder:       c.S3Folder,
	})

	svc := services.NewTodoService(repo, uploader, c.PageSize)
	handler := httpapi.NewHandler(svc, logger)
	srv := httpapi.NewHTTPServer(c.Address, handler, logger)

	return &App{config: c, logger: logger, manager: manager, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "error closing db connection", "error", err.Error())
	}
}
