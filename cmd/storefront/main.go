package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/service"
	"github.com/wwegiel111/Elektro-shop/pkg/infrastructure/events"
	"github.com/wwegiel111/Elektro-shop/pkg/infrastructure/mysql"
	"github.com/wwegiel111/Elektro-shop/pkg/infrastructure/seed"
	"github.com/wwegiel111/Elektro-shop/pkg/infrastructure/sqlscript"
	"github.com/wwegiel111/Elektro-shop/pkg/transport"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  appID,
		Usage: "ElektroShop storefront simulation",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seed-file", Usage: "JSON catalog to start with"},
			&cli.StringFlag{Name: "log-level", Usage: "logrus level"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "listen", Usage: "listen address"}, dsnFlag()},
				Action: serve,
			},
			{
				Name:   "sql",
				Usage:  "print the database bootstrap script for the catalog",
				Action: printSQL,
			},
			{
				Name:  "seed",
				Usage: "write the built-in catalog to a JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Value: "catalog.json", Usage: "output file"},
				},
				Action: writeSeed,
			},
			{
				Name:   "migrate",
				Usage:  "apply the reporting schema to MySQL",
				Flags:  []cli.Flag{dsnFlag()},
				Action: runMigrations,
			},
			{
				Name:   "export",
				Usage:  "copy the catalog into the MySQL reporting tables",
				Flags:  []cli.Flag{dsnFlag()},
				Action: exportCatalog,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("storefront failed")
	}
}

func dsnFlag() cli.Flag {
	return &cli.StringFlag{Name: "dsn", Usage: "MySQL DSN, e.g. user:pass@tcp(localhost:3306)/elektro_shop"}
}

func serve(ctx *cli.Context) error {
	c, err := setup(ctx)
	if err != nil {
		return err
	}
	products, err := c.catalog()
	if err != nil {
		return err
	}
	opts, err := c.storeOptions()
	if err != nil {
		return err
	}

	store := service.NewStore(products, events.NewLogDispatcher(log.StandardLogger()), opts)

	var exporter transport.Exporter
	if c.MySQLDSN != "" {
		db, err := mysql.Open(ctx.Context, c.MySQLDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		exporter = mysql.NewExporter(db)
	}

	srv := &http.Server{
		Addr:              c.ListenAddr,
		Handler:           transport.Router(store, service.DefaultCredentials(), exporter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx.Context)
	g.Go(func() error {
		log.WithFields(log.Fields{"url": c.ListenAddr, "products": len(products)}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "failed to start server")
		}
		return nil
	})
	g.Go(func() error {
		waitForKillSignal(gctx, getKillSignalChan())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func printSQL(ctx *cli.Context) error {
	c, err := setup(ctx)
	if err != nil {
		return err
	}
	products, err := c.catalog()
	if err != nil {
		return err
	}
	script, err := sqlscript.Generate(products)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, script)
	return err
}

func writeSeed(ctx *cli.Context) error {
	if _, err := setup(ctx); err != nil {
		return err
	}
	out := ctx.String("out")
	if err := seed.Save(out, seed.Default()); err != nil {
		return err
	}
	log.WithField("file", out).Info("Catalog written")
	return nil
}

func runMigrations(ctx *cli.Context) error {
	c, err := setup(ctx)
	if err != nil {
		return err
	}
	if c.MySQLDSN == "" {
		return errors.New("mysql dsn is not configured")
	}
	return mysql.Migrate(c.MySQLDSN)
}

func exportCatalog(ctx *cli.Context) error {
	c, err := setup(ctx)
	if err != nil {
		return err
	}
	if c.MySQLDSN == "" {
		return errors.New("mysql dsn is not configured")
	}
	products, err := c.catalog()
	if err != nil {
		return err
	}

	db, err := mysql.Open(ctx.Context, c.MySQLDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = mysql.NewExporter(db).ExportCatalog(ctx.Context, products); err != nil {
		return err
	}
	log.WithField("products", len(products)).Info("Catalog exported")
	return nil
}

func setup(ctx *cli.Context) (*config, error) {
	c, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return c, c.setupLogging()
}

func getKillSignalChan() chan os.Signal {
	osKillSignalChan := make(chan os.Signal, 1)
	signal.Notify(osKillSignalChan, os.Interrupt, syscall.SIGTERM)
	return osKillSignalChan
}

func waitForKillSignal(ctx context.Context, killSignalChan <-chan os.Signal) {
	select {
	case killSignal := <-killSignalChan:
		switch killSignal {
		case os.Interrupt:
			log.Info("Got SIGINT...")
		case syscall.SIGTERM:
			log.Info("Got SIGTERM...")
		}
	case <-ctx.Done():
	}
}
