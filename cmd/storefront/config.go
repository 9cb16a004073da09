package main

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
	"github.com/wwegiel111/Elektro-shop/pkg/domain/service"
	"github.com/wwegiel111/Elektro-shop/pkg/infrastructure/seed"
)

const appID = "storefront"

type config struct {
	ListenAddr       string `envconfig:"LISTEN_ADDR" default:":8080"`
	SeedFile         string `envconfig:"SEED_FILE"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	MaxLineQuantity  int    `envconfig:"MAX_LINE_QUANTITY"`
	MaxCartLines     int    `envconfig:"MAX_CART_LINES"`
	RejectOutOfStock bool   `envconfig:"REJECT_OUT_OF_STOCK"`
	Collation        string `envconfig:"COLLATION" default:"pl"`
	MySQLDSN         string `envconfig:"MYSQL_DSN"`
}

func parseEnv() (*config, error) {
	c := new(config)
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	return c, nil
}

// loadConfig reads the environment and lets command line flags override it.
func loadConfig(ctx *cli.Context) (*config, error) {
	c, err := parseEnv()
	if err != nil {
		return nil, err
	}
	if ctx.IsSet("listen") {
		c.ListenAddr = ctx.String("listen")
	}
	if ctx.IsSet("seed-file") {
		c.SeedFile = ctx.String("seed-file")
	}
	if ctx.IsSet("log-level") {
		c.LogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("dsn") {
		c.MySQLDSN = ctx.String("dsn")
	}
	return c, nil
}

func (c *config) setupLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func (c *config) storeOptions() (service.Options, error) {
	tag, err := language.Parse(c.Collation)
	if err != nil {
		return service.Options{}, errors.Wrapf(err, "collation %q", c.Collation)
	}
	opts := service.DefaultOptions()
	opts.MaxLineQuantity = c.MaxLineQuantity
	opts.MaxCartLines = c.MaxCartLines
	opts.RejectOutOfStock = c.RejectOutOfStock
	opts.Collation = tag
	return opts, nil
}

// catalog returns the seed file contents, or the built-in catalog when no file is configured
// or the file does not exist.
func (c *config) catalog() ([]model.Product, error) {
	if c.SeedFile == "" {
		return seed.Default(), nil
	}
	products, err := seed.Load(c.SeedFile)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			log.WithField("file", c.SeedFile).Warn("Seed file not found, starting with the default catalog.")
			return seed.Default(), nil
		}
		return nil, err
	}
	return products, nil
}
