package main

import (
	"Foodgram/config"
	"Foodgram/pkg/database"
	"Foodgram/pkg/log"
	"Foodgram/pkg/server"
	"Foodgram/types"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "foodgram http api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					if err := database.AutoMigrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate done")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "import tags and ingredients from json files",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "tags", Usage: "path to tags json"},
					&cli.StringFlag{Name: "ingredients", Usage: "path to ingredients json"},
				},
				Action: func(ctx *cli.Context) error {
					var (
						tags        []types.TagSeed
						ingredients []types.IngredientSeed
					)
					if err := readJSON(ctx.String("tags"), &tags); err != nil {
						return err
					}
					if err := readJSON(ctx.String("ingredients"), &ingredients); err != nil {
						return err
					}
					res, err := InitCatalog(cfg).Import(ctx.Context, tags, ingredients)
					if err != nil {
						return err
					}
					log.L.Info("seed done", zap.Int("tags", res.Tags), zap.Int("ingredients", res.Ingredients))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to run command", zap.Error(err))
	}
}

// readJSON 路径为空时跳过
func readJSON(path string, v any) error {
	if path == "" {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
