//go:build wireinject
// +build wireinject

package main

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/handler"
	"Foodgram/middleware"
	"Foodgram/pkg/client"
	"Foodgram/pkg/database"
	"Foodgram/pkg/media"
	"Foodgram/pkg/rocketmq"
	"Foodgram/pkg/server"
	"Foodgram/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		config.ProvideOssConfig,
		config.ProvideRocketMQConfig,
		rocketmq.NewPublisher,
		media.ProvideStore,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Bind(new(middleware.Revoker), new(*cache.TokenStorage)),

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Recipe), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil, nil
}

func InitCatalog(cfg *config.Config) *service.CatalogService {
	wire.Build(
		database.NewDB,
		dao.NewTagDAO,
		dao.NewIngredientDAO,
		wire.Struct(new(service.CatalogService), "*"),
	)
	return nil
}
