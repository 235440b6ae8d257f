package server

import (
	"Foodgram/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	User    *handler.User
	Follow  *handler.Follow
	Catalog *handler.Catalog
	Recipe  *handler.Recipe
}
