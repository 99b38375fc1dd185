/*
Server - Core HTTP Server Implementation for the auth core

This file wires the HTTP server: route setup, middleware configuration,
and the construction of every backing connection (Postgres, Redis, the
users directory gRPC client, WebAuthn) the domain services depend on.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/madome/auth-core/config"
	"github.com/madome/auth-core/internal/authcode"
	_ "github.com/madome/auth-core/internal/handlers"
	"github.com/madome/auth-core/internal/handlers/v1/api"
	"github.com/madome/auth-core/internal/identity"
	"github.com/madome/auth-core/internal/identity/pb"
	"github.com/madome/auth-core/internal/middlewares"
	"github.com/madome/auth-core/internal/passkey"
	"github.com/madome/auth-core/internal/token"
	"github.com/madome/auth-core/internal/tokenservice"
	"github.com/madome/auth-core/pkg"
)

// Server represents the HTTP server instance for the auth core.
type Server struct {
	Router *mux.Router
	Cfg    *config.Config
	logger *pkg.Logger
}

// NewServer wires every backing connection and domain service, then builds
// the HTTP router around them.
func NewServer(cfg *config.Config) (*Server, error) {
	logger := pkg.NewLogger()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	redisClient := redis.NewClient(redisOpts)

	conn, err := grpc.NewClient(cfg.UsersGRPCURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial users directory: %w", err)
	}
	idp := identity.NewGRPCPort(pb.NewUserDirectoryClient(conn))

	wa, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.Name,
		RPID:          cfg.WebauthnRPID,
		RPOrigins:     []string{cfg.WebauthnOrigin},
	})
	if err != nil {
		return nil, fmt.Errorf("configure webauthn relying party: %w", err)
	}

	codec := token.NewCodec(cfg.JWTSecret)

	acSvc := authcode.NewService(authcode.NewPostgresRepository(pool), idp)
	pkSvc := passkey.NewService(wa, passkey.NewPostgresRepository(pool), passkey.NewRedisCache(redisClient), idp, codec)
	tokSvc := tokenservice.NewService(codec, acSvc, idp)

	router := mux.NewRouter()
	server := &Server{Router: router, Cfg: cfg, logger: logger}

	server.initializeMiddlewares()
	server.initializeRoutes(acSvc, pkSvc, tokSvc)

	return server, nil
}

// initializeMiddlewares configures the global middleware chain, applied to
// every route before it reaches a handler.
func (s *Server) initializeMiddlewares() {
	s.Router.Use(middlewares.RequestIDMiddleware)
	s.Router.Use(middlewares.CorsMiddleware)
	s.Router.Use(middlewares.LoggerMiddleware)
	s.Router.Use(middlewares.TimeoutMiddleware(s.Cfg.RequestTimeout))
}

// initializeRoutes registers the health, metrics and not-found handlers under
// the configured API prefix. The auth handlers are mounted at the root, so
// their paths (/auth/...) match the refresh cookie's /auth/token path.
func (s *Server) initializeRoutes(acSvc *authcode.Service, pkSvc *passkey.Service, tokSvc *tokenservice.Service) {
	apivx := s.Router.PathPrefix(s.Cfg.ApiPrefix).Subrouter()

	api.NewHealthCheckHandler().RegisterRoutes(apivx)
	api.NewMetricsHandler().RegisterRoutes(apivx)

	api.NewAuthCodeHandler(acSvc, s.logger).RegisterRoutes(s.Router)
	api.NewTokenHandler(tokSvc, s.Cfg.CookieDomain, s.logger).RegisterRoutes(s.Router)
	api.NewPasskeyHandler(pkSvc, s.Cfg.CookieDomain, s.logger).RegisterRoutes(s.Router)

	api.NewNotFoundHandler().RegisterRoutes(apivx)
}

// Start begins listening for HTTP requests on the configured port. This
// call is blocking.
func (s *Server) Start() error {
	defer s.logger.Close()

	addr := ":" + strconv.Itoa(s.Cfg.Port)
	s.logger.Info("Server started running on", "port", addr)

	return http.ListenAndServe(addr, s.Router)
}
