package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/cradlekit/cradle/internal/profile"
	apiv1 "github.com/cradlekit/cradle/server/router/api/v1"
	"github.com/cradlekit/cradle/store"
)

type Server struct {
	Secret  string
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
	apiService *apiv1.APIV1Service
}

func NewServer(ctx context.Context, profile *profile.Profile, store *store.Store) (*Server, error) {
	echoServer := echo.New()
	echoServer.Debug = true
	echoServer.HideBanner = true
	echoServer.HidePort = true

	echoServer.Use(echomw.Recover())
	echoServer.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	}))

	s := &Server{
		Secret:     profile.Secret,
		Profile:    profile,
		Store:      store,
		echoServer: echoServer,
	}

	echoServer.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service ready.")
	})

	apiService, err := apiv1.NewAPIV1Service(s.Secret, profile, store)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create API v1 service")
	}
	apiService.RegisterRoutes(echoServer)
	s.apiService = apiService

	return s, nil
}

func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	started := make(chan error, 1)

	go func() {
		err := s.echoServer.Start(address)
		if err != nil && err != http.ErrServerClosed {
			started <- err
		}
	}()

	select {
	case err := <-started:
		return errors.Wrap(err, "failed to start echo server")
	case <-time.After(100 * time.Millisecond):
		slog.Info("server started", slog.String("address", address))
		return nil
	}
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close database", slog.String("error", err.Error()))
	}

	slog.Info("server shutdown")
}
