package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ninjasvg/internal/infra/httpserver"
	"github.com/aalvaropc/ninjasvg/internal/infra/logger"
	"github.com/aalvaropc/ninjasvg/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	var workspace string
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered components and modules over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer func() { _ = ws.close() }()

			if addr == "" {
				addr = ws.cfg.Server.Addr
			}

			log := logger.L()
			h := httpserver.New(
				usecase.NewRenderComponent(ws.templates, usecase.WithLogger(log)),
				usecase.NewRenderModule(ws.templates, usecase.WithLogger(log)),
				log,
				httpserver.Options{
					Background: ws.cfg.Render.Background,
					Sanitize:   ws.cfg.Render.Sanitize,
				},
			)

			srv := &http.Server{
				Addr:              addr,
				Handler:           h.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("server.listening", "addr", addr, "workspace", ws.root, "backend", ws.cfg.Storage.Backend)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serve %s: %w", addr, err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			log.Info("server.shutdown")
			return srv.Shutdown(shutdownCtx)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr from ninjasvg.yaml)")
	return c
}
