package main

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

	"github.com/rescoffi45/glassflix2/handlers"
	"github.com/rescoffi45/glassflix2/utils"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			router := utils.NewRouter(a.logger)
			h := &handlers.Handlers{
				Discover:   handlers.NewDiscoverHandler(a.catalog, a.manager),
				Media:      handlers.NewMediaHandler(a.catalog, a.manager),
				Search:     handlers.NewSearchHandler(a.searcher, a.manager),
				Collection: handlers.NewCollectionHandler(a.store, a.resolver, a.manager, a.location),
				Auth:       handlers.NewAuthHandler(a.users, a.bridge),
				Recommend:  handlers.NewRecommendHandler(a.ai, a.store, a.manager),
			}
			h.Register(router)

			server := &http.Server{
				Addr:              a.settings.Server.Bind,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("server.listening", "addr", server.Addr)
				errCh <- server.ListenAndServe()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
			case sig := <-stop:
				a.logger.Info("server.shutting_down", "signal", sig.String())
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(ctx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
			}
			return nil
		},
	}
}
