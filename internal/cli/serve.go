package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/karolinacerm/profolio/internal/catalog"
	"github.com/karolinacerm/profolio/internal/server"
	"github.com/karolinacerm/profolio/internal/source"
	"github.com/karolinacerm/profolio/internal/wire"
)

func newServeCmd() *cobra.Command {
	var addr string
	var noWatch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve it with rebuild-on-change",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if addr == "" {
				addr = app.Cfg.GetString("http_addr")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(app.Log, app.Builder.OutputDir)

			rebuild := func() error {
				cat, err := serveCatalog(ctx, app)
				if err != nil {
					return err
				}
				if err := app.Builder.Build(cat); err != nil {
					return err
				}
				srv.SetCatalog(cat)
				return nil
			}
			if err := rebuild(); err != nil {
				return err
			}

			if !noWatch {
				if paths := watchPaths(app.Cfg); len(paths) > 0 {
					debounce := time.Duration(app.Cfg.GetInt("serve.debounce_ms")) * time.Millisecond
					go func() {
						if err := server.Watch(ctx, app.Log, paths, debounce, rebuild); err != nil {
							app.Log.Warn("watcher stopped", zap.Error(err))
						}
					}()
				}
			}

			httpSrv := &http.Server{Addr: addr, Handler: srv.Router()}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = httpSrv.Shutdown(shutdownCtx)
			}()

			app.Log.Info("serving site", zap.String("addr", addr))
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config http_addr)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "disable rebuild on source changes")
	return cmd
}

// serveCatalog loads the catalogue for serve mode. Total source
// exhaustion degrades to an empty catalogue so the site renders its
// explicit empty state instead of the server refusing to start; a fixed
// source then surfaces on the next watch rebuild.
func serveCatalog(ctx context.Context, app *wire.App) (catalog.Catalog, error) {
	cat, err := app.LoadCatalog(ctx)
	if err != nil {
		if !errors.Is(err, source.ErrExhausted) {
			return catalog.Catalog{}, err
		}
		app.Log.Warn("all project sources failed, serving empty state", zap.Error(err))
		return catalog.Catalog{}, nil
	}
	return cat, nil
}

// watchPaths lists the local inputs that should trigger a rebuild. Remote
// sources cannot be watched; the file tiers and override dirs can.
func watchPaths(v *viper.Viper) []string {
	var out []string
	for _, key := range []string{"source.file", "source.inline_file", "partials_dir", "static_dir"} {
		if p := v.GetString(key); p != "" {
			out = append(out, p)
		}
	}
	return out
}
