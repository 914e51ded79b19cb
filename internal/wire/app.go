package wire

import (
	"context"
	_ "embed"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/karolinacerm/profolio/internal/catalog"
	"github.com/karolinacerm/profolio/internal/logging"
	"github.com/karolinacerm/profolio/internal/site"
	"github.com/karolinacerm/profolio/internal/source"
	"github.com/karolinacerm/profolio/pkg/api"
)

//go:embed fallback.yaml
var fallbackCatalogue string

// App aggregates the major services for easy injection.
type App struct {
	Cfg     *viper.Viper
	Log     *zap.Logger
	Loader  *source.Loader
	Builder *site.Builder
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	logger, err := logging.New(v.GetBool("verbose"))
	if err != nil {
		return nil, err
	}

	loader := source.NewLoader(logger, strategies(v, logger)...)

	builder := site.NewBuilder(logger)
	builder.OutputDir = v.GetString("output_dir")
	builder.SiteTitle = v.GetString("site.title")
	builder.BaseURL = v.GetString("site.base_url")
	builder.PartialsDir = v.GetString("partials_dir")
	builder.StaticDir = v.GetString("static_dir")

	return &App{
		Cfg:     v,
		Log:     logger,
		Loader:  loader,
		Builder: builder,
	}, nil
}

// strategies assembles the source fallback chain from config. Order is
// fixed: remote, then local file, then inline text.
func strategies(v *viper.Viper, logger *zap.Logger) []source.Strategy {
	var out []source.Strategy
	if url := v.GetString("source.url"); url != "" {
		out = append(out, source.HTTPStrategy{URL: url})
	}
	if path := v.GetString("source.file"); path != "" {
		out = append(out, source.FileStrategy{Path: path})
	}
	inline := fallbackCatalogue
	if path := v.GetString("source.inline_file"); path != "" {
		if b, err := os.ReadFile(path); err == nil {
			inline = string(b)
		} else {
			logger.Warn("inline fallback unreadable, using built-in",
				zap.String("path", path), zap.Error(err))
		}
	}
	out = append(out, source.InlineStrategy{Text: inline})
	return out
}

// LoadCatalog runs the fallback chain and normalizes whatever it yields.
func (a *App) LoadCatalog(ctx context.Context) (catalog.Catalog, error) {
	records, from, err := a.Loader.Load(ctx)
	if err != nil {
		return catalog.Catalog{}, err
	}
	cat := catalog.Normalize(records, catalog.Options{
		Dialect: api.Dialect(a.Cfg.GetString("render.dialect")),
	})
	a.Log.Info("catalogue ready",
		zap.String("source", from), zap.Int("projects", cat.Len()))
	return cat, nil
}
