package internal

import (
	"go.uber.org/fx"

	"github.com/ryndalv/skein/internal/app"
	cachemodule "github.com/ryndalv/skein/internal/cache/module"
	"github.com/ryndalv/skein/internal/handler/management"
	"github.com/ryndalv/skein/internal/handler/metrics"
	"github.com/ryndalv/skein/internal/otel"
	otelmetrics "github.com/ryndalv/skein/internal/otel/metrics"
	"github.com/ryndalv/skein/internal/patterns"
	"github.com/ryndalv/skein/internal/watcher"
)

// nolint
var Module = fx.Options(
	watcher.Module,
	app.Module,
	cachemodule.Module,
	otel.Module,
	otelmetrics.Module,
	patterns.Module,
	management.Module,
	metrics.Module,
)
