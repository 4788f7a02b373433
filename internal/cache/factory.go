package cache

import "github.com/ryndalv/skein/internal/app"

type Factory interface {
	Create(app app.Context, conf map[string]any) (Cache, error)
}

type FactoryFunc func(app app.Context, conf map[string]any) (Cache, error)

func (f FactoryFunc) Create(app app.Context, conf map[string]any) (Cache, error) {
	return f(app, conf)
}
