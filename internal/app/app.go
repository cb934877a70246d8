// Package app implements the application layer: loading a plan and driving
// an evaluation session over it.
package app

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/eetumartola/grapho/internal/core/domain"
	"github.com/eetumartola/grapho/internal/core/ports"
	"github.com/eetumartola/grapho/internal/engine/eval"
)

// App represents the main application logic.
type App struct {
	loader ports.PlanLoader
	cache  ports.EvalCache
	exec   ports.Executor
	tracer ports.Tracer
	log    ports.Logger
}

// New creates a new App instance.
func New(loader ports.PlanLoader, cache ports.EvalCache, exec ports.Executor, tracer ports.Tracer, log ports.Logger) *App {
	return &App{
		loader: loader,
		cache:  cache,
		exec:   exec,
		tracer: tracer,
		log:    log,
	}
}

// Load reads a plan file and returns a session bound to its graph. The
// session owns the cache from here on; one process evaluates one plan, so
// cache entries never mix between graphs.
func (a *App) Load(path string) (*eval.Session, error) {
	project, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load plan")
	}

	session := eval.NewSession(project.Graph, a.cache, a.exec, a.tracer, a.log)
	session.SetBaseColor(project.Settings.BaseColor)
	return session, nil
}

// Evaluate loads a plan and runs one full evaluation of its output node.
func (a *App) Evaluate(ctx context.Context, path string) (*domain.SceneSnapshot, *eval.Report, error) {
	session, err := a.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return session.Evaluate(ctx)
}
