package binaryfinder

import (
	"context"

	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/errors"
	"go.uber.org/zap"
)

// Scope is what a strategy may use to locate a binary. A zero Scope means no project.
type Scope struct {
	Root   string
	Folder *entity.WorkspaceFolder
}

// Strategy is one mechanism for locating the language server binary.
// An empty location with a nil error is a miss. A non-nil error is a fault and is treated as a miss by the chain.
type Strategy interface {
	Name() string
	Find(ctx context.Context, scope Scope) (entity.BinaryLocation, error)
}

// Condition gates a strategy. A false result or an error skips it.
type Condition func(ctx context.Context, scope Scope) (bool, error)

// Entry is a Strategy with an optional gate and a success observer.
type Entry struct {
	Strategy  Strategy
	Condition Condition
	OnSuccess func(loc entity.BinaryLocation)
}

// Chain is an ordered list of entries evaluated until one yields a location.
type Chain []Entry

// Resolve runs the chain in order and returns the first location found.
// It never fails: faults are logged and treated as misses.
func (c Chain) Resolve(ctx context.Context, scope Scope, logger *zap.SugaredLogger) (entity.BinaryLocation, Strategy, bool) {
	for _, e := range c {
		name := e.Strategy.Name()

		if e.Condition != nil {
			ok, err := e.Condition(ctx, scope)
			if err != nil {
				logger.Debugw("strategy condition failed", "error", &errors.ResolutionFault{Strategy: name, Err: err})
				continue
			}
			if !ok {
				logger.Debugw("strategy skipped by condition", "strategy", name, "root", scope.Root)
				continue
			}
		}

		loc, err := e.Strategy.Find(ctx, scope)
		if err != nil {
			logger.Debugw("strategy failed", "error", &errors.ResolutionFault{Strategy: name, Err: err})
			continue
		}
		if loc == "" {
			continue
		}

		if e.OnSuccess != nil {
			e.OnSuccess(loc)
		}
		return loc, e.Strategy, true
	}
	return "", nil, false
}
