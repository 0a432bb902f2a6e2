package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Component interface {
	Run(ctx context.Context) error
}

// Run runs every component until one of them fails or ctx is done.
func Run(ctx context.Context, components []Component) error {
	grp, grpCtx := errgroup.WithContext(ctx)
	for _, c := range components {
		grp.Go(func() error {
			return c.Run(grpCtx)
		})
	}

	return grp.Wait()
}
