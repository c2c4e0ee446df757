package promise

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Then runs fn once f settles and returns a future that adopts fn's future.
// fn receives f's value and error; exactly one of them is meaningful.
func Then[T, U any](ctx context.Context, f *Future[T], fn func(ctx context.Context, value T, err error) *Future[U]) *Future[U] {
	return Go(ctx, func(ctx context.Context) (U, error) {
		value, err := f.Result()
		next := invoke[U](ctx, func(ctx context.Context) *Future[U] {
			return fn(ctx, value, err)
		})
		return next.Result()
	})
}

// All joins futures. It resolves with every value in input order once all of
// them succeed, or rejects as soon as one of them fails. A nil input counts as
// a failure with ErrNilFuture. An empty input resolves with an empty slice.
// Cancelling ctx does not reject the join.
func All[T any](ctx context.Context, fs ...*Future[T]) *Future[[]T] {
	return Go(ctx, func(ctx context.Context) ([]T, error) {
		values := make([]T, len(fs))
		g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
		for i, f := range fs {
			g.Go(func() error {
				if f == nil {
					return ErrNilFuture
				}
				select {
				case <-f.Done():
				case <-gctx.Done():
					// Another input already failed.
					return nil
				}
				v, err := f.Result()
				if err != nil {
					return err
				}
				values[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return values, nil
	})
}
