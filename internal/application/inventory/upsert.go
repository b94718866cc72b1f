package inventory

import "context"

// findOrInsert reutiliza la entidad que devuelve lookup o inserta la que construye build.
// La entidad existente no se modifica.
func findOrInsert[T any](
	ctx context.Context,
	lookup func(context.Context) (*T, error),
	build func() *T,
	insert func(context.Context, *T) error,
) (*T, error) {
	found, err := lookup(ctx)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}
	fresh := build()
	if err := insert(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// findThenUpsert aplica apply sobre la entidad existente y la actualiza, o sobre una nueva de build y la inserta.
// El bool indica si se insertó.
func findThenUpsert[T any](
	ctx context.Context,
	lookup func(context.Context) (*T, error),
	build func() *T,
	apply func(*T),
	insert func(context.Context, *T) error,
	update func(context.Context, *T) error,
) (*T, bool, error) {
	found, err := lookup(ctx)
	if err != nil {
		return nil, false, err
	}
	if found == nil {
		fresh := build()
		apply(fresh)
		if err := insert(ctx, fresh); err != nil {
			return nil, false, err
		}
		return fresh, true, nil
	}
	apply(found)
	if err := update(ctx, found); err != nil {
		return nil, false, err
	}
	return found, false, nil
}
