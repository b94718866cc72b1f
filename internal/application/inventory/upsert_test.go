package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id    int
	value string
}

func TestFindOrInsert(t *testing.T) {
	ctx := context.Background()
	inserted := 0
	insert := func(context.Context, *item) error { inserted++; return nil }

	existing := &item{id: 1, value: "viejo"}
	got, err := findOrInsert(ctx,
		func(context.Context) (*item, error) { return existing, nil },
		func() *item { return &item{value: "nuevo"} },
		insert)
	require.NoError(t, err)
	assert.Same(t, existing, got)
	assert.Equal(t, "viejo", got.value)
	assert.Zero(t, inserted)

	got, err = findOrInsert(ctx,
		func(context.Context) (*item, error) { return nil, nil },
		func() *item { return &item{value: "nuevo"} },
		insert)
	require.NoError(t, err)
	assert.Equal(t, "nuevo", got.value)
	assert.Equal(t, 1, inserted)
}

func TestFindThenUpsert(t *testing.T) {
	ctx := context.Background()
	var inserted, updated int
	insert := func(context.Context, *item) error { inserted++; return nil }
	update := func(context.Context, *item) error { updated++; return nil }
	apply := func(i *item) { i.value = "fila" }

	existing := &item{id: 7, value: "viejo"}
	got, created, err := findThenUpsert(ctx,
		func(context.Context) (*item, error) { return existing, nil },
		func() *item { return &item{} }, apply, insert, update)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 7, got.id)
	assert.Equal(t, "fila", got.value)

	got, created, err = findThenUpsert(ctx,
		func(context.Context) (*item, error) { return nil, nil },
		func() *item { return &item{} }, apply, insert, update)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "fila", got.value)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 1, updated)
}

func TestFindThenUpsert_PropagaErrores(t *testing.T) {
	boom := errors.New("boom")
	_, _, err := findThenUpsert(context.Background(),
		func(context.Context) (*item, error) { return nil, boom },
		func() *item { return &item{} }, func(*item) {},
		func(context.Context, *item) error { return nil },
		func(context.Context, *item) error { return nil })
	assert.ErrorIs(t, err, boom)
}
