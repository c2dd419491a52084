package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/jovanyvelez/ejemplos/internal/domain/errors"
)

func TestItemService_GetItem(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner, err := env.user.CreateUser(ctx, CreateUserInput{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	created, err := env.user.CreateItemForUser(ctx, owner.ID, CreateItemInput{Nombre: "Laptop"})
	require.NoError(t, err)

	t.Run("existente", func(t *testing.T) {
		item, err := env.item.GetItem(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Laptop", item.Nombre)
	})

	t.Run("inexistente", func(t *testing.T) {
		_, err := env.item.GetItem(ctx, 999)
		assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
	})
}

func TestItemService_ListItems(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner, err := env.user.CreateUser(ctx, CreateUserInput{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	for _, nombre := range []string{"Laptop", "Mouse", "Teclado"} {
		_, err := env.user.CreateItemForUser(ctx, owner.ID, CreateItemInput{Nombre: nombre})
		require.NoError(t, err)
	}

	t.Run("orden ascendente y paginación", func(t *testing.T) {
		items, err := env.item.ListItems(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Mouse", items[0].Nombre)
	})

	t.Run("por propietario", func(t *testing.T) {
		items, err := env.item.ListItemsByOwner(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})
}

func TestItemService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner, err := env.user.CreateUser(ctx, CreateUserInput{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	desc := "vieja"
	created, err := env.user.CreateItemForUser(ctx, owner.ID, CreateItemInput{
		Nombre:      "Laptop",
		Descripcion: &desc,
	})
	require.NoError(t, err)

	t.Run("sobrescribe nombre y descripción", func(t *testing.T) {
		item, err := env.item.UpdateItem(ctx, created.ID, CreateItemInput{Nombre: "Laptop nueva"})
		require.NoError(t, err)
		assert.Equal(t, "Laptop nueva", item.Nombre)
		// Sin descripción en la entrada, la columna queda vacía
		assert.Nil(t, item.Descripcion)
	})

	t.Run("inexistente", func(t *testing.T) {
		_, err := env.item.UpdateItem(ctx, 999, CreateItemInput{Nombre: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
	})
}

func TestItemService_DeleteItem(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner, err := env.user.CreateUser(ctx, CreateUserInput{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	created, err := env.user.CreateItemForUser(ctx, owner.ID, CreateItemInput{Nombre: "Laptop"})
	require.NoError(t, err)

	t.Run("elimina y una segunda eliminación falla", func(t *testing.T) {
		require.NoError(t, env.item.DeleteItem(ctx, created.ID))
		assert.ErrorIs(t, env.item.DeleteItem(ctx, created.ID), domainerrors.ErrItemNotFound)
	})
}
