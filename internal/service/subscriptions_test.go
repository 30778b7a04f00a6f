package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heavyrent-backend/internal/model"
)

func TestSubscriptionsUpsert(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubscriptions(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Juan", "juan@example.com")

	sub := model.PushSubscription{
		Endpoint: "https://example.com/push/1",
		P256DH:   "key-1",
		Auth:     "auth-1",
		UserID:   owner.ID,
	}
	require.NoError(t, subs.Upsert(ctx, &sub))

	t.Run("re-registering the same endpoint replaces the keys", func(t *testing.T) {
		replaced := model.PushSubscription{
			Endpoint: "https://example.com/push/1",
			P256DH:   "key-2",
			Auth:     "auth-2",
			UserID:   owner.ID,
		}
		require.NoError(t, subs.Upsert(ctx, &replaced))

		stored, err := subs.FindByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "key-2", stored[0].P256DH)
	})

	t.Run("delete removes the caller's subscription only", func(t *testing.T) {
		other := seedUser(t, db, "Ana", "ana@example.com")
		require.NoError(t, subs.Delete(ctx, other.ID, "https://example.com/push/1"))

		stored, err := subs.FindByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, stored, 1, "another user's delete is a no-op")

		require.NoError(t, subs.Delete(ctx, owner.ID, "https://example.com/push/1"))
		stored, err = subs.FindByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}
