package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heavyrent-backend/internal/model"
)

func TestCreateMachine(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "Juan", "juan@example.com")

	body := map[string]string{
		"name":        "Excavator",
		"description": "Caterpillar heavy equipment",
	}

	t.Run("requires a bearer token", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/machines", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/machines", body, "bogus")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("creates a machine for the caller", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/machines", body, env.bearer(t, owner))
		require.Equal(t, http.StatusCreated, w.Code)

		var machine model.Machine
		decode(t, w, &machine)
		assert.NotZero(t, machine.ID)
		assert.True(t, machine.Available)
		assert.Equal(t, owner.ID, machine.CreatedBy.ID)
	})

	t.Run("rejects a short description at the boundary", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/machines", map[string]string{
			"name":        "Crane",
			"description": "short",
		}, env.bearer(t, owner))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("fails when the token's user no longer exists", func(t *testing.T) {
		ghost := model.User{ID: 424242, Name: "Ghost", Email: "ghost@example.com"}
		token, err := env.tokens.Generate(ghost.ID, ghost.Email)
		require.NoError(t, err)

		w := env.do(t, http.MethodPost, "/api/machines", body, token)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var count int64
		require.NoError(t, env.db.Model(&model.Machine{}).Where("created_by_id = ?", ghost.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestListMachines(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/machines", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var empty []model.Machine
	decode(t, w, &empty)
	assert.Empty(t, empty)

	owner := env.seedUser(t, "Juan", "juan@example.com")
	w = env.do(t, http.MethodPost, "/api/machines", map[string]string{
		"name":        "Excavator",
		"description": "Caterpillar heavy equipment",
	}, env.bearer(t, owner))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/machines", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var all []model.Machine
	decode(t, w, &all)
	require.Len(t, all, 1)
	assert.Equal(t, "Excavator", all[0].Name)
	assert.Equal(t, owner.ID, all[0].CreatedBy.ID, "owner is eager-loaded")
}
