// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
)

type testEntity struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

func TestNatsBaseRepositoryIsReady(t *testing.T) {
	tests := []struct {
		name     string
		kvStore  INatsKeyValue
		expected bool
	}{
		{
			name:     "ready with store",
			kvStore:  newMockNatsKeyValue(),
			expected: true,
		},
		{
			name:     "not ready without store",
			kvStore:  nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewNatsBaseRepository[testEntity](tt.kvStore, "test entity")
			assert.Equal(t, tt.expected, repo.IsReady())
		})
	}
}

func TestNatsBaseRepositoryGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored entity", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")

		require.NoError(t, repo.Create(ctx, "entity-1", &testEntity{UID: "entity-1", Name: "first"}))

		entity, err := repo.Get(ctx, "entity-1")
		require.NoError(t, err)
		assert.Equal(t, "entity-1", entity.UID)
		assert.Equal(t, "first", entity.Name)
	})

	t.Run("returns not found for missing key", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")

		entity, err := repo.Get(ctx, "missing")
		assert.Nil(t, entity)
		require.Error(t, err)
		assert.Equal(t, errs.ErrorTypeNotFound, errs.GetErrorType(err))
	})

	t.Run("returns internal error on store failure", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		mockKV.getError = errors.New("connection lost")
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")

		entity, err := repo.Get(ctx, "entity-1")
		assert.Nil(t, entity)
		require.Error(t, err)
		assert.Equal(t, errs.ErrorTypeInternal, errs.GetErrorType(err))
	})

	t.Run("returns unavailable when store missing", func(t *testing.T) {
		repo := NewNatsBaseRepository[testEntity](nil, "test entity")

		entity, err := repo.Get(ctx, "entity-1")
		assert.Nil(t, entity)
		require.Error(t, err)
		assert.Equal(t, errs.ErrorTypeUnavailable, errs.GetErrorType(err))
	})
}

func TestNatsBaseRepositoryGetWithRevision(t *testing.T) {
	ctx := context.Background()

	mockKV := newMockNatsKeyValue()
	repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")

	require.NoError(t, repo.Create(ctx, "entity-1", &testEntity{UID: "entity-1", Name: "first"}))

	entity, revision, err := repo.GetWithRevision(ctx, "entity-1")
	require.NoError(t, err)
	assert.Equal(t, "entity-1", entity.UID)
	assert.Equal(t, uint64(1), revision)
}

func TestNatsBaseRepositoryExists(t *testing.T) {
	ctx := context.Background()

	t.Run("true for stored entity", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")
		require.NoError(t, repo.Create(ctx, "entity-1", &testEntity{UID: "entity-1"}))

		exists, err := repo.Exists(ctx, "entity-1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("false for missing entity", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")

		exists, err := repo.Exists(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		mockKV.getError = errors.New("connection lost")
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")

		exists, err := repo.Exists(ctx, "entity-1")
		require.Error(t, err)
		assert.False(t, exists)
	})
}

func TestNatsBaseRepositoryUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("updates with matching revision", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")
		require.NoError(t, repo.Create(ctx, "entity-1", &testEntity{UID: "entity-1", Name: "first"}))

		err := repo.Update(ctx, "entity-1", &testEntity{UID: "entity-1", Name: "second"}, 1)
		require.NoError(t, err)

		entity, revision, err := repo.GetWithRevision(ctx, "entity-1")
		require.NoError(t, err)
		assert.Equal(t, "second", entity.Name)
		assert.Equal(t, uint64(2), revision)
	})

	t.Run("returns conflict on stale revision", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")
		require.NoError(t, repo.Create(ctx, "entity-1", &testEntity{UID: "entity-1", Name: "first"}))
		require.NoError(t, repo.Update(ctx, "entity-1", &testEntity{UID: "entity-1", Name: "second"}, 1))

		err := repo.Update(ctx, "entity-1", &testEntity{UID: "entity-1", Name: "third"}, 1)
		require.Error(t, err)
		assert.Equal(t, errs.ErrorTypeConflict, errs.GetErrorType(err))
	})

	t.Run("returns not found for missing key", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")

		err := repo.Update(ctx, "missing", &testEntity{UID: "missing"}, 1)
		require.Error(t, err)
		assert.Equal(t, errs.ErrorTypeNotFound, errs.GetErrorType(err))
	})
}

func TestNatsBaseRepositoryDeleteWithoutRevision(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes stored entity", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")
		require.NoError(t, repo.Create(ctx, "entity-1", &testEntity{UID: "entity-1"}))

		err := repo.DeleteWithoutRevision(ctx, "entity-1")
		require.NoError(t, err)

		exists, err := repo.Exists(ctx, "entity-1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("returns not found for missing key", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[testEntity](mockKV, "test entity")

		err := repo.DeleteWithoutRevision(ctx, "missing")
		require.Error(t, err)
		assert.Equal(t, errs.ErrorTypeNotFound, errs.GetErrorType(err))
	})
}

func TestBucketName(t *testing.T) {
	assert.Equal(t, "production-jobs", BucketName("production", KVStoreNameJobs))
	assert.Equal(t, "qa-contacts", BucketName("qa", KVStoreNameContacts))
}
