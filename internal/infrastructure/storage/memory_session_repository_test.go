package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository_RecordAndRead(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	defer repo.Close()
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, 1, []string{"Glioma Tumor", "Pituitary Tumor"}))

	labels, err := repo.Read(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Glioma Tumor", "Pituitary Tumor"}, labels)
}

func TestMemorySessionRepository_EmptyRecordClears(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	defer repo.Close()
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, 1, []string{"Glioma Tumor"}))
	require.NoError(t, repo.Record(ctx, 1, nil))

	labels, err := repo.Read(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, labels)
}

func TestMemorySessionRepository_UnknownChat(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	defer repo.Close()

	labels, err := repo.Read(context.Background(), 404)
	require.NoError(t, err)
	require.Empty(t, labels)
}

func TestMemorySessionRepository_OverwritesPreviousFindings(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	defer repo.Close()
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, 1, []string{"Glioma Tumor"}))
	require.NoError(t, repo.Record(ctx, 1, []string{"Meningioma Tumor"}))

	labels, err := repo.Read(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Meningioma Tumor"}, labels)
}

func TestMemorySessionRepository_ChatsAreIndependent(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	defer repo.Close()
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, 1, []string{"Glioma Tumor"}))
	require.NoError(t, repo.Record(ctx, 2, []string{"Pituitary Tumor"}))

	labels, err := repo.Read(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Glioma Tumor"}, labels)

	labels, err = repo.Read(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"Pituitary Tumor"}, labels)
}

func TestMemorySessionRepository_ExpiresStaleSessions(t *testing.T) {
	repo := NewMemorySessionRepository(20 * time.Millisecond)
	defer repo.Close()
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, 1, []string{"Glioma Tumor"}))

	time.Sleep(40 * time.Millisecond)

	labels, err := repo.Read(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, labels)
}
