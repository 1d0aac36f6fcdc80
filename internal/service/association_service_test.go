package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/repository"
)

func TestAssociateCreatesDossierForNewEmployee(t *testing.T) {
	svc := NewAssociationService(repository.NewMemoryDossierRepository(), zap.NewNop())

	dossier, created, err := svc.Associate(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(42), dossier.EmployeeID)
	assert.Equal(t, int64(7), dossier.BeneficiaryID)
	assert.NotZero(t, dossier.ID)
}

func TestAssociateIsIdempotentForSamePair(t *testing.T) {
	svc := NewAssociationService(repository.NewMemoryDossierRepository(), zap.NewNop())
	ctx := context.Background()

	first, created, err := svc.Associate(ctx, 42, 7)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Associate(ctx, 42, 7)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestAssociateUpdatesExistingDossier(t *testing.T) {
	svc := NewAssociationService(repository.NewMemoryDossierRepository(), zap.NewNop())
	ctx := context.Background()

	first, _, err := svc.Associate(ctx, 42, 7)
	require.NoError(t, err)

	updated, created, err := svc.Associate(ctx, 42, 9)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, int64(9), updated.BeneficiaryID)
}

func TestAssociateKeepsEmployeesSeparate(t *testing.T) {
	svc := NewAssociationService(repository.NewMemoryDossierRepository(), zap.NewNop())
	ctx := context.Background()

	first, _, err := svc.Associate(ctx, 42, 7)
	require.NoError(t, err)
	second, created, err := svc.Associate(ctx, 43, 7)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetDossier(t *testing.T) {
	svc := NewAssociationService(repository.NewMemoryDossierRepository(), zap.NewNop())
	ctx := context.Background()

	created, _, err := svc.Associate(ctx, 42, 7)
	require.NoError(t, err)

	fetched, err := svc.GetDossier(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	_, err = svc.GetDossier(ctx, 9999)
	assert.Error(t, err)
}
