package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/domain/valueobjects"
)

func newServiceRequest(t *testing.T, name, email string) *entities.ServiceRequest {
	t.Helper()

	addr, err := valueobjects.NewEmail(email)
	require.NoError(t, err)

	return &entities.ServiceRequest{
		Name:    name,
		Email:   addr,
		Phone:   "+966500000000",
		Service: "models",
		Message: "أرغب في حجز موديل لإعلان تجاري",
		Status:  entities.RequestStatusPending,
	}
}

func TestServiceRequestRepositoryCreateAndGetAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRequestRepository(db)
	ctx := context.Background()

	first := newServiceRequest(t, "عميل أول", "first@example.com")
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)

	time.Sleep(2 * time.Millisecond)

	second := newServiceRequest(t, "عميل ثاني", "second@example.com")
	require.NoError(t, repo.Create(ctx, second))

	requests, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	// oldest first
	assert.Equal(t, "عميل أول", requests[0].Name)
	assert.Equal(t, "first@example.com", requests[0].Email.String())
	assert.Equal(t, entities.RequestStatusPending, requests[0].Status)
}

func TestServiceRequestRepositoryGetAllKeepsLegacyEmails(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRequestRepository(db)
	ctx := context.Background()

	// row written before address validation existed
	require.NoError(t, db.Create(&ServiceRequestRow{
		Name:    "عميل قديم",
		Email:   "Not An Address",
		Phone:   "0500000000",
		Service: "models",
		Message: "طلب قديم",
		Status:  string(entities.RequestStatusPending),
	}).Error)

	requests, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "not an address", requests[0].Email.String())
}

func TestServiceRequestRepositoryUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRequestRepository(db)
	ctx := context.Background()

	request := newServiceRequest(t, "عميل", "client@example.com")
	require.NoError(t, repo.Create(ctx, request))

	require.NoError(t, repo.UpdateStatus(ctx, request.ID, entities.RequestStatusInProgress))

	requests, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, entities.RequestStatusInProgress, requests[0].Status)

	err = repo.UpdateStatus(ctx, 9999, entities.RequestStatusCompleted)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
