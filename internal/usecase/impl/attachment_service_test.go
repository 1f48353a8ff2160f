package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	mockRepo "fleet/internal/mocks/repository"
	mockSvc "fleet/internal/mocks/service"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// attachmentServiceFixtures holds all test dependencies for attachment service tests.
type attachmentServiceFixtures struct {
	service        usecase.AttachmentUsecase
	attachmentRepo *mockRepo.MockAttachmentRepository
	jobRepo        *mockRepo.MockJobRepository
	blobStorage    *mockSvc.MockBlobStorage
}

func createTestAttachmentService(t *testing.T) attachmentServiceFixtures {
	attachmentRepo := mockRepo.NewMockAttachmentRepository(t)
	jobRepo := mockRepo.NewMockJobRepository(t)
	blobStorage := mockSvc.NewMockBlobStorage(t)

	service := NewAttachmentService(AttachmentServiceParams{
		AttachmentRepo: attachmentRepo,
		JobRepo:        jobRepo,
		BlobStorage:    blobStorage,
		Logger:         newDiscardLogger(),
	})

	return attachmentServiceFixtures{
		service:        service,
		attachmentRepo: attachmentRepo,
		jobRepo:        jobRepo,
		blobStorage:    blobStorage,
	}
}

func TestAttachmentService_UploadAttachment_Success(t *testing.T) {
	fx := createTestAttachmentService(t)

	ctx := context.Background()
	jobID := uuid.New()
	uploaderID := uuid.New()

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusInProgress}, nil)

	fx.blobStorage.EXPECT().
		Write(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return(nil)

	fx.attachmentRepo.EXPECT().
		CreateAttachment(ctx, mock.AnythingOfType("*entity.JobAttachment")).
		Return(nil)

	attachment, err := fx.service.UploadAttachment(ctx, usecase.UploadAttachmentInput{
		JobID:       jobID,
		Actor:       usecase.Actor{ID: uploaderID, Role: entity.RoleAdmin},
		FileName:    "pod.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   1024,
		Content:     strings.NewReader("jpeg bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, jobID, attachment.JobID)
	assert.Equal(t, uploaderID, attachment.UploadedBy)
	assert.Contains(t, attachment.StorageKey, "jobs/"+jobID.String()+"/")
	assert.Contains(t, attachment.StorageKey, "pod.jpg")
}

func TestAttachmentService_UploadAttachment_DriverNotOwner(t *testing.T) {
	fx := createTestAttachmentService(t)

	ctx := context.Background()
	jobID := uuid.New()
	ownerID := uuid.New()

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusInProgress, DriverID: &ownerID}, nil)

	attachment, err := fx.service.UploadAttachment(ctx, usecase.UploadAttachmentInput{
		JobID:       jobID,
		Actor:       usecase.Actor{ID: uuid.New(), Role: entity.RoleDriver},
		FileName:    "pod.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg bytes"),
	})
	assert.Error(t, err)
	assert.Nil(t, attachment)
	assert.ErrorIs(t, err, domainerrors.ErrJobNotOwned)
	fx.blobStorage.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachmentService_UploadAttachment_JobNotFound(t *testing.T) {
	fx := createTestAttachmentService(t)

	ctx := context.Background()
	jobID := uuid.New()

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(nil, repository.ErrJobNotFound)

	attachment, err := fx.service.UploadAttachment(ctx, usecase.UploadAttachmentInput{
		JobID: jobID,
		Actor: usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin},
	})
	assert.Error(t, err)
	assert.Nil(t, attachment)
	assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)
}

func TestAttachmentService_ListJobAttachments_DriverNotOwner(t *testing.T) {
	fx := createTestAttachmentService(t)

	ctx := context.Background()
	jobID := uuid.New()
	ownerID := uuid.New()

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusAssigned, DriverID: &ownerID}, nil)

	attachments, err := fx.service.ListJobAttachments(ctx, jobID, usecase.Actor{ID: uuid.New(), Role: entity.RoleDriver})
	assert.Error(t, err)
	assert.Nil(t, attachments)
	assert.ErrorIs(t, err, domainerrors.ErrJobNotOwned)
	fx.attachmentRepo.AssertNotCalled(t, "FindAttachmentsByJob", mock.Anything, mock.Anything)
}

func TestAttachmentService_ListJobAttachments_OwnerSeesRows(t *testing.T) {
	fx := createTestAttachmentService(t)

	ctx := context.Background()
	jobID := uuid.New()
	driverID := uuid.New()

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusAssigned, DriverID: &driverID}, nil)

	fx.attachmentRepo.EXPECT().
		FindAttachmentsByJob(ctx, jobID).
		Return([]*entity.JobAttachment{{ID: uuid.New(), JobID: jobID}}, nil)

	attachments, err := fx.service.ListJobAttachments(ctx, jobID, usecase.Actor{ID: driverID, Role: entity.RoleDriver})
	require.NoError(t, err)
	assert.Len(t, attachments, 1)
}

func TestAttachmentService_UploadAttachment_MetadataFailureCleansBlob(t *testing.T) {
	fx := createTestAttachmentService(t)

	ctx := context.Background()
	jobID := uuid.New()

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID}, nil)

	var storageKey string
	fx.blobStorage.EXPECT().
		Write(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Run(func(_ context.Context, key string, _ string, _ io.Reader) {
			storageKey = key
		}).
		Return(nil)

	fx.attachmentRepo.EXPECT().
		CreateAttachment(ctx, mock.AnythingOfType("*entity.JobAttachment")).
		Return(errors.New("insert failed"))

	fx.blobStorage.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, storageKey, key)

			return nil
		})

	attachment, err := fx.service.UploadAttachment(ctx, usecase.UploadAttachmentInput{
		JobID:       jobID,
		Actor:       usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin},
		FileName:    "bol.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("pdf bytes"),
	})
	assert.Error(t, err)
	assert.Nil(t, attachment)
}

func TestAttachmentService_GetAttachment_NotFound(t *testing.T) {
	fx := createTestAttachmentService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.attachmentRepo.EXPECT().
		FindAttachmentByID(ctx, id).
		Return(nil, repository.ErrAttachmentNotFound)

	attachment, reader, err := fx.service.GetAttachment(ctx, id)
	assert.Error(t, err)
	assert.Nil(t, attachment)
	assert.Nil(t, reader)
	assert.ErrorIs(t, err, domainerrors.ErrAttachmentNotFound)
}

func TestAttachmentService_GetAttachment_Success(t *testing.T) {
	fx := createTestAttachmentService(t)

	ctx := context.Background()
	id := uuid.New()
	row := &entity.JobAttachment{
		ID:         id,
		StorageKey: "jobs/x/y-pod.jpg",
		FileName:   "pod.jpg",
	}

	fx.attachmentRepo.EXPECT().
		FindAttachmentByID(ctx, id).
		Return(row, nil)

	fx.blobStorage.EXPECT().
		Read(ctx, row.StorageKey).
		Return(io.NopCloser(strings.NewReader("jpeg bytes")), nil)

	attachment, reader, err := fx.service.GetAttachment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, row, attachment)
	require.NotNil(t, reader)
	reader.Close()
}

func TestAttachmentService_DeleteAttachment_BlobFailureStillDeletesMetadata(t *testing.T) {
	fx := createTestAttachmentService(t)

	ctx := context.Background()
	id := uuid.New()
	row := &entity.JobAttachment{ID: id, StorageKey: "jobs/x/y-pod.jpg"}

	fx.attachmentRepo.EXPECT().
		FindAttachmentByID(ctx, id).
		Return(row, nil)

	fx.blobStorage.EXPECT().
		Delete(ctx, row.StorageKey).
		Return(errors.New("bucket unavailable"))

	fx.attachmentRepo.EXPECT().
		DeleteAttachment(ctx, id).
		Return(nil)

	err := fx.service.DeleteAttachment(ctx, id)
	assert.NoError(t, err)
}
