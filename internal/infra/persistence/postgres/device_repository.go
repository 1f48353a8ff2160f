package postgres

import (
	"context"
	"time"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device for a user.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its primary key.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by id")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser retrieves all devices for a specific user.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// FindActiveDevicesByUsers retrieves all active devices for a set of users.
// Used by the notification fan-out to collect push tokens in one query.
func (repo *deviceRepository) FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by users")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdatePushToken updates the push token for a specific device.
func (repo *deviceRepository) UpdatePushToken(ctx context.Context, deviceID uuid.UUID, pushToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", deviceID).
		Update("push_token", pushToken)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update push token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// deviceStatusRepository implements the repository.DeviceStatusRepository interface.
type deviceStatusRepository struct {
	db *gorm.DB
}

// NewDeviceStatusRepository is the constructor for deviceStatusRepository.
func NewDeviceStatusRepository(db *gorm.DB) repository.DeviceStatusRepository {
	return &deviceStatusRepository{
		db: db,
	}
}

// UpsertStatus inserts or refreshes the (user, app_type) liveness row. The
// unique index on the pair guarantees at most one row survives concurrent
// heartbeats.
func (repo *deviceStatusRepository) UpsertStatus(ctx context.Context, status *entity.DeviceStatus) error {
	statusM := fromDeviceStatusDomain(status)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "app_type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"app_version", "last_seen_at", "updated_at",
			}),
		}).
		Create(statusM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert device status")
	}

	return nil
}

// FindStatus retrieves the liveness row for a (user, app_type) pair.
func (repo *deviceStatusRepository) FindStatus(ctx context.Context, userID uuid.UUID, appType entity.AppType) (*entity.DeviceStatus, error) {
	var statusM model.DeviceStatusModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND app_type = ?", userID, string(appType)).
		First(&statusM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find device status")
	}

	return toDeviceStatusDomain(&statusM), nil
}

// CountSeenSince returns the number of rows with last_seen_at after the cutoff.
func (repo *deviceStatusRepository) CountSeenSince(ctx context.Context, appType entity.AppType, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceStatusModel{}).
		Where("app_type = ? AND last_seen_at > ?", string(appType), since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count device status rows")
	}

	return count, nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		PushToken: data.PushToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PushToken: data.PushToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toDeviceStatusDomain(data *model.DeviceStatusModel) *entity.DeviceStatus {
	if data == nil {
		return nil
	}

	return &entity.DeviceStatus{
		ID:         data.ID,
		UserID:     data.UserID,
		AppType:    entity.AppType(data.AppType),
		AppVersion: data.AppVersion,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDeviceStatusDomain(data *entity.DeviceStatus) *model.DeviceStatusModel {
	if data == nil {
		return nil
	}

	return &model.DeviceStatusModel{
		ID:         data.ID,
		UserID:     data.UserID,
		AppType:    string(data.AppType),
		AppVersion: data.AppVersion,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
