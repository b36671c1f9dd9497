package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/cantina/backend/internal/domain/cashbox"
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/cantina/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDrawerRepository implements DrawerRepository using GORM
type GormDrawerRepository struct {
	db *gorm.DB
}

// NewGormDrawerRepository creates a new GormDrawerRepository
func NewGormDrawerRepository(db *gorm.DB) *GormDrawerRepository {
	return &GormDrawerRepository{db: db}
}

// FindByID loads a drawer together with all its movement entries
func (r *GormDrawerRepository) FindByID(ctx context.Context, id uuid.UUID) (*cashbox.Drawer, error) {
	var model models.DrawerModel
	if err := r.withMovements(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return model.ToDomain(), nil
}

// FindBySlot loads the drawer occupying the given (date, shift, level) slot
func (r *GormDrawerRepository) FindBySlot(ctx context.Context, date time.Time, shift cashbox.Shift, level cashbox.Level, isExtra bool) (*cashbox.Drawer, error) {
	var model models.DrawerModel
	if err := r.withMovements(ctx).
		Where("date = ? AND shift = ? AND level = ? AND is_extra = ?", dateOnly(date), shift.String(), level.String(), isExtra).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return model.ToDomain(), nil
}

// ExistsBySlot checks whether a drawer occupies the given slot
func (r *GormDrawerRepository) ExistsBySlot(ctx context.Context, date time.Time, shift cashbox.Shift, level cashbox.Level, isExtra bool) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DrawerModel{}).
		Where("date = ? AND shift = ? AND level = ? AND is_extra = ?", dateOnly(date), shift.String(), level.String(), isExtra).
		Count(&count).Error; err != nil {
		return false, storageErr(err)
	}
	return count > 0, nil
}

// FindOpen returns all drawers that have not been closed yet
func (r *GormDrawerRepository) FindOpen(ctx context.Context) ([]cashbox.Drawer, error) {
	var drawerModels []models.DrawerModel
	if err := r.withMovements(ctx).
		Where("closed = ?", false).
		Order("date DESC, shift ASC, level ASC, is_extra ASC").
		Find(&drawerModels).Error; err != nil {
		return nil, storageErr(err)
	}
	return toDrawers(drawerModels), nil
}

// HasOpen checks whether any drawer is currently open
func (r *GormDrawerRepository) HasOpen(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DrawerModel{}).
		Where("closed = ?", false).
		Count(&count).Error; err != nil {
		return false, storageErr(err)
	}
	return count > 0, nil
}

// FindClosedNormalByDate returns the closed non-extra drawers of one date
func (r *GormDrawerRepository) FindClosedNormalByDate(ctx context.Context, date time.Time) ([]cashbox.Drawer, error) {
	var drawerModels []models.DrawerModel
	if err := r.withMovements(ctx).
		Where("date = ? AND closed = ? AND is_extra = ?", dateOnly(date), true, false).
		Order("shift ASC, level ASC").
		Find(&drawerModels).Error; err != nil {
		return nil, storageErr(err)
	}
	return toDrawers(drawerModels), nil
}

// FindAll returns drawers ordered newest date first, stable within a date.
// The ordering is a contract: list consumers group consecutive rows by date.
func (r *GormDrawerRepository) FindAll(ctx context.Context, filter cashbox.DrawerFilter) ([]cashbox.Drawer, error) {
	query := r.withMovements(ctx)
	if filter.Date != nil {
		query = query.Where("date = ?", dateOnly(*filter.Date))
	}

	var drawerModels []models.DrawerModel
	if err := query.
		Order("date DESC, shift ASC, level ASC, is_extra ASC").
		Find(&drawerModels).Error; err != nil {
		return nil, storageErr(err)
	}
	return toDrawers(drawerModels), nil
}

// ListDates returns the distinct drawer dates, newest first
func (r *GormDrawerRepository) ListDates(ctx context.Context) ([]time.Time, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).Model(&models.DrawerModel{}).
		Distinct("date").
		Order("date DESC").
		Pluck("date", &dates).Error; err != nil {
		return nil, storageErr(err)
	}
	return dates, nil
}

// Save persists the drawer and fully replaces its movement entries so
// deletions made on the aggregate reach the database. Updates are
// version-checked: a write whose version predecessor is gone reports a
// drawer conflict instead of silently overwriting the concurrent one.
func (r *GormDrawerRepository) Save(ctx context.Context, drawer *cashbox.Drawer) error {
	model := &models.DrawerModel{}
	model.FromDomain(drawer)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.saveAggregate(tx, model); err != nil {
			return err
		}
		if err := tx.Where("drawer_id = ?", model.ID).Delete(&models.RecessModel{}).Error; err != nil {
			return storageErr(err)
		}
		if err := tx.Where("drawer_id = ?", model.ID).Delete(&models.SpecialEventModel{}).Error; err != nil {
			return storageErr(err)
		}
		if err := tx.Where("drawer_id = ?", model.ID).Delete(&models.SupplierPaymentModel{}).Error; err != nil {
			return storageErr(err)
		}
		if len(model.Recesses) > 0 {
			if err := tx.Create(&model.Recesses).Error; err != nil {
				return storageErr(err)
			}
		}
		if len(model.Events) > 0 {
			if err := tx.Create(&model.Events).Error; err != nil {
				return storageErr(err)
			}
		}
		if len(model.Payments) > 0 {
			if err := tx.Create(&model.Payments).Error; err != nil {
				return storageErr(err)
			}
		}
		return nil
	})
}

func (r *GormDrawerRepository) saveAggregate(tx *gorm.DB, model *models.DrawerModel) error {
	result := tx.Model(&models.DrawerModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"date":            model.Date,
			"shift":           model.Shift,
			"level":           model.Level,
			"is_extra":        model.IsExtra,
			"opening_balance": model.OpeningBalance,
			"partial_balance": model.PartialBalance,
			"closed":          model.Closed,
			"version":         model.Version,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// No row matched: either the drawer is new, or a concurrent write
	// already advanced the version.
	var count int64
	if err := tx.Model(&models.DrawerModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
		return storageErr(err)
	}
	if count > 0 {
		return errStaleDrawer
	}
	return storageErr(tx.Omit(clause.Associations).Create(model).Error)
}

// Delete removes a drawer; its movement entries go with it via the cascade
func (r *GormDrawerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DrawerModel{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll wipes every drawer and movement entry
func (r *GormDrawerRepository) DeleteAll(ctx context.Context) error {
	session := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Delete(&models.RecessModel{}).Error; err != nil {
		return storageErr(err)
	}
	if err := session.Delete(&models.SpecialEventModel{}).Error; err != nil {
		return storageErr(err)
	}
	if err := session.Delete(&models.SupplierPaymentModel{}).Error; err != nil {
		return storageErr(err)
	}
	return storageErr(session.Delete(&models.DrawerModel{}).Error)
}

func (r *GormDrawerRepository) withMovements(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Recesses", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") })
}

func toDrawers(drawerModels []models.DrawerModel) []cashbox.Drawer {
	drawers := make([]cashbox.Drawer, len(drawerModels))
	for i := range drawerModels {
		drawers[i] = *drawerModels[i].ToDomain()
	}
	return drawers
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Ensure GormDrawerRepository implements DrawerRepository
var _ cashbox.DrawerRepository = (*GormDrawerRepository)(nil)
