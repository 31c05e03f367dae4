package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sharemypics/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	// Username uniqueness is enforced by the unique index; a losing
	// concurrent insert comes back as gorm.ErrDuplicatedKey.
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users sorted by username.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update overwrites the mutable columns. The row is matched at write time so
// a user deleted since load yields ErrRecordNotFound instead of resurrecting.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Select("username", "password_hash", "name", "surname", "profile_picture").
		Updates(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the user, their memberships, and any album where they were
// the sole contributor (with its pictures), so contributor sets stay
// non-empty. Shared albums and already-uploaded pictures are left in place.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		others := tx.Model(&model.AlbumContributor{}).
			Select("album_id").Where("user_id <> ?", id)

		var soleAlbumIDs []uuid.UUID
		if err := tx.Model(&model.AlbumContributor{}).
			Where("user_id = ?", id).
			Where("album_id NOT IN (?)", others).
			Pluck("album_id", &soleAlbumIDs).Error; err != nil {
			return err
		}

		if len(soleAlbumIDs) > 0 {
			if err := tx.Where("in_album IN ?", soleAlbumIDs).Delete(&model.Picture{}).Error; err != nil {
				return err
			}
			if err := tx.Where("album_id IN ?", soleAlbumIDs).Delete(&model.AlbumContributor{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", soleAlbumIDs).Delete(&model.Album{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.AlbumContributor{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&model.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
