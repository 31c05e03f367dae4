package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sharemypics/internal/model"
)

// AlbumRepository defines album persistence operations, including contributor
// membership. Write paths that must re-check preconditions run inside
// WithTransaction so check and write see the same state.
type AlbumRepository interface {
	Create(ctx context.Context, album *model.Album, creatorID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Album, error)
	List(ctx context.Context) ([]model.Album, error)
	Update(ctx context.Context, album *model.Album) error
	AddContributor(ctx context.Context, albumID, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo AlbumRepository) error) error
}

type albumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository creates a new album repository.
func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepository{db: db}
}

// Create inserts the album and its creator's membership atomically, so the
// contributor set is never empty.
func (r *albumRepository) Create(ctx context.Context, album *model.Album, creatorID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(album).Error; err != nil {
			return err
		}
		membership := model.AlbumContributor{AlbumID: album.ID, UserID: creatorID}
		if err := tx.Create(&membership).Error; err != nil {
			return err
		}
		album.Contributors = []uuid.UUID{creatorID}
		return nil
	})
}

func (r *albumRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Album, error) {
	var album model.Album
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&album).Error; err != nil {
		return nil, err
	}
	if err := r.loadContributors(ctx, []*model.Album{&album}); err != nil {
		return nil, err
	}
	return &album, nil
}

// List returns all albums sorted by title, with contributor sets attached.
func (r *albumRepository) List(ctx context.Context) ([]model.Album, error) {
	albums := make([]model.Album, 0)
	if err := r.db.WithContext(ctx).Order("title").Find(&albums).Error; err != nil {
		return nil, err
	}
	refs := make([]*model.Album, len(albums))
	for i := range albums {
		refs[i] = &albums[i]
	}
	if err := r.loadContributors(ctx, refs); err != nil {
		return nil, err
	}
	return albums, nil
}

// Update overwrites the mutable columns; CreatedAt is immutable and the
// contributor set only changes through AddContributor. RowsAffected is
// checked so an album deleted since load is reported, not recreated.
func (r *albumRepository) Update(ctx context.Context, album *model.Album) error {
	res := r.db.WithContext(ctx).Model(&model.Album{}).
		Where("id = ?", album.ID).
		Select("title", "location", "cover_pic").
		Updates(album)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddContributor inserts a membership row. Adding an existing contributor is
// a no-op.
func (r *albumRepository) AddContributor(ctx context.Context, albumID, userID uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.AlbumContributor{}).
		Where("album_id = ? AND user_id = ?", albumID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	membership := model.AlbumContributor{AlbumID: albumID, UserID: userID}
	return r.db.WithContext(ctx).Create(&membership).Error
}

// Delete removes the album, its memberships and its pictures. Pictures are
// exclusively owned by their album, so they go with it.
func (r *albumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("in_album = ?", id).Delete(&model.Picture{}).Error; err != nil {
			return err
		}
		if err := tx.Where("album_id = ?", id).Delete(&model.AlbumContributor{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Album{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// WithTransaction executes fn against a transaction-scoped repository.
func (r *albumRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo AlbumRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &albumRepository{db: tx})
	})
}

func (r *albumRepository) loadContributors(ctx context.Context, albums []*model.Album) error {
	if len(albums) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(albums))
	for i, a := range albums {
		ids[i] = a.ID
	}
	var rows []model.AlbumContributor
	if err := r.db.WithContext(ctx).Where("album_id IN ?", ids).Find(&rows).Error; err != nil {
		return err
	}
	byAlbum := make(map[uuid.UUID][]uuid.UUID, len(albums))
	for _, row := range rows {
		byAlbum[row.AlbumID] = append(byAlbum[row.AlbumID], row.UserID)
	}
	for _, a := range albums {
		a.Contributors = byAlbum[a.ID]
	}
	return nil
}
