package persistent

import (
	"context"

	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListRepository interface {
	FindByID(ctx context.Context, id uint) (entity.List, error)
	FindAll(ctx context.Context) ([]entity.List, error)
	FindByAuthorID(ctx context.Context, authorID uint) ([]entity.List, error)
	Create(ctx context.Context, list entity.List) (entity.List, error)
	Update(ctx context.Context, list entity.List) (entity.List, error)
	Delete(ctx context.Context, id uint) error
	ConnectLike(ctx context.Context, listID, userID uint) error
	DisconnectLike(ctx context.Context, listID, userID uint) error
}

type listRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) preloaded(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).
		Preload("Author").
		Preload("Albums", func(db *gorm.DB) *gorm.DB {
			return db.Order("list_albums.position ASC")
		}).
		Preload("Likes")
}

func (r *listRepository) FindByID(ctx context.Context, id uint) (entity.List, error) {
	var listModel model.ListModel
	if err := r.preloaded(ctx).Where("id = ?", id).First(&listModel).Error; err != nil {
		return entity.List{}, notFoundOr("find list", "list", id, err)
	}
	return ToListEntity(&listModel), nil
}

func (r *listRepository) FindAll(ctx context.Context) ([]entity.List, error) {
	return r.find(r.preloaded(ctx))
}

func (r *listRepository) FindByAuthorID(ctx context.Context, authorID uint) ([]entity.List, error) {
	return r.find(r.preloaded(ctx).Where("author_id = ?", authorID))
}

func (r *listRepository) find(query *gorm.DB) ([]entity.List, error) {
	var listModels []model.ListModel
	if err := query.Order("id ASC").Find(&listModels).Error; err != nil {
		return nil, wrap("find lists", err)
	}

	lists := make([]entity.List, len(listModels))
	for i := range listModels {
		lists[i] = ToListEntity(&listModels[i])
	}
	return lists, nil
}

func (r *listRepository) Create(ctx context.Context, list entity.List) (entity.List, error) {
	listModel := ToListModel(list)
	listModel.ID = 0
	albums := listModel.Albums
	listModel.Albums = nil

	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(listModel).Error; err != nil {
			return err
		}
		return insertAlbums(tx, listModel.ID, albums)
	})
	if err != nil {
		return entity.List{}, wrap("create list", err)
	}
	return r.FindByID(ctx, listModel.ID)
}

// Update replaces the editable columns and the whole album sequence.
func (r *listRepository) Update(ctx context.Context, list entity.List) (entity.List, error) {
	listModel := ToListModel(list)

	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ListModel{}).Where("id = ?", listModel.ID).Updates(map[string]interface{}{
			"title":       listModel.Title,
			"description": listModel.Description,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &entity.NotFoundError{Resource: "list", ID: listModel.ID}
		}
		if err := tx.Where("list_id = ?", listModel.ID).Delete(&model.ListAlbumModel{}).Error; err != nil {
			return err
		}
		return insertAlbums(tx, listModel.ID, listModel.Albums)
	})
	if err != nil {
		return entity.List{}, wrap("update list", err)
	}
	return r.FindByID(ctx, listModel.ID)
}

func (r *listRepository) Delete(ctx context.Context, id uint) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&model.ListLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", id).Delete(&model.ListAlbumModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.ListModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &entity.NotFoundError{Resource: "list", ID: id}
		}
		return nil
	})
	return wrap("delete list", err)
}

func (r *listRepository) ConnectLike(ctx context.Context, listID, userID uint) error {
	like := &model.ListLikeModel{ListID: listID, UserID: userID}
	err := conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
	return wrap("connect list like", err)
}

func (r *listRepository) DisconnectLike(ctx context.Context, listID, userID uint) error {
	err := conn(ctx, r.db).
		Where("list_id = ? AND user_id = ?", listID, userID).
		Delete(&model.ListLikeModel{}).Error
	return wrap("disconnect list like", err)
}

func insertAlbums(tx *gorm.DB, listID uint, albums []model.ListAlbumModel) error {
	if len(albums) == 0 {
		return nil
	}
	for i := range albums {
		albums[i].ListID = listID
	}
	return tx.Create(&albums).Error
}
