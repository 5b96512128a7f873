package persistent

import (
	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/model"
)

func ToUserEntity(m *model.UserModel, followedBy, following []uint) entity.User {
	return entity.RestoreUser(entity.UserState{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.Password,
		Role:         entity.Role(m.Role),
		Blocked:      m.IsBlocked,
		CreatedAt:    m.CreatedAt,
		FollowedBy:   followedBy,
		Following:    following,
	})
}

func ToUserModel(e entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        e.ID(),
		Email:     e.Email(),
		Username:  e.Username(),
		Password:  e.PasswordHash(),
		Role:      string(e.Role()),
		IsBlocked: e.IsBlocked(),
		CreatedAt: e.CreatedAt(),
	}
}

func toUserRef(m *model.UserModel, id uint) entity.UserRef {
	return entity.UserRef{ID: id, Username: m.Username}
}

func ToReviewEntity(m *model.ReviewModel) entity.Review {
	comments := make([]entity.Comment, len(m.Comments))
	for i := range m.Comments {
		comments[i] = ToCommentEntity(&m.Comments[i])
	}
	likes := make([]uint, len(m.Likes))
	for i, l := range m.Likes {
		likes[i] = l.UserID
	}

	return entity.RestoreReview(entity.ReviewState{
		ID:         m.ID,
		Author:     toUserRef(&m.Author, m.AuthorID),
		Title:      m.Title,
		Body:       m.Body,
		AlbumID:    m.AlbumID,
		StarRating: m.StarRating,
		CreatedAt:  m.CreatedAt,
		Likes:      likes,
		Comments:   comments,
	})
}

// ToReviewModel maps only the review row; likes and comments have their own writes.
func ToReviewModel(e entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:         e.ID(),
		AuthorID:   e.Author().ID,
		Title:      e.Title(),
		Body:       e.Body(),
		AlbumID:    e.AlbumID(),
		StarRating: e.StarRating(),
		CreatedAt:  e.CreatedAt(),
	}
}

func ToCommentEntity(m *model.CommentModel) entity.Comment {
	return entity.RestoreComment(entity.CommentState{
		ID:        m.ID,
		Author:    toUserRef(&m.Author, m.AuthorID),
		Body:      m.Body,
		ReviewID:  m.ReviewID,
		CreatedAt: m.CreatedAt,
	})
}

func ToCommentModel(e entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        e.ID(),
		ReviewID:  e.ReviewID(),
		AuthorID:  e.Author().ID,
		Body:      e.Body(),
		CreatedAt: e.CreatedAt(),
	}
}

func ToListEntity(m *model.ListModel) entity.List {
	albums := make([]string, len(m.Albums))
	for i, a := range m.Albums {
		albums[i] = a.AlbumID
	}
	likes := make([]uint, len(m.Likes))
	for i, l := range m.Likes {
		likes[i] = l.UserID
	}

	return entity.RestoreList(entity.ListState{
		ID:          m.ID,
		Author:      toUserRef(&m.Author, m.AuthorID),
		Title:       m.Title,
		Description: m.Description,
		AlbumIDs:    albums,
		CreatedAt:   m.CreatedAt,
		Likes:       likes,
	})
}

// ToListModel maps the list row and its ordered album rows.
func ToListModel(e entity.List) *model.ListModel {
	m := &model.ListModel{
		ID:          e.ID(),
		AuthorID:    e.Author().ID,
		Title:       e.Title(),
		Description: e.Description(),
		CreatedAt:   e.CreatedAt(),
	}
	m.Albums = albumRows(e.ID(), e.AlbumIDs())
	return m
}

func albumRows(listID uint, albumIDs []string) []model.ListAlbumModel {
	rows := make([]model.ListAlbumModel, len(albumIDs))
	for i, id := range albumIDs {
		rows[i] = model.ListAlbumModel{ListID: listID, Position: i, AlbumID: id}
	}
	return rows
}
