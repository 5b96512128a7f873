package model

import "time"

type ListModel struct {
	ID          uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID    uint             `gorm:"not null;index" json:"author_id"`
	Author      UserModel        `gorm:"foreignKey:AuthorID" json:"author"`
	Title       string           `gorm:"type:varchar(255);not null" json:"title"`
	Description string           `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
	Albums      []ListAlbumModel `gorm:"foreignKey:ListID" json:"albums,omitempty"`
	Likes       []ListLikeModel  `gorm:"foreignKey:ListID" json:"likes,omitempty"`
}

func (ListModel) TableName() string {
	return "lists"
}

// ListAlbumModel keeps the album order of a list through Position.
type ListAlbumModel struct {
	ListID   uint   `gorm:"primaryKey;autoIncrement:false" json:"list_id"`
	Position int    `gorm:"primaryKey;autoIncrement:false" json:"position"`
	AlbumID  string `gorm:"type:varchar(100);not null" json:"album_id"`
}

func (ListAlbumModel) TableName() string {
	return "list_albums"
}

type ListLikeModel struct {
	ListID    uint      `gorm:"primaryKey;autoIncrement:false" json:"list_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ListLikeModel) TableName() string {
	return "list_likes"
}
