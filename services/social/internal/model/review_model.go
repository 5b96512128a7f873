package model

import "time"

type ReviewModel struct {
	ID         uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID   uint              `gorm:"not null;index" json:"author_id"`
	Author     UserModel         `gorm:"foreignKey:AuthorID" json:"author"`
	Title      string            `gorm:"type:varchar(255);not null" json:"title"`
	Body       string            `gorm:"type:text;not null" json:"body"`
	AlbumID    string            `gorm:"type:varchar(100);not null;index" json:"album_id"`
	StarRating int               `gorm:"not null;default:0" json:"star_rating"`
	CreatedAt  time.Time         `json:"created_at"`
	Comments   []CommentModel    `gorm:"foreignKey:ReviewID" json:"comments,omitempty"`
	Likes      []ReviewLikeModel `gorm:"foreignKey:ReviewID" json:"likes,omitempty"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

type ReviewLikeModel struct {
	ReviewID  uint      `gorm:"primaryKey;autoIncrement:false" json:"review_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ReviewLikeModel) TableName() string {
	return "review_likes"
}
