package model

import "time"

type CommentModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID  uint      `gorm:"not null;index" json:"review_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    UserModel `gorm:"foreignKey:AuthorID" json:"author"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}
