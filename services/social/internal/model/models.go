package model

// All lists every table of the social service in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&FollowModel{},
		&ReviewModel{},
		&ReviewLikeModel{},
		&CommentModel{},
		&ListModel{},
		&ListAlbumModel{},
		&ListLikeModel{},
	}
}
