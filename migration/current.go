package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/jayvdb/lemmy/model"
)

// Migrations 全てのデータベースマイグレーション
//
// 新たなマイグレーションを行う場合は、この配列の末尾に必ず追加すること
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		v1(), // 通報テーブルへの複合インデックス追加
	}
}

// AllTables 最新のスキーマの全テーブルモデル
//
// 最新のスキーマの全テーブルのモデル構造体を記述すること
func AllTables() []interface{} {
	return []interface{}{
		&model.CommentReport{},
		&model.PostReport{},
		&model.CommentSave{},
		&model.CommentLike{},
		&model.CommentAggregates{},
		&model.Comment{},
		&model.PostSave{},
		&model.PostLike{},
		&model.PostAggregates{},
		&model.Post{},
		&model.CommunityModerator{},
		&model.CommunityPersonBan{},
		&model.CommunityFollow{},
		&model.Community{},
		&model.PersonBlock{},
		&model.LocalUser{},
		&model.Person{},
	}
}

// AllForeignKeys 最新のスキーマの全外部キー制約
func AllForeignKeys() [][5]string {
	return [][5]string{
		// Table, Key, Reference, OnDelete, OnUpdate
		{"local_users", "person_id", "persons(id)", "CASCADE", "CASCADE"},
		{"person_blocks", "person_id", "persons(id)", "CASCADE", "CASCADE"},
		{"person_blocks", "target_id", "persons(id)", "CASCADE", "CASCADE"},
		{"community_moderators", "community_id", "communities(id)", "CASCADE", "CASCADE"},
		{"community_moderators", "person_id", "persons(id)", "CASCADE", "CASCADE"},
		{"community_person_bans", "community_id", "communities(id)", "CASCADE", "CASCADE"},
		{"community_person_bans", "person_id", "persons(id)", "CASCADE", "CASCADE"},
		{"community_follows", "community_id", "communities(id)", "CASCADE", "CASCADE"},
		{"community_follows", "person_id", "persons(id)", "CASCADE", "CASCADE"},
		{"posts", "creator_id", "persons(id)", "CASCADE", "CASCADE"},
		{"posts", "community_id", "communities(id)", "CASCADE", "CASCADE"},
		{"post_aggregates", "post_id", "posts(id)", "CASCADE", "CASCADE"},
		{"post_saves", "post_id", "posts(id)", "CASCADE", "CASCADE"},
		{"post_saves", "person_id", "persons(id)", "CASCADE", "CASCADE"},
		{"post_likes", "post_id", "posts(id)", "CASCADE", "CASCADE"},
		{"post_likes", "person_id", "persons(id)", "CASCADE", "CASCADE"},
		{"comments", "creator_id", "persons(id)", "CASCADE", "CASCADE"},
		{"comments", "post_id", "posts(id)", "CASCADE", "CASCADE"},
		{"comment_aggregates", "comment_id", "comments(id)", "CASCADE", "CASCADE"},
		{"comment_saves", "comment_id", "comments(id)", "CASCADE", "CASCADE"},
		{"comment_saves", "person_id", "persons(id)", "CASCADE", "CASCADE"},
		{"comment_likes", "comment_id", "comments(id)", "CASCADE", "CASCADE"},
		{"comment_likes", "person_id", "persons(id)", "CASCADE", "CASCADE"},
		{"comment_reports", "creator_id", "persons(id)", "CASCADE", "CASCADE"},
		{"comment_reports", "comment_id", "comments(id)", "CASCADE", "CASCADE"},
		{"post_reports", "creator_id", "persons(id)", "CASCADE", "CASCADE"},
		{"post_reports", "post_id", "posts(id)", "CASCADE", "CASCADE"},
	}
}
