package model

import (
	"time"

	"github.com/google/uuid"
)

type ArticleModel struct {
	ArticleID          uuid.UUID  `gorm:"column:article_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"article_id"`
	ArticleTitle       string     `gorm:"column:article_title;type:varchar(255);not null" json:"article_title"`
	ArticleSlug        string     `gorm:"column:article_slug;type:varchar(100);uniqueIndex;not null" json:"article_slug"`
	ArticleExcerpt     string     `gorm:"column:article_excerpt;type:text" json:"article_excerpt"`
	ArticleContent     string     `gorm:"column:article_content;type:text" json:"article_content"`
	ArticleImageURL    string     `gorm:"column:article_image_url;type:text" json:"article_image_url"`
	ArticleIsPublished bool       `gorm:"column:article_is_published;default:false" json:"article_is_published"`
	ArticleUserID      *uuid.UUID `gorm:"column:article_user_id;type:uuid" json:"article_user_id,omitempty"`
	ArticleCreatedAt   time.Time  `gorm:"column:article_created_at;autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt   time.Time  `gorm:"column:article_updated_at;autoUpdateTime" json:"article_updated_at"`
}

func (ArticleModel) TableName() string {
	return "articles"
}
