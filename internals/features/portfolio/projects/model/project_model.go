package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProjectModel struct {
	ProjectID          uuid.UUID      `gorm:"column:project_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"project_id"`
	ProjectTitle       string         `gorm:"column:project_title;type:varchar(255);not null" json:"project_title"`
	ProjectDescription string         `gorm:"column:project_description;type:text" json:"project_description"`
	ProjectImageURL    string         `gorm:"column:project_image_url;type:text" json:"project_image_url"`
	ProjectTechStack   pq.StringArray `gorm:"column:project_tech_stack;type:text[]" json:"project_tech_stack"`
	ProjectDemoURL     string         `gorm:"column:project_demo_url;type:text" json:"project_demo_url"`
	ProjectGithubURL   string         `gorm:"column:project_github_url;type:text" json:"project_github_url"`
	ProjectIsFeatured  bool           `gorm:"column:project_is_featured;default:false" json:"project_is_featured"`
	ProjectUserID      *uuid.UUID     `gorm:"column:project_user_id;type:uuid" json:"project_user_id,omitempty"`
	ProjectCreatedAt   time.Time      `gorm:"column:project_created_at;autoCreateTime" json:"project_created_at"`
	ProjectUpdatedAt   time.Time      `gorm:"column:project_updated_at;autoUpdateTime" json:"project_updated_at"`
}

func (ProjectModel) TableName() string {
	return "projects"
}
