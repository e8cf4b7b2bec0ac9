package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileModel: satu baris per pemilik situs (praktis singleton).
type ProfileModel struct {
	ProfileID          uuid.UUID      `gorm:"column:profile_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"profile_id"`
	ProfileName        string         `gorm:"column:profile_name;type:varchar(100)" json:"profile_name"`
	ProfileHeadline    string         `gorm:"column:profile_headline;type:varchar(255)" json:"profile_headline"`
	ProfileBio         string         `gorm:"column:profile_bio;type:text" json:"profile_bio"`
	ProfileAvatarURL   string         `gorm:"column:profile_avatar_url;type:text" json:"profile_avatar_url"`
	ProfileEmail       string         `gorm:"column:profile_email;type:varchar(255)" json:"profile_email"`
	ProfilePhone       string         `gorm:"column:profile_phone;type:varchar(50)" json:"profile_phone"`
	ProfileLocation    string         `gorm:"column:profile_location;type:varchar(100)" json:"profile_location"`
	ProfileResumeURL   string         `gorm:"column:profile_resume_url;type:text" json:"profile_resume_url"`
	ProfileSkills      datatypes.JSON `gorm:"column:profile_skills;type:jsonb" json:"profile_skills"`
	ProfileSocialLinks datatypes.JSON `gorm:"column:profile_social_links;type:jsonb" json:"profile_social_links"`
	ProfileUserID      *uuid.UUID     `gorm:"column:profile_user_id;type:uuid;uniqueIndex" json:"profile_user_id,omitempty"`
	ProfileCreatedAt   time.Time      `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt   time.Time      `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
