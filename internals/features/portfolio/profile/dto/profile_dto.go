package dto

import (
	"github.com/bytedance/sonic"

	"portfolio_backend/internals/features/portfolio/profile/model"
	helper "portfolio_backend/internals/helpers"
)

// ============================
// Skill & Social Links
// ============================

// SkillGroupRequest: items boleh array JSON atau string dipisah koma.
type SkillGroupRequest struct {
	Category string            `json:"category" validate:"required"`
	Items    helper.StringList `json:"items"`
}

type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type SocialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// ============================
// Response DTO
// ============================

type ProfileDTO struct {
	ProfileName      string       `json:"name"`
	ProfileHeadline  string       `json:"headline"`
	ProfileBio       string       `json:"bio"`
	ProfileAvatarURL string       `json:"avatar_url"`
	ProfileEmail     string       `json:"email"`
	ProfilePhone     string       `json:"phone"`
	ProfileLocation  string       `json:"location"`
	ProfileResumeURL string       `json:"resume_url"`
	ProfileSkills    []SkillGroup `json:"skills"`
	ProfileSocial    SocialLinks  `json:"social_links"`
}

// ============================
// Update Request DTO
// ============================

type UpdateProfileRequest struct {
	ProfileName      string              `json:"name" validate:"required,min=2"`
	ProfileHeadline  string              `json:"headline"`
	ProfileBio       string              `json:"bio"`
	ProfileAvatarURL string              `json:"avatar_url"`
	ProfileEmail     string              `json:"email" validate:"omitempty,email"`
	ProfilePhone     string              `json:"phone"`
	ProfileLocation  string              `json:"location"`
	ProfileResumeURL string              `json:"resume_url"`
	ProfileSkills    []SkillGroupRequest `json:"skills"`
	ProfileSocial    SocialLinks         `json:"social_links"`
}

// ============================
// Converter
// ============================

func ToProfileDTO(m model.ProfileModel) ProfileDTO {
	out := ProfileDTO{
		ProfileName:      m.ProfileName,
		ProfileHeadline:  m.ProfileHeadline,
		ProfileBio:       m.ProfileBio,
		ProfileAvatarURL: m.ProfileAvatarURL,
		ProfileEmail:     m.ProfileEmail,
		ProfilePhone:     m.ProfilePhone,
		ProfileLocation:  m.ProfileLocation,
		ProfileResumeURL: m.ProfileResumeURL,
		ProfileSkills:    []SkillGroup{},
	}
	if len(m.ProfileSkills) > 0 {
		_ = sonic.Unmarshal(m.ProfileSkills, &out.ProfileSkills)
	}
	if len(m.ProfileSocialLinks) > 0 {
		_ = sonic.Unmarshal(m.ProfileSocialLinks, &out.ProfileSocial)
	}
	return out
}

// DefaultProfile: data publik saat belum ada baris profile tersimpan.
func DefaultProfile() ProfileDTO {
	return ProfileDTO{
		ProfileName:     "Alex",
		ProfileHeadline: "Full-Stack Developer",
		ProfileBio:      "I build modern web applications with a focus on clean design and great user experience.",
		ProfileEmail:    "hello@alexdev.com",
		ProfilePhone:    "+1 (555) 123-4567",
		ProfileLocation: "San Francisco, CA",
		ProfileSkills: []SkillGroup{
			{Category: "Frontend", Items: []string{"React", "Tailwind CSS", "JavaScript", "HTML/CSS"}},
			{Category: "Backend", Items: []string{"Node.js", "Python", "PostgreSQL", "Supabase"}},
			{Category: "Tools", Items: []string{"Git", "Docker", "Figma", "Vite"}},
		},
	}
}
