package dto

import (
	"time"

	"portfolio_backend/internals/features/portfolio/projects/model"
	helper "portfolio_backend/internals/helpers"
)

// ============================
// Response DTO
// ============================

type ProjectDTO struct {
	ProjectID          string    `json:"id"`
	ProjectTitle       string    `json:"title"`
	ProjectDescription string    `json:"description"`
	ProjectImageURL    string    `json:"image_url"`
	ProjectTechStack   []string  `json:"tech_stack"`
	ProjectDemoURL     string    `json:"demo_url"`
	ProjectGithubURL   string    `json:"github_url"`
	ProjectIsFeatured  bool      `json:"is_featured"`
	ProjectCreatedAt   time.Time `json:"created_at"`
}

// ============================
// Create & Update Request DTO
// tech_stack boleh array ATAU string "a, b" (dinormalisasi di decode).
// ============================

type CreateProjectRequest struct {
	ProjectTitle       string            `json:"title" validate:"required,min=3"`
	ProjectDescription string            `json:"description"`
	ProjectImageURL    string            `json:"image_url"`
	ProjectTechStack   helper.StringList `json:"tech_stack"`
	ProjectDemoURL     string            `json:"demo_url"`
	ProjectGithubURL   string            `json:"github_url"`
	ProjectIsFeatured  bool              `json:"is_featured"`
}

type UpdateProjectRequest struct {
	ProjectTitle       string            `json:"title" validate:"required,min=3"`
	ProjectDescription string            `json:"description"`
	ProjectImageURL    string            `json:"image_url"`
	ProjectTechStack   helper.StringList `json:"tech_stack"`
	ProjectDemoURL     string            `json:"demo_url"`
	ProjectGithubURL   string            `json:"github_url"`
	ProjectIsFeatured  bool              `json:"is_featured"`
}

// ============================
// Converter
// ============================

func ToProjectDTO(m model.ProjectModel) ProjectDTO {
	tech := make([]string, 0, len(m.ProjectTechStack))
	tech = append(tech, m.ProjectTechStack...)
	return ProjectDTO{
		ProjectID:          m.ProjectID.String(),
		ProjectTitle:       m.ProjectTitle,
		ProjectDescription: m.ProjectDescription,
		ProjectImageURL:    m.ProjectImageURL,
		ProjectTechStack:   tech,
		ProjectDemoURL:     m.ProjectDemoURL,
		ProjectGithubURL:   m.ProjectGithubURL,
		ProjectIsFeatured:  m.ProjectIsFeatured,
		ProjectCreatedAt:   m.ProjectCreatedAt,
	}
}

// FallbackProjects: konten placeholder saat fetch publik gagal/kosong.
var FallbackProjects = []ProjectDTO{
	{
		ProjectTitle:       "Project One",
		ProjectDescription: "A futuristic dashboard for managing IoT devices with real-time data visualization.",
		ProjectTechStack:   []string{"React", "D3.js", "WebSocket"},
		ProjectImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=800",
		ProjectGithubURL:   "#",
		ProjectDemoURL:     "#",
	},
	{
		ProjectTitle:       "Project Two",
		ProjectDescription: "E-commerce platform with a focus on speed and accessibility.",
		ProjectTechStack:   []string{"Next.js", "Stripe", "Tailwind"},
		ProjectImageURL:    "https://images.unsplash.com/photo-1557821552-17105176677c?auto=format&fit=crop&q=80&w=800",
		ProjectGithubURL:   "#",
		ProjectDemoURL:     "#",
	},
	{
		ProjectTitle:       "Project Three",
		ProjectDescription: "AI-powered chat application with natural language processing.",
		ProjectTechStack:   []string{"Python", "TensorFlow", "React"},
		ProjectImageURL:    "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?auto=format&fit=crop&q=80&w=800",
		ProjectGithubURL:   "#",
		ProjectDemoURL:     "#",
	},
}
