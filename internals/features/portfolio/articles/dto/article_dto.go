package dto

import (
	"time"

	"portfolio_backend/internals/features/portfolio/articles/model"
)

// ============================
// Response DTO
// ============================

type ArticleDTO struct {
	ArticleID          string    `json:"id"`
	ArticleTitle       string    `json:"title"`
	ArticleSlug        string    `json:"slug"`
	ArticleExcerpt     string    `json:"excerpt"`
	ArticleImageURL    string    `json:"image_url"`
	ArticleIsPublished bool      `json:"is_published"`
	ArticleCreatedAt   time.Time `json:"created_at"`
}

// Detail publik: markdown sudah di-render jadi HTML.
type ArticleDetailDTO struct {
	ArticleDTO
	ArticleContent     string `json:"content"`
	ArticleContentHTML string `json:"content_html"`
}

// ============================
// Create & Update Request DTO
// Slug boleh kosong — akan diturunkan dari title.
// ============================

type CreateArticleRequest struct {
	ArticleTitle       string `json:"title" validate:"required,min=3"`
	ArticleSlug        string `json:"slug"`
	ArticleExcerpt     string `json:"excerpt"`
	ArticleContent     string `json:"content"`
	ArticleImageURL    string `json:"image_url"`
	ArticleIsPublished bool   `json:"is_published"`
}

type UpdateArticleRequest struct {
	ArticleTitle       string `json:"title" validate:"required,min=3"`
	ArticleSlug        string `json:"slug"`
	ArticleExcerpt     string `json:"excerpt"`
	ArticleContent     string `json:"content"`
	ArticleImageURL    string `json:"image_url"`
	ArticleIsPublished bool   `json:"is_published"`
}

// ============================
// Converter
// ============================

func ToArticleDTO(m model.ArticleModel) ArticleDTO {
	return ArticleDTO{
		ArticleID:          m.ArticleID.String(),
		ArticleTitle:       m.ArticleTitle,
		ArticleSlug:        m.ArticleSlug,
		ArticleExcerpt:     m.ArticleExcerpt,
		ArticleImageURL:    m.ArticleImageURL,
		ArticleIsPublished: m.ArticleIsPublished,
		ArticleCreatedAt:   m.ArticleCreatedAt,
	}
}

func ToArticleDetailDTO(m model.ArticleModel, contentHTML string) ArticleDetailDTO {
	return ArticleDetailDTO{
		ArticleDTO:         ToArticleDTO(m),
		ArticleContent:     m.ArticleContent,
		ArticleContentHTML: contentHTML,
	}
}

// FallbackArticles: placeholder saat list publik gagal/kosong.
var FallbackArticles = []ArticleDTO{
	{
		ArticleTitle:     "The Future of Web Development",
		ArticleExcerpt:   "Exploring the latest trends in frontend frameworks and what to expect in 2025.",
		ArticleSlug:      "future-web-dev",
		ArticleCreatedAt: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ArticleTitle:     "Mastering Tailwind CSS",
		ArticleExcerpt:   "A comprehensive guide to building responsive layouts with utility classes.",
		ArticleSlug:      "mastering-tailwind",
		ArticleCreatedAt: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
	},
}
