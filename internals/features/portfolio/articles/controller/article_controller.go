package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/articles/dto"
	"portfolio_backend/internals/features/portfolio/articles/model"
	helper "portfolio_backend/internals/helpers"
)

var validateArticle = validator.New()

type ArticleController struct {
	DB *gorm.DB
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{DB: db}
}

// resolveSlug: pakai slug kiriman kalau ada, kalau kosong turunkan dari title,
// lalu pastikan unik (case-insensitive). excludeID untuk update.
func (ctrl *ArticleController) resolveSlug(c *fiber.Ctx, raw, title string, excludeID *uuid.UUID) (string, error) {
	base := strings.TrimSpace(raw)
	if base == "" {
		base = title
	}
	base = helper.Slugify(base, 100)

	var scopeFn func(*gorm.DB) *gorm.DB
	if excludeID != nil {
		id := *excludeID
		scopeFn = func(q *gorm.DB) *gorm.DB {
			return q.Where("article_id <> ?", id)
		}
	}
	return helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB, "articles", "article_slug", base, scopeFn, 100)
}

// =============================
// 🌐 Public: Get Published Articles
// Gagal/kosong → fallback.
// =============================
func (ctrl *ArticleController) GetPublicArticles(c *fiber.Ctx) error {
	if cached, ok := helper.PublicCacheGet("public:articles"); ok {
		if list, ok := cached.([]dto.ArticleDTO); ok {
			return helper.JsonOK(c, "", list)
		}
	}

	var articles []model.ArticleModel
	if err := ctrl.DB.
		Where("article_is_published = ?", true).
		Order("article_created_at DESC").
		Find(&articles).Error; err != nil {
		return helper.JsonFallback(c, "", dto.FallbackArticles)
	}
	if len(articles) == 0 {
		return helper.JsonFallback(c, "", dto.FallbackArticles)
	}

	result := make([]dto.ArticleDTO, 0, len(articles))
	for _, a := range articles {
		result = append(result, dto.ToArticleDTO(a))
	}
	helper.PublicCacheSet("public:articles", result)

	return helper.JsonOK(c, "", result)
}

// =============================
// 🌐 Public: Get Article By Slug
// Hanya artikel published; selain itu 404 (not-found view di client).
// =============================
func (ctrl *ArticleController) GetPublicArticleBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var article model.ArticleModel
	if err := ctrl.DB.
		Where("article_slug = ? AND article_is_published = ?", slug, true).
		First(&article).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}

	contentHTML, err := helper.RenderMarkdown(article.ArticleContent)
	if err != nil {
		// render gagal → content_html kosong, jangan 500 di halaman publik;
		// field content tetap membawa markdown mentahnya
		contentHTML = ""
	}

	return helper.JsonOK(c, "", dto.ToArticleDetailDTO(article, contentHTML))
}

// =============================
// 📄 Admin: Get All Articles
// =============================
func (ctrl *ArticleController) GetAllArticles(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ArticleModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var articles []model.ArticleModel
	if err := ctrl.DB.
		Order("article_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&articles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	result := make([]dto.ArticleDTO, 0, len(articles))
	for _, a := range articles {
		result = append(result, dto.ToArticleDTO(a))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", result, &pg)
}

// =============================
// ➕ Admin: Create Article
// =============================
func (ctrl *ArticleController) CreateArticle(c *fiber.Ctx) error {
	var body dto.CreateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"title": {"Title is required (min 3 characters)"}})
	}

	slug, err := ctrl.resolveSlug(c, body.ArticleSlug, body.ArticleTitle, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var userID *uuid.UUID
	if s, ok := c.Locals("user_id").(string); ok {
		if id, parseErr := uuid.Parse(s); parseErr == nil {
			userID = &id
		}
	}

	article := model.ArticleModel{
		ArticleTitle:       body.ArticleTitle,
		ArticleSlug:        slug,
		ArticleExcerpt:     body.ArticleExcerpt,
		ArticleContent:     body.ArticleContent,
		ArticleImageURL:    body.ArticleImageURL,
		ArticleIsPublished: body.ArticleIsPublished,
		ArticleUserID:      userID,
	}

	if err := ctrl.DB.Create(&article).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	helper.PublicCacheFlush()
	return helper.JsonCreated(c, "Article berhasil dibuat", dto.ToArticleDTO(article))
}

// =============================
// 🔄 Admin: Update Article
// =============================
func (ctrl *ArticleController) UpdateArticle(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"title": {"Title is required (min 3 characters)"}})
	}

	var article model.ArticleModel
	if err := ctrl.DB.First(&article, "article_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}

	slug, err := ctrl.resolveSlug(c, body.ArticleSlug, body.ArticleTitle, &article.ArticleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	article.ArticleTitle = body.ArticleTitle
	article.ArticleSlug = slug
	article.ArticleExcerpt = body.ArticleExcerpt
	article.ArticleContent = body.ArticleContent
	article.ArticleImageURL = body.ArticleImageURL
	article.ArticleIsPublished = body.ArticleIsPublished

	if err := ctrl.DB.Save(&article).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	helper.PublicCacheFlush()
	return helper.JsonUpdated(c, "Article berhasil diperbarui", dto.ToArticleDTO(article))
}

// =============================
// 🗑️ Admin: Delete Article
// =============================
func (ctrl *ArticleController) DeleteArticle(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.ArticleModel{}, "article_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	helper.PublicCacheFlush()
	return helper.JsonDeleted(c, "Article berhasil dihapus", nil)
}
