package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/projects/dto"
	"portfolio_backend/internals/features/portfolio/projects/model"
	helper "portfolio_backend/internals/helpers"
)

var validateProject = validator.New()

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

func userIDFromLocals(c *fiber.Ctx) *uuid.UUID {
	if s, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(s); err == nil {
			return &id
		}
	}
	return nil
}

// =============================
// 🌐 Public: Get Projects (featured default, ?all=true semua)
// Gagal/kosong → fallback, tidak pernah error state.
// =============================
func (ctrl *ProjectController) GetPublicProjects(c *fiber.Ctx) error {
	all := c.Query("all") == "true"
	cacheKey := "public:projects:featured"
	if all {
		cacheKey = "public:projects:all"
	}

	if cached, ok := helper.PublicCacheGet(cacheKey); ok {
		if list, ok := cached.([]dto.ProjectDTO); ok {
			return helper.JsonOK(c, "", list)
		}
	}

	q := ctrl.DB.Order("project_created_at DESC")
	if !all {
		q = q.Where("project_is_featured = ?", true)
	}

	var projects []model.ProjectModel
	if err := q.Find(&projects).Error; err != nil {
		return helper.JsonFallback(c, "", dto.FallbackProjects)
	}
	if len(projects) == 0 {
		return helper.JsonFallback(c, "", dto.FallbackProjects)
	}

	result := make([]dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		result = append(result, dto.ToProjectDTO(p))
	}
	helper.PublicCacheSet(cacheKey, result)

	return helper.JsonOK(c, "", result)
}

// =============================
// 📄 Admin: Get All Projects (paginated, terbaru dulu)
// =============================
func (ctrl *ProjectController) GetAllProjects(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ProjectModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var projects []model.ProjectModel
	if err := ctrl.DB.
		Order("project_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&projects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	result := make([]dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		result = append(result, dto.ToProjectDTO(p))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", result, &pg)
}

// =============================
// ➕ Admin: Create Project
// =============================
func (ctrl *ProjectController) CreateProject(c *fiber.Ctx) error {
	var body dto.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProject.Struct(&body); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"title": {"Title is required (min 3 characters)"}})
	}

	project := model.ProjectModel{
		ProjectTitle:       body.ProjectTitle,
		ProjectDescription: body.ProjectDescription,
		ProjectImageURL:    body.ProjectImageURL,
		ProjectTechStack:   []string(body.ProjectTechStack),
		ProjectDemoURL:     body.ProjectDemoURL,
		ProjectGithubURL:   body.ProjectGithubURL,
		ProjectIsFeatured:  body.ProjectIsFeatured,
		ProjectUserID:      userIDFromLocals(c),
	}

	if err := ctrl.DB.Create(&project).Error; err != nil {
		// admin melihat error mentah supaya bisa retry dengan konteks
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	helper.PublicCacheFlush()
	return helper.JsonCreated(c, "Project berhasil dibuat", dto.ToProjectDTO(project))
}

// =============================
// 🔄 Admin: Update Project
// =============================
func (ctrl *ProjectController) UpdateProject(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProject.Struct(&body); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"title": {"Title is required (min 3 characters)"}})
	}

	var project model.ProjectModel
	if err := ctrl.DB.First(&project, "project_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
	}

	project.ProjectTitle = body.ProjectTitle
	project.ProjectDescription = body.ProjectDescription
	project.ProjectImageURL = body.ProjectImageURL
	project.ProjectTechStack = []string(body.ProjectTechStack)
	project.ProjectDemoURL = body.ProjectDemoURL
	project.ProjectGithubURL = body.ProjectGithubURL
	project.ProjectIsFeatured = body.ProjectIsFeatured

	if err := ctrl.DB.Save(&project).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	helper.PublicCacheFlush()
	return helper.JsonUpdated(c, "Project berhasil diperbarui", dto.ToProjectDTO(project))
}

// =============================
// 🗑️ Admin: Delete Project
// =============================
func (ctrl *ProjectController) DeleteProject(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.ProjectModel{}, "project_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	helper.PublicCacheFlush()
	return helper.JsonDeleted(c, "Project berhasil dihapus", nil)
}
