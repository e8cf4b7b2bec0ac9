package controller

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/profile/dto"
	"portfolio_backend/internals/features/portfolio/profile/model"
	helper "portfolio_backend/internals/helpers"
)

var validateProfile = validator.New()

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// =============================
// 🌐 Public: Get Profile
// Belum ada baris → default, bukan error.
// =============================
func (ctrl *ProfileController) GetPublicProfile(c *fiber.Ctx) error {
	if cached, ok := helper.PublicCacheGet("public:profile"); ok {
		if p, ok := cached.(dto.ProfileDTO); ok {
			return helper.JsonOK(c, "", p)
		}
	}

	var profile model.ProfileModel
	if err := ctrl.DB.Order("profile_created_at ASC").First(&profile).Error; err != nil {
		return helper.JsonFallback(c, "", dto.DefaultProfile())
	}

	result := dto.ToProfileDTO(profile)
	helper.PublicCacheSet("public:profile", result)
	return helper.JsonOK(c, "", result)
}

// =============================
// 📄 Admin: Get Profile
// =============================
func (ctrl *ProfileController) GetAdminProfile(c *fiber.Ctx) error {
	var profile model.ProfileModel
	if err := ctrl.DB.Order("profile_created_at ASC").First(&profile).Error; err != nil {
		return helper.JsonOK(c, "", dto.DefaultProfile())
	}
	return helper.JsonOK(c, "", dto.ToProfileDTO(profile))
}

// =============================
// 🔄 Admin: Upsert Profile
// =============================
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProfile.Struct(&body); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"name": {"Name is required (min 2 characters)"}})
	}

	// normalisasi skills: items hasil decode sudah di-trim oleh StringList
	skills := make([]dto.SkillGroup, 0, len(body.ProfileSkills))
	for _, g := range body.ProfileSkills {
		skills = append(skills, dto.SkillGroup{Category: g.Category, Items: []string(g.Items)})
	}

	skillsJSON, err := sonic.Marshal(skills)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid skills payload")
	}
	socialJSON, err := sonic.Marshal(body.ProfileSocial)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid social links payload")
	}

	var userID *uuid.UUID
	if s, ok := c.Locals("user_id").(string); ok {
		if id, parseErr := uuid.Parse(s); parseErr == nil {
			userID = &id
		}
	}

	var profile model.ProfileModel
	err = ctrl.DB.Order("profile_created_at ASC").First(&profile).Error
	isNew := false
	if err != nil {
		// hanya record-not-found yang berarti "belum ada profile";
		// error lain jangan sampai bikin baris kedua
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		isNew = true
	}

	profile.ProfileName = body.ProfileName
	profile.ProfileHeadline = body.ProfileHeadline
	profile.ProfileBio = body.ProfileBio
	profile.ProfileAvatarURL = body.ProfileAvatarURL
	profile.ProfileEmail = body.ProfileEmail
	profile.ProfilePhone = body.ProfilePhone
	profile.ProfileLocation = body.ProfileLocation
	profile.ProfileResumeURL = body.ProfileResumeURL
	profile.ProfileSkills = datatypes.JSON(skillsJSON)
	profile.ProfileSocialLinks = datatypes.JSON(socialJSON)
	if profile.ProfileUserID == nil {
		profile.ProfileUserID = userID
	}

	if isNew {
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	} else {
		if err := ctrl.DB.Save(&profile).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	helper.PublicCacheFlush()
	return helper.JsonUpdated(c, "Profile berhasil diperbarui", dto.ToProfileDTO(profile))
}
