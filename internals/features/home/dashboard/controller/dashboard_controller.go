package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactModel "portfolio_backend/internals/features/contact/messages/model"
	articleModel "portfolio_backend/internals/features/portfolio/articles/model"
	productModel "portfolio_backend/internals/features/portfolio/products/model"
	projectModel "portfolio_backend/internals/features/portfolio/projects/model"
	helper "portfolio_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// =============================
// 📄 Admin: Dashboard Counts
// =============================
func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	var projects, products, articles, messages, unread int64

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&projects, ctrl.DB.Model(&projectModel.ProjectModel{})},
		{&products, ctrl.DB.Model(&productModel.ProductModel{})},
		{&articles, ctrl.DB.Model(&articleModel.ArticleModel{})},
		{&messages, ctrl.DB.Model(&contactModel.ContactMessageModel{})},
		{&unread, ctrl.DB.Model(&contactModel.ContactMessageModel{}).Where("contact_message_is_read = ?", false)},
	}
	for _, item := range counts {
		if err := item.query.Count(item.dst).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonOK(c, "", fiber.Map{
		"projects":        projects,
		"products":        products,
		"articles":        articles,
		"messages":        messages,
		"unread_messages": unread,
	})
}
