package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/portfolio/products/dto"
	"portfolio_backend/internals/features/portfolio/products/model"
	helper "portfolio_backend/internals/helpers"
)

var validateProduct = validator.New()

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// =============================
// 🌐 Public: Get Active Products
// Tidak ada fallback — list kosong berarti section disembunyikan client.
// =============================
func (ctrl *ProductController) GetPublicProducts(c *fiber.Ctx) error {
	if cached, ok := helper.PublicCacheGet("public:products"); ok {
		if list, ok := cached.([]dto.ProductDTO); ok {
			return helper.JsonOK(c, "", list)
		}
	}

	var products []model.ProductModel
	if err := ctrl.DB.
		Where("product_is_active = ?", true).
		Order("product_created_at DESC").
		Find(&products).Error; err != nil {
		// fail-soft: list kosong, bukan error banner
		return helper.JsonOK(c, "", []dto.ProductDTO{})
	}

	result := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		result = append(result, dto.ToProductDTO(p))
	}
	helper.PublicCacheSet("public:products", result)

	return helper.JsonOK(c, "", result)
}

// =============================
// 📄 Admin: Get All Products
// =============================
func (ctrl *ProductController) GetAllProducts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ProductModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var products []model.ProductModel
	if err := ctrl.DB.
		Order("product_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	result := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		result = append(result, dto.ToProductDTO(p))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", result, &pg)
}

// =============================
// ➕ Admin: Create Product
// =============================
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var body dto.CreateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProduct.Struct(&body); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"name": {"Name is required (min 3 characters), price must be >= 0"}})
	}

	var userID *uuid.UUID
	if s, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(s); err == nil {
			userID = &id
		}
	}

	product := model.ProductModel{
		ProductName:        body.ProductName,
		ProductDescription: body.ProductDescription,
		ProductPrice:       body.ProductPrice,
		ProductImageURL:    body.ProductImageURL,
		ProductBuyLink:     body.ProductBuyLink,
		ProductIsActive:    body.ProductIsActive,
		ProductUserID:      userID,
	}

	if err := ctrl.DB.Create(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	helper.PublicCacheFlush()
	return helper.JsonCreated(c, "Product berhasil dibuat", dto.ToProductDTO(product))
}

// =============================
// 🔄 Admin: Update Product
// =============================
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProduct.Struct(&body); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"name": {"Name is required (min 3 characters), price must be >= 0"}})
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
	}

	product.ProductName = body.ProductName
	product.ProductDescription = body.ProductDescription
	product.ProductPrice = body.ProductPrice
	product.ProductImageURL = body.ProductImageURL
	product.ProductBuyLink = body.ProductBuyLink
	product.ProductIsActive = body.ProductIsActive

	if err := ctrl.DB.Save(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	helper.PublicCacheFlush()
	return helper.JsonUpdated(c, "Product berhasil diperbarui", dto.ToProductDTO(product))
}

// =============================
// 🗑️ Admin: Delete Product
// =============================
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.ProductModel{}, "product_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	helper.PublicCacheFlush()
	return helper.JsonDeleted(c, "Product berhasil dihapus", nil)
}
