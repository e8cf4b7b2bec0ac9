package model

import (
	"time"

	"github.com/google/uuid"
)

type ProductModel struct {
	ProductID          uuid.UUID  `gorm:"column:product_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"product_id"`
	ProductName        string     `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	ProductDescription string     `gorm:"column:product_description;type:text" json:"product_description"`
	ProductPrice       float64    `gorm:"column:product_price;type:numeric(14,2);not null;default:0" json:"product_price"`
	ProductImageURL    string     `gorm:"column:product_image_url;type:text" json:"product_image_url"`
	ProductBuyLink     string     `gorm:"column:product_buy_link;type:text" json:"product_buy_link"`
	ProductIsActive    bool       `gorm:"column:product_is_active;default:true" json:"product_is_active"`
	ProductUserID      *uuid.UUID `gorm:"column:product_user_id;type:uuid" json:"product_user_id,omitempty"`
	ProductCreatedAt   time.Time  `gorm:"column:product_created_at;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt   time.Time  `gorm:"column:product_updated_at;autoUpdateTime" json:"product_updated_at"`
}

func (ProductModel) TableName() string {
	return "products"
}
