package models

import "time"

// Product is a marketplace listing created by a seller.
type Product struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SellerID     uint      `gorm:"not null;index" json:"seller_id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `gorm:"not null;index" json:"category"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"not null" json:"price"`
	Unit         string    `gorm:"default:kg" json:"unit"`
	Quantity     int       `json:"quantity"`
	IsOrganic    bool      `gorm:"default:false" json:"is_organic"`
	Image        string    `json:"image"`
	Rating       float64   `gorm:"default:0" json:"rating"`
	ReviewsCount int       `gorm:"default:0" json:"reviews_count"`
	Status       string    `gorm:"default:active;index" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Review is a buyer rating attached to a product.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
