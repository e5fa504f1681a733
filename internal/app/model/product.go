package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Quantity    int            `gorm:"default:0" json:"quantity"`
	Sold        int            `gorm:"default:0" json:"sold"`
	TotalRating int            `gorm:"default:0" json:"totalrating"`
	IsFeatured  bool           `gorm:"default:false;index" json:"is_featured"`
	// Stored as a text column holding the pq array literal so the same
	// model migrates on the SQLite test database.
	Images      pq.StringArray `gorm:"type:text" json:"images"`
	CategoryID  *uint          `gorm:"index" json:"category_id,omitempty"`
	BrandID     *uint          `gorm:"index" json:"brand_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Brand    *Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Colors   []Color   `gorm:"many2many:product_colors" json:"colors,omitempty"`
	Ratings  []Rating  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// Rating is a single user's star rating of a product. One row per
// (product, user); rating again replaces the row.
type Rating struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"not null;index;uniqueIndex:idx_ratings_product_user" json:"product_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_product_user" json:"user_id"`
	Star      int       `gorm:"not null" json:"star"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"postedby,omitempty"`
}

func (Rating) TableName() string {
	return "ratings"
}
