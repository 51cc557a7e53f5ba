package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Idea represents the ideas table - business ideas generated by the CEO agent
type Idea struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Title is the short name of the idea
	Title string `gorm:"column:title;not null;type:text"`
	// Description explains the idea
	Description string `gorm:"column:description;not null;type:text"`
	// PotentialRevenue describes how the idea makes money
	PotentialRevenue string `gorm:"column:potential_revenue;type:text"`
	// SuccessFactors lists the key success factors as free text
	SuccessFactors string `gorm:"column:success_factors;type:text"`
	// Fallback is true when the idea came from the deterministic fallback set
	Fallback bool `gorm:"column:fallback;not null;default:false"`
	// CreatedAt is the timestamp when this idea was generated
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Idea model
func (Idea) TableName() string {
	return "ideas"
}

// Research represents the research table - market research for an idea
type Research struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// IdeaID references the researched idea, null when the idea was never persisted
	IdeaID *int64 `gorm:"column:idea_id"`
	// ResearchData holds competitors, market_analysis and recommendations
	ResearchData datatypes.JSON `gorm:"column:research_data;not null;type:jsonb"`
	// CreatedAt is the timestamp when the research was produced
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Research model
func (Research) TableName() string {
	return "research"
}

// Product represents the products table - product designs derived from ideas
type Product struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// IdeaID references the source idea
	IdeaID *int64 `gorm:"column:idea_id"`
	// ProductName is the product name
	ProductName string `gorm:"column:product_name;not null;type:text"`
	// ProductDescription describes the product
	ProductDescription string `gorm:"column:product_description;type:text"`
	// Features is a JSON array of product features
	Features datatypes.JSON `gorm:"column:features;not null;type:jsonb"`
	// TargetMarket is a JSON object describing the audience
	TargetMarket datatypes.JSON `gorm:"column:target_market;not null;type:jsonb"`
	// RevenueModel describes how the product makes money
	RevenueModel string `gorm:"column:revenue_model;type:text"`
	// CreatedAt is the timestamp when the product was designed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
