package schema

import (
	"time"

	"gorm.io/datatypes"
)

// RevenueDistribution represents the revenue_distributions table - recorded revenue splits
type RevenueDistribution struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// CompanyID is set for company revenue
	CompanyID *uint64 `gorm:"column:company_id" json:"company_id,omitempty"`
	// PipelineRunID is set for the simulated revenue of a completed pipeline run
	PipelineRunID *string `gorm:"column:pipeline_run_id;type:varchar(26)" json:"pipeline_run_id,omitempty"`
	// TotalAmount is the distributed amount
	TotalAmount float64 `gorm:"column:total_amount;not null;type:numeric(18,6)" json:"total_amount"`
	// CompanyShare is the part kept by the company
	CompanyShare float64 `gorm:"column:company_share;not null;type:numeric(18,6)" json:"company_share"`
	// HolderShare is the part paid to token holders
	HolderShare float64 `gorm:"column:holder_share;not null;type:numeric(18,6)" json:"holder_share"`
	// Payouts is a JSON array of per-wallet payouts
	Payouts datatypes.JSON `gorm:"column:payouts;not null;type:jsonb" json:"payouts"`
	// ReceiptHash is keccak256 of the JCS canonical distribution
	ReceiptHash string `gorm:"column:receipt_hash;not null;type:varchar(66)" json:"receipt_hash"`
	// CreatedAt is the timestamp of the distribution
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the RevenueDistribution model
func (RevenueDistribution) TableName() string {
	return "revenue_distributions"
}
