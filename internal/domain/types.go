package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ListingStatus represents the status of a CEO agent listing
type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "available"
)

// CompanyStatus represents the status of a launched company
type CompanyStatus string

const (
	CompanyStatusRunning CompanyStatus = "running"
)

// StringList is a list of strings that also accepts a single string or a list of
// arbitrary scalars when decoded, since model output is not consistent about either.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			out = append(out, scalarString(item))
		}
		*s = out
		return nil
	}

	*s = StringList{scalarString(data)}
	return nil
}

// scalarString renders a JSON value as plain text; objects are kept as compact JSON
func scalarString(data json.RawMessage) string {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		return str
	}
	return strings.TrimSpace(string(data))
}

// Idea is a business idea proposed by the CEO agent
type Idea struct {
	ID               int64  `json:"id,omitempty"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	PotentialRevenue string `json:"potential_revenue"`
	RevenueModel     string `json:"revenue_model,omitempty"`
	SuccessFactors   string `json:"success_factors,omitempty"`
	Fallback         bool   `json:"fallback,omitempty"`
}

// Validate checks required idea fields
func (i *Idea) Validate() error {
	if strings.TrimSpace(i.Title) == "" || strings.TrimSpace(i.Description) == "" {
		return fmt.Errorf("%w: idea requires title and description", ErrMalformedOutput)
	}
	return nil
}

// Competitor is one entry of the competitive landscape
type Competitor struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Strengths   StringList `json:"strengths,omitempty"`
	Weaknesses  StringList `json:"weaknesses,omitempty"`
}

// MarketAnalysis summarises the addressable market
type MarketAnalysis struct {
	MarketSize     string     `json:"market_size"`
	GrowthRate     string     `json:"growth_rate,omitempty"`
	TargetAudience string     `json:"target_audience,omitempty"`
	Trends         StringList `json:"trends,omitempty"`
}

// Research is the market research produced for an idea
type Research struct {
	Competitors     []Competitor   `json:"competitors"`
	MarketAnalysis  MarketAnalysis `json:"market_analysis"`
	Recommendations StringList     `json:"recommendations"`
	Fallback        bool           `json:"fallback,omitempty"`
}

// Validate checks required research fields
func (r *Research) Validate() error {
	if len(r.Competitors) == 0 && r.MarketAnalysis.MarketSize == "" {
		return fmt.Errorf("%w: research requires competitors or market analysis", ErrMalformedOutput)
	}
	if len(r.Recommendations) == 0 {
		return fmt.Errorf("%w: research requires recommendations", ErrMalformedOutput)
	}
	return nil
}

// Feature is a product feature. A bare string decodes into the name.
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

func (f *Feature) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*f = Feature{Name: name}
		return nil
	}

	type feature Feature
	var out feature
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*f = Feature(out)
	return nil
}

// TargetMarket describes who the product is for
type TargetMarket struct {
	PrimaryAudience   string     `json:"primary_audience"`
	SecondaryAudience string     `json:"secondary_audience,omitempty"`
	Demographics      StringList `json:"demographics,omitempty"`
	PainPoints        StringList `json:"pain_points,omitempty"`
}

// Product is the product design derived from an idea and its research
type Product struct {
	ID                 int64        `json:"id,omitempty"`
	ProductName        string       `json:"product_name"`
	ProductDescription string       `json:"product_description"`
	Features           []Feature    `json:"features"`
	TargetMarket       TargetMarket `json:"target_market"`
	RevenueModel       string       `json:"revenue_model"`
	Fallback           bool         `json:"fallback,omitempty"`
}

// Validate checks required product fields
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ProductName) == "" {
		return fmt.Errorf("%w: product requires product_name", ErrMalformedOutput)
	}
	if len(p.Features) == 0 {
		return fmt.Errorf("%w: product requires features", ErrMalformedOutput)
	}
	return nil
}

// ProductEvaluation is the CEO's assessment of a product
type ProductEvaluation struct {
	ViabilityScore  int        `json:"viability_score"`
	MarketPotential string     `json:"market_potential"`
	Recommendations StringList `json:"recommendations"`
	GoDecision      bool       `json:"go_decision"`
	Fallback        bool       `json:"fallback,omitempty"`
}

// Validate checks the evaluation score range
func (e *ProductEvaluation) Validate() error {
	if e.ViabilityScore < 1 || e.ViabilityScore > 10 {
		return fmt.Errorf("%w: viability_score must be between 1 and 10", ErrMalformedOutput)
	}
	return nil
}

// MarketingChannel is one acquisition channel and how it is used
type MarketingChannel struct {
	Channel  string `json:"channel"`
	Strategy string `json:"strategy,omitempty"`
	Budget   string `json:"budget,omitempty"`
}

// TargetSegment is a customer segment addressed by marketing
type TargetSegment struct {
	Segment         string `json:"segment"`
	Characteristics string `json:"characteristics,omitempty"`
}

// LaunchPlan lists launch activities per phase
type LaunchPlan struct {
	PreLaunch  StringList `json:"pre_launch,omitempty"`
	Launch     StringList `json:"launch,omitempty"`
	PostLaunch StringList `json:"post_launch,omitempty"`
}

// MarketingStrategy is produced by the CMO agent
type MarketingStrategy struct {
	BrandPositioning  string             `json:"brand_positioning,omitempty"`
	KeyMessages       StringList         `json:"key_messages,omitempty"`
	MarketingChannels []MarketingChannel `json:"marketing_channels"`
	TargetSegments    []TargetSegment    `json:"target_segments"`
	LaunchPlan        LaunchPlan         `json:"launch_plan"`
	Fallback          bool               `json:"fallback,omitempty"`
}

// Validate checks required marketing fields
func (m *MarketingStrategy) Validate() error {
	if len(m.MarketingChannels) == 0 {
		return fmt.Errorf("%w: marketing strategy requires marketing_channels", ErrMalformedOutput)
	}
	if len(m.TargetSegments) == 0 {
		return fmt.Errorf("%w: marketing strategy requires target_segments", ErrMalformedOutput)
	}
	return nil
}

// Architecture is the high level system design
type Architecture struct {
	Overview   string     `json:"overview"`
	Components StringList `json:"components,omitempty"`
}

// DevelopmentPhase is one delivery phase of the technical plan
type DevelopmentPhase struct {
	Phase        string     `json:"phase"`
	Duration     string     `json:"duration,omitempty"`
	Deliverables StringList `json:"deliverables,omitempty"`
}

// TechnicalStrategy is produced by the CTO agent
type TechnicalStrategy struct {
	TechnologyStack   map[string]StringList `json:"technology_stack"`
	Architecture      Architecture          `json:"architecture"`
	DevelopmentPhases []DevelopmentPhase    `json:"development_phases"`
	Fallback          bool                  `json:"fallback,omitempty"`
}

// Validate checks required technical fields
func (t *TechnicalStrategy) Validate() error {
	if len(t.TechnologyStack) == 0 {
		return fmt.Errorf("%w: technical strategy requires technology_stack", ErrMalformedOutput)
	}
	if len(t.DevelopmentPhases) == 0 {
		return fmt.Errorf("%w: technical strategy requires development_phases", ErrMalformedOutput)
	}
	return nil
}

// BoltPrompt is the website build prompt assembled by the head of engineering
type BoltPrompt struct {
	WebsiteTitle           string     `json:"website_title"`
	WebsiteDescription     string     `json:"website_description,omitempty"`
	PagesRequired          StringList `json:"pages_required"`
	FunctionalRequirements StringList `json:"functional_requirements"`
	DesignGuidelines       string     `json:"design_guidelines,omitempty"`
	IntegrationNeeds       StringList `json:"integration_needs,omitempty"`
	BoltPrompt             string     `json:"bolt_prompt"`
	Fallback               bool       `json:"fallback,omitempty"`
}

// Validate checks required prompt fields
func (b *BoltPrompt) Validate() error {
	if strings.TrimSpace(b.WebsiteTitle) == "" || strings.TrimSpace(b.BoltPrompt) == "" {
		return fmt.Errorf("%w: prompt requires website_title and bolt_prompt", ErrMalformedOutput)
	}
	return nil
}

// NormalizeWallet normalizes hex wallet addresses to their checksum form.
// Other holder identifiers are returned trimmed.
func NormalizeWallet(wallet string) string {
	wallet = strings.TrimSpace(wallet)
	if common.IsHexAddress(wallet) {
		return common.HexToAddress(wallet).Hex()
	}
	return wallet
}

// NormalizeTokenSymbol upper-cases and trims a token symbol
func NormalizeTokenSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// CompanyName derives the company name from the CEO agent name
func CompanyName(agentName string) string {
	return agentName + COMPANY_NAME_SUFFIX
}
