package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("incompatible type for JSONB")
	}
}

// scanJSON decodes a jsonb column into dst, leaving dst untouched for NULL.
func scanJSON(value interface{}, dst interface{}) error {
	if value == nil {
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		return nil
	}
	return json.Unmarshal(bytes, dst)
}

// Company is the single company profile owned by a user.
type Company struct {
	ID                       uuid.UUID      `db:"id" json:"id"`
	UserID                   uuid.UUID      `db:"user_id" json:"user_id"`
	Name                     string         `db:"name" json:"name"`
	Industry                 string         `db:"industry" json:"industry"`
	Size                     string         `db:"size" json:"size"`
	Website                  string         `db:"website" json:"website"`
	Description              string         `db:"description" json:"description"`
	UniqueSellingProposition string         `db:"unique_selling_proposition" json:"unique_selling_proposition"`
	Products                 pq.StringArray `db:"products" json:"products"`
	Services                 pq.StringArray `db:"services" json:"services"`
	IdealCustomerProfile     string         `db:"ideal_customer_profile" json:"ideal_customer_profile"`
	PainPoints               pq.StringArray `db:"pain_points" json:"pain_points"`
	TargetAudience           string         `db:"target_audience" json:"target_audience"`
	CreatedAt                time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time      `db:"updated_at" json:"updated_at"`
}

type Competitor struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CompanyID   uuid.UUID `db:"company_id" json:"company_id"`
	Name        string    `db:"name" json:"name"`
	Website     string    `db:"website" json:"website"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// CompetitorSnapshot is a competitor together with the SEO fields of its
// newest stored analysis, if any.
type CompetitorSnapshot struct {
	Competitor
	DomainAuthority *int    `db:"domain_authority" json:"domain_authority,omitempty"`
	SEOStrength     *string `db:"seo_strength" json:"seo_strength,omitempty"`
}

// CompetitiveAnalysis is an immutable competitor SEO + narrative record.
type CompetitiveAnalysis struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	CompanyID       uuid.UUID      `db:"company_id" json:"company_id"`
	CompetitorID    uuid.UUID      `db:"competitor_id" json:"competitor_id"`
	CompetitorName  string         `db:"competitor_name" json:"competitor_name"`
	DomainAuthority int            `db:"domain_authority" json:"domain_authority"`
	PageAuthority   int            `db:"page_authority" json:"page_authority"`
	SpamScore       int            `db:"spam_score" json:"spam_score"`
	LinkingDomains  int            `db:"linking_domains" json:"linking_domains"`
	TotalLinks      int            `db:"total_links" json:"total_links"`
	SEOStrength     string         `db:"seo_strength" json:"seo_strength"`
	TopKeywords     pq.StringArray `db:"top_keywords" json:"top_keywords"`
	Summary         string         `db:"summary" json:"summary"`
	ThreatLevel     string         `db:"threat_level" json:"threat_level"`
	Insights        pq.StringArray `db:"insights" json:"insights"`
	Threats         pq.StringArray `db:"threats" json:"threats"`
	Opportunities   pq.StringArray `db:"opportunities" json:"opportunities"`
	Recommendations pq.StringArray `db:"recommendations" json:"recommendations"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// MarketPosition is the SWOT-like position object of a landscape analysis.
type MarketPosition struct {
	Overview      string   `json:"overview"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

func (m MarketPosition) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *MarketPosition) Scan(value interface{}) error {
	return scanJSON(value, m)
}

type LandscapeCompetitorInsight struct {
	ID             string   `json:"id"`
	CompetitorName string   `json:"competitor_name"`
	Positioning    string   `json:"positioning"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	ThreatLevel    string   `json:"threat_level"`
}

type LandscapeCompetitorInsights []LandscapeCompetitorInsight

func (l LandscapeCompetitorInsights) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]LandscapeCompetitorInsight(l))
}

func (l *LandscapeCompetitorInsights) Scan(value interface{}) error {
	return scanJSON(value, (*[]LandscapeCompetitorInsight)(l))
}

type LandscapeRecommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Impact      string `json:"impact"`
}

type LandscapeRecommendations []LandscapeRecommendation

func (l LandscapeRecommendations) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]LandscapeRecommendation(l))
}

func (l *LandscapeRecommendations) Scan(value interface{}) error {
	return scanJSON(value, (*[]LandscapeRecommendation)(l))
}

// LandscapeAnalysis is one persisted landscape snapshot. Reads return the newest.
type LandscapeAnalysis struct {
	ID                 uuid.UUID                   `db:"id" json:"id"`
	CompanyID          uuid.UUID                   `db:"company_id" json:"company_id"`
	Summary            string                      `db:"summary" json:"summary"`
	MarketPosition     MarketPosition              `db:"market_position" json:"market_position"`
	CompetitorInsights LandscapeCompetitorInsights `db:"competitor_insights" json:"competitor_insights"`
	Recommendations    LandscapeRecommendations    `db:"recommendations" json:"recommendations"`
	Opportunities      pq.StringArray              `db:"opportunities" json:"opportunities"`
	Implications       pq.StringArray              `db:"implications" json:"implications"`
	CreatedAt          time.Time                   `db:"created_at" json:"created_at"`
}

// PositioningRecommendation is a generated recommendation the user chose to keep.
type PositioningRecommendation struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	CompanyID        uuid.UUID      `db:"company_id" json:"company_id"`
	Category         string         `db:"category" json:"category"`
	Title            string         `db:"title" json:"title"`
	Description      string         `db:"description" json:"description"`
	KeyPoints        pq.StringArray `db:"key_points" json:"key_points"`
	MessagingStyle   string         `db:"messaging_style" json:"messaging_style"`
	ValueProposition string         `db:"value_proposition" json:"value_proposition"`
	Differentiators  pq.StringArray `db:"differentiators" json:"differentiators"`
	TargetSegments   pq.StringArray `db:"target_segments" json:"target_segments"`
	ConfidenceScore  float64        `db:"confidence_score" json:"confidence_score"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
}

type BlogIdeaStatus string

const (
	BlogIdeaStatusRejected  BlogIdeaStatus = "rejected"
	BlogIdeaStatusPublished BlogIdeaStatus = "published"
)

// BlogIdea is a generated idea the user rejected or published.
type BlogIdea struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	CompanyID       uuid.UUID      `db:"company_id" json:"company_id"`
	Title           string         `db:"title" json:"title"`
	Description     string         `db:"description" json:"description"`
	Keywords        pq.StringArray `db:"keywords" json:"keywords"`
	EstimatedLength string         `db:"estimated_length" json:"estimated_length"`
	Difficulty      string         `db:"difficulty" json:"difficulty"`
	TargetAudience  string         `db:"target_audience" json:"target_audience"`
	ContentPillars  pq.StringArray `db:"content_pillars" json:"content_pillars"`
	SEOScore        int            `db:"seo_score" json:"seo_score"`
	Rationale       string         `db:"rationale" json:"rationale"`
	Status          BlogIdeaStatus `db:"status" json:"status"`
	Reason          *string        `db:"reason" json:"reason,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusReview    ContentStatus = "review"
	ContentStatusPublished ContentStatus = "published"
)

type ContentItem struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	CompanyID   uuid.UUID      `db:"company_id" json:"company_id"`
	Title       string         `db:"title" json:"title"`
	Body        string         `db:"body" json:"body"`
	Type        string         `db:"type" json:"type"`
	Status      ContentStatus  `db:"status" json:"status"`
	Keywords    pq.StringArray `db:"keywords" json:"keywords"`
	Tone        string         `db:"tone" json:"tone"`
	WordCount   int            `db:"word_count" json:"word_count"`
	ScheduledAt *time.Time     `db:"scheduled_at" json:"scheduled_at,omitempty"`
	PublishedAt *time.Time     `db:"published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}
