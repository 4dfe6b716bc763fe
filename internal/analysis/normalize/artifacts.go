package normalize

import (
	"math"
	"strings"

	"marketing-server/internal/store"
)

// CompetitorNarrative is the generated half of a competitive analysis record.
type CompetitorNarrative struct {
	Summary         string   `json:"summary"`
	ThreatLevel     string   `json:"threat_level"`
	Insights        []string `json:"insights"`
	Threats         []string `json:"threats"`
	Opportunities   []string `json:"opportunities"`
	Recommendations []string `json:"recommendations"`
}

func Competitor(raw Raw) CompetitorNarrative {
	return CompetitorNarrative{
		Summary:         text(raw, FallbackText, "summary"),
		ThreatLevel:     enum(raw, levels, LevelMedium, "threat_level", "threatLevel"),
		Insights:        stringList(raw, "insights"),
		Threats:         stringList(raw, "threats"),
		Opportunities:   stringList(raw, "opportunities"),
		Recommendations: stringList(raw, "recommendations"),
	}
}

// Landscape is a landscape analysis ready to be persisted.
type Landscape struct {
	Summary            string                            `json:"summary"`
	MarketPosition     store.MarketPosition              `json:"market_position"`
	CompetitorInsights store.LandscapeCompetitorInsights `json:"competitor_insights"`
	Recommendations    store.LandscapeRecommendations    `json:"recommendations"`
	Opportunities      []string                          `json:"opportunities"`
	Implications       []string                          `json:"implications"`
}

func LandscapeAnalysis(raw Raw) Landscape {
	position := object(raw, "market_position", "marketPosition")

	insightObjs, insightIdx := objects(raw, "competitor_insights", "competitorInsights")
	insights := make(store.LandscapeCompetitorInsights, 0, len(insightObjs))
	for i, obj := range insightObjs {
		insights = append(insights, store.LandscapeCompetitorInsight{
			ID:             itemID(obj, "insight", insightIdx[i]),
			CompetitorName: text(obj, FallbackText, "competitor_name", "competitorName", "name"),
			Positioning:    text(obj, FallbackText, "positioning"),
			Strengths:      stringList(obj, "strengths"),
			Weaknesses:     stringList(obj, "weaknesses"),
			ThreatLevel:    enum(obj, levels, LevelMedium, "threat_level", "threatLevel"),
		})
	}

	recObjs, recIdx := objects(raw, "recommendations")
	recs := make(store.LandscapeRecommendations, 0, len(recObjs))
	for i, obj := range recObjs {
		recs = append(recs, store.LandscapeRecommendation{
			ID:          itemID(obj, "rec", recIdx[i]),
			Title:       text(obj, FallbackText, "title"),
			Description: text(obj, FallbackText, "description"),
			Priority:    enum(obj, levels, LevelMedium, "priority"),
			Impact:      enum(obj, levels, LevelMedium, "impact"),
		})
	}

	return Landscape{
		Summary: text(raw, FallbackText, "summary"),
		MarketPosition: store.MarketPosition{
			Overview:      text(position, FallbackText, "overview"),
			Strengths:     stringList(position, "strengths"),
			Weaknesses:    stringList(position, "weaknesses"),
			Opportunities: stringList(position, "opportunities"),
			Threats:       stringList(position, "threats"),
		},
		CompetitorInsights: insights,
		Recommendations:    recs,
		Opportunities:      stringList(raw, "opportunities"),
		Implications:       stringList(raw, "implications"),
	}
}

type CurrentPositioning struct {
	Overview       string   `json:"overview"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	MarketPosition string   `json:"market_position"`
}

// PositioningRecommendation is a generated recommendation. It is only stored
// when the user saves it.
type PositioningRecommendation struct {
	ID               string   `json:"id"`
	Category         string   `json:"category"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	KeyPoints        []string `json:"key_points"`
	MessagingStyle   string   `json:"messaging_style"`
	ValueProposition string   `json:"value_proposition"`
	Differentiators  []string `json:"differentiators"`
	TargetSegments   []string `json:"target_segments"`
	ConfidenceScore  float64  `json:"confidence_score"`
}

type PositioningAnalysis struct {
	CurrentPositioning CurrentPositioning          `json:"current_positioning"`
	Recommendations    []PositioningRecommendation `json:"recommendations"`
}

func Positioning(raw Raw) PositioningAnalysis {
	current := object(raw, "current_positioning", "currentPositioning")

	recObjs, recIdx := objects(raw, "recommendations")
	recs := make([]PositioningRecommendation, 0, len(recObjs))
	for i, obj := range recObjs {
		recs = append(recs, PositioningRecommendation{
			ID:               itemID(obj, "rec", recIdx[i]),
			Category:         text(obj, "General", "category"),
			Title:            text(obj, FallbackText, "title"),
			Description:      text(obj, FallbackText, "description"),
			KeyPoints:        stringList(obj, "key_points", "keyPoints"),
			MessagingStyle:   text(obj, FallbackText, "messaging_style", "messagingStyle"),
			ValueProposition: text(obj, FallbackText, "value_proposition", "valueProposition"),
			Differentiators:  stringList(obj, "differentiators"),
			TargetSegments:   stringList(obj, "target_segments", "targetSegments"),
			ConfidenceScore:  confidence(obj, "confidence_score", "confidenceScore", "confidence"),
		})
	}

	return PositioningAnalysis{
		CurrentPositioning: CurrentPositioning{
			Overview:       text(current, FallbackText, "overview"),
			Strengths:      stringList(current, "strengths"),
			Weaknesses:     stringList(current, "weaknesses"),
			MarketPosition: text(current, FallbackText, "market_position", "marketPosition"),
		},
		Recommendations: recs,
	}
}

type BlogIdea struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Keywords        []string `json:"keywords"`
	EstimatedLength string   `json:"estimated_length"`
	Difficulty      string   `json:"difficulty"`
	TargetAudience  string   `json:"target_audience"`
	ContentPillars  []string `json:"content_pillars"`
	SEOScore        int      `json:"seo_score"`
	Rationale       string   `json:"rationale"`
}

// BlogIdeas drops every idea without a usable title and keeps the rest.
func BlogIdeas(raw Raw) []BlogIdea {
	objs, idx := objects(raw, "ideas", "blog_ideas", "blogIdeas")
	ideas := make([]BlogIdea, 0, len(objs))
	for i, obj := range objs {
		title := text(obj, "", "title")
		if title == "" {
			continue
		}
		ideas = append(ideas, BlogIdea{
			ID:              itemID(obj, "idea", idx[i]),
			Title:           title,
			Description:     text(obj, FallbackText, "description"),
			Keywords:        stringList(obj, "keywords"),
			EstimatedLength: text(obj, "1000-1500 words", "estimated_length", "estimatedLength"),
			Difficulty:      enum(obj, levels, LevelMedium, "difficulty"),
			TargetAudience:  text(obj, FallbackText, "target_audience", "targetAudience"),
			ContentPillars:  stringList(obj, "content_pillars", "contentPillars"),
			SEOScore:        score(obj, "seo_score", "seoScore"),
			Rationale:       text(obj, FallbackText, "rationale"),
		})
	}
	return ideas
}

type Article struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	MetaDescription string   `json:"meta_description"`
	Keywords        []string `json:"keywords"`
	WordCount       int      `json:"word_count"`
	ReadingMinutes  int      `json:"reading_minutes"`
}

const wordsPerMinute = 200

// FullArticle keeps the reported word count only when it is a positive number.
// Otherwise it is recomputed from the content.
func FullArticle(raw Raw, fallbackTitle string) Article {
	content := text(raw, "", "content", "body")
	words := count(raw, "word_count", "wordCount")
	if words <= 0 {
		words = WordCount(content)
	}
	return Article{
		Title:           text(raw, fallbackTitle, "title"),
		Content:         content,
		MetaDescription: text(raw, "", "meta_description", "metaDescription"),
		Keywords:        stringList(raw, "keywords"),
		WordCount:       words,
		ReadingMinutes:  int(math.Ceil(float64(words) / wordsPerMinute)),
	}
}

// WordCount counts whitespace separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
