package insights

import (
	"fmt"
	"strings"

	"marketing-server/internal/store"
)

const systemPrompt = `You are a senior B2B marketing strategist and competitive intelligence analyst.
Always answer with a single valid JSON object that follows the requested schema exactly.
Do not wrap the JSON in markdown and do not add commentary.`

func writeCompany(sb *strings.Builder, company store.Company) {
	sb.WriteString("Company profile:\n")
	fmt.Fprintf(sb, "- Name: %s\n", company.Name)
	writeOptional(sb, "Industry", company.Industry)
	writeOptional(sb, "Size", company.Size)
	writeOptional(sb, "Website", company.Website)
	writeOptional(sb, "Description", company.Description)
	writeOptional(sb, "Unique selling proposition", company.UniqueSellingProposition)
	writeList(sb, "Products", company.Products)
	writeList(sb, "Services", company.Services)
	writeOptional(sb, "Ideal customer profile", company.IdealCustomerProfile)
	writeList(sb, "Customer pain points", company.PainPoints)
	writeOptional(sb, "Target audience", company.TargetAudience)
	sb.WriteString("\n")
}

func writeOptional(sb *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(sb, "- %s: %s\n", label, value)
}

func writeList(sb *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(sb, "- %s: %s\n", label, strings.Join(values, ", "))
}

func competitorPrompt(company store.Company, req CompetitorRequest) string {
	var sb strings.Builder
	writeCompany(&sb, company)

	sb.WriteString("Competitor:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", req.Name)
	writeOptional(&sb, "Website", req.Website)
	writeOptional(&sb, "Description", req.Description)
	fmt.Fprintf(&sb, "- Domain authority: %d\n", req.DomainAuthority)
	fmt.Fprintf(&sb, "- Page authority: %d\n", req.PageAuthority)
	fmt.Fprintf(&sb, "- Spam score: %d\n", req.SpamScore)
	fmt.Fprintf(&sb, "- Linking root domains: %d\n", req.LinkingDomains)
	fmt.Fprintf(&sb, "- Total links: %d\n", req.TotalLinks)
	fmt.Fprintf(&sb, "- SEO strength: %s\n", req.SEOStrength)
	writeList(&sb, "Top keywords", req.TopKeywords)
	if req.PageText != "" {
		fmt.Fprintf(&sb, "\nCompetitor homepage text:\n%s\n", req.PageText)
	}

	sb.WriteString(`
Analyze this competitor relative to the company. Respond with JSON:
{
  "summary": "two or three sentence assessment",
  "threat_level": "Low | Medium | High",
  "insights": ["key observation"],
  "threats": ["how this competitor endangers the company"],
  "opportunities": ["gap the company can exploit"],
  "recommendations": ["concrete next step"]
}`)
	return sb.String()
}

func landscapePrompt(company store.Company, competitors []store.CompetitorSnapshot) string {
	var sb strings.Builder
	writeCompany(&sb, company)

	sb.WriteString("Tracked competitors:\n")
	for i, c := range competitors {
		fmt.Fprintf(&sb, "%d. %s", i+1, c.Name)
		if c.Website != "" {
			fmt.Fprintf(&sb, " (%s)", c.Website)
		}
		if c.DomainAuthority != nil {
			fmt.Fprintf(&sb, ", domain authority %d", *c.DomainAuthority)
		}
		if c.SEOStrength != nil {
			fmt.Fprintf(&sb, ", SEO strength %s", *c.SEOStrength)
		}
		if c.Description != "" {
			fmt.Fprintf(&sb, ": %s", c.Description)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`
Compare the company against all competitors at once. Respond with JSON:
{
  "summary": "overview of the competitive landscape",
  "market_position": {
    "overview": "where the company stands",
    "strengths": [""], "weaknesses": [""], "opportunities": [""], "threats": [""]
  },
  "competitor_insights": [
    {"id": "", "competitor_name": "", "positioning": "", "strengths": [""], "weaknesses": [""], "threat_level": "Low | Medium | High"}
  ],
  "recommendations": [
    {"id": "", "title": "", "description": "", "priority": "Low | Medium | High", "impact": "Low | Medium | High"}
  ],
  "opportunities": ["market opportunity"],
  "implications": ["strategic implication"]
}`)
	return sb.String()
}

func positioningPrompt(company store.Company) string {
	var sb strings.Builder
	writeCompany(&sb, company)

	sb.WriteString(`Evaluate the company's current market positioning and recommend how to sharpen it. Respond with JSON:
{
  "current_positioning": {
    "overview": "", "strengths": [""], "weaknesses": [""], "market_position": ""
  },
  "recommendations": [
    {
      "id": "", "category": "", "title": "", "description": "",
      "key_points": [""], "messaging_style": "", "value_proposition": "",
      "differentiators": [""], "target_segments": [""], "confidence_score": 0.0
    }
  ]
}
confidence_score is a number between 0 and 1.`)
	return sb.String()
}

func blogIdeasPrompt(req BlogIdeasRequest) string {
	var sb strings.Builder
	writeCompany(&sb, req.Company)

	if len(req.Competitors) > 0 {
		names := make([]string, 0, len(req.Competitors))
		for _, c := range req.Competitors {
			names = append(names, c.Name)
		}
		fmt.Fprintf(&sb, "Competitors: %s\n\n", strings.Join(names, ", "))
	}

	writeRecommendations(&sb, req.Recommendations)

	if len(req.Rejected) > 0 {
		sb.WriteString("The user rejected these ideas. Do not suggest anything similar in topic or angle:\n")
		for _, idea := range req.Rejected {
			fmt.Fprintf(&sb, "- %s", idea.Title)
			if idea.Reason != nil && *idea.Reason != "" {
				fmt.Fprintf(&sb, " (reason: %s)", *idea.Reason)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	count := req.Count
	if count <= 0 {
		count = 5
	}
	fmt.Fprintf(&sb, `Suggest %d blog post ideas that support the company's positioning and outrank its competitors. Respond with JSON:
{
  "ideas": [
    {
      "id": "", "title": "", "description": "", "keywords": [""],
      "estimated_length": "e.g. 1500 words", "difficulty": "Low | Medium | High",
      "target_audience": "", "content_pillars": [""], "seo_score": 0, "rationale": ""
    }
  ]
}
seo_score is an integer between 0 and 100.`, count)
	return sb.String()
}

func articlePrompt(req ArticleRequest) string {
	var sb strings.Builder
	writeCompany(&sb, req.Company)

	if len(req.Competitors) > 0 {
		names := make([]string, 0, len(req.Competitors))
		for _, c := range req.Competitors {
			names = append(names, c.Name)
		}
		fmt.Fprintf(&sb, "Competitors to differentiate from: %s\n\n", strings.Join(names, ", "))
	}

	writeRecommendations(&sb, req.Recommendations)

	sb.WriteString("Blog idea:\n")
	fmt.Fprintf(&sb, "- Title: %s\n", req.Idea.Title)
	writeOptional(&sb, "Description", req.Idea.Description)
	writeList(&sb, "Keywords", req.Idea.Keywords)
	writeOptional(&sb, "Target audience", req.Idea.TargetAudience)
	writeOptional(&sb, "Length", req.Idea.EstimatedLength)
	writeList(&sb, "Content pillars", req.Idea.ContentPillars)

	sb.WriteString(`
Write the complete article in Markdown. Respond with JSON:
{
  "title": "",
  "content": "full markdown body",
  "meta_description": "under 160 characters",
  "keywords": [""],
  "word_count": 0
}`)
	return sb.String()
}

func writeRecommendations(sb *strings.Builder, recs []store.PositioningRecommendation) {
	if len(recs) == 0 {
		return
	}
	sb.WriteString("Positioning the company has committed to:\n")
	for _, r := range recs {
		fmt.Fprintf(sb, "- %s", r.Title)
		if r.ValueProposition != "" {
			fmt.Fprintf(sb, ": %s", r.ValueProposition)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}
