package normalize

import "marketing-server/internal/clients/moz"

const (
	StrengthUnknown    = "Unknown"
	StrengthWeak       = "Weak"
	StrengthMedium     = "Medium"
	StrengthStrong     = "Strong"
	StrengthVeryStrong = "Very Strong"
)

// SEOStrength maps a domain authority to its tier. Every call site uses this.
func SEOStrength(domainAuthority int) string {
	switch {
	case domainAuthority >= 70:
		return StrengthVeryStrong
	case domainAuthority >= 50:
		return StrengthStrong
	case domainAuthority >= 30:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}

// SEOMetrics are provider metrics after clamping, with the derived tier.
type SEOMetrics struct {
	DomainAuthority int      `json:"domain_authority"`
	PageAuthority   int      `json:"page_authority"`
	SpamScore       int      `json:"spam_score"`
	LinkingDomains  int      `json:"linking_domains"`
	TotalLinks      int      `json:"total_links"`
	SEOStrength     string   `json:"seo_strength"`
	TopKeywords     []string `json:"top_keywords"`
}

// Metrics clamps provider values and derives the strength tier.
func Metrics(m moz.Metrics) SEOMetrics {
	da := clampInt(m.DomainAuthority, 0, 100)
	keywords := make([]string, 0, len(m.TopKeywords))
	for _, k := range m.TopKeywords {
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return SEOMetrics{
		DomainAuthority: da,
		PageAuthority:   clampInt(m.PageAuthority, 0, 100),
		SpamScore:       clampInt(m.SpamScore, 0, 100),
		LinkingDomains:  max(m.LinkingDomains, 0),
		TotalLinks:      max(m.TotalLinks, 0),
		SEOStrength:     SEOStrength(da),
		TopKeywords:     keywords,
	}
}

// DegradedMetrics stands in for a failed provider call.
func DegradedMetrics() SEOMetrics {
	return SEOMetrics{
		SEOStrength: StrengthUnknown,
		TopKeywords: []string{},
	}
}
