// Package jobfit scores a pasted job description against the resume record
// and renders a structured fit report. The matching is a deliberately simple
// deterministic keyword scan over a fixed vocabulary.
package jobfit

import (
	"math"
	"strings"

	"github.com/aps270195/cv-assistant/internal/cv"
)

// vocabulary is the fixed list of domain and tech terms extracted from job
// descriptions. Extraction preserves this order, not the order of the input.
var vocabulary = []string{
	"api", "rest", "kafka", "microservices", "sql", "snowflake", "power bi",
	"jira", "confluence", "agile", "scrum", "okr", "product management",
	"cards", "payments", "banking", "fintech", "regtech", "kyc", "aml",
	"sepa", "iso 20022", "gdpr", "psd2", "swift", "bafin", "3ds", "tokenization",
	"authorization", "settlement", "compliance", "regulatory", "digital banking",
	"b2b", "b2c", "payment systems", "fraud detection", "real-time", "event queues",
	"cross-border", "integration", "digital wallet", "vendor management",
	"product owner", "product manager", "kpi", "sla", "roadmap", "discovery",
	"delivery", "optimization", "stakeholder", "leadership", "cross-functional",
	"technical", "architecture", "scalability", "performance", "security",
}

// relatedTerms suppresses a gap when the resume covers a close substitute of
// a missing keyword.
var relatedTerms = map[string][]string{
	"python":           {"java", "javascript", "programming"},
	"machine learning": {"ai", "data analytics", "behavior analytics"},
	"cloud":            {"aws", "azure", "gcp", "infrastructure"},
	"docker":           {"containerization", "microservices"},
	"kubernetes":       {"orchestration", "microservices"},
}

// experienceBuckets are independent topical rules: every bucket whose trigger
// appears in the job description contributes one canned statement.
var experienceBuckets = []struct {
	triggers  []string
	statement string
}{
	{
		triggers:  []string{"card", "payment"},
		statement: "10+ years in Cards & Payments across Barclays, Auto1, and Qonto",
	},
	{
		triggers:  []string{"banking", "fintech", "financial"},
		statement: "Extensive digital banking experience across European markets (UK, Germany, France, Spain)",
	},
	{
		triggers:  []string{"product manager", "product owner", "product lead"},
		statement: "Product Manager/Leader with end-to-end ownership of digital wallet and card platforms",
	},
	{
		triggers:  []string{"regtech", "compliance", "regulatory", "kyc", "aml"},
		statement: "Deep RegTech expertise: KYC, AML, GDPR, PSD2, BaFin compliance",
	},
	{
		triggers:  []string{"cross-border", "international"},
		statement: "Led cross-border integration of card systems between UK & Germany",
	},
	{
		triggers:  []string{"technical", "architect", "system"},
		statement: "Technical leadership in microservices, Kafka, APIs, and scalable architecture",
	},
}

const evidenceLimit = 100

// SkillMatch is the result of checking one extracted keyword against the
// resume.
type SkillMatch struct {
	Keyword  string
	Found    bool
	Evidence string
}

func normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}

// ExtractKeywords returns every vocabulary term contained in the job
// description, in vocabulary order. Containment is plain substring matching.
func ExtractKeywords(jobDescription string) []string {
	normalized := normalize(jobDescription)

	found := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		if strings.Contains(normalized, term) {
			found = append(found, term)
		}
	}
	return found
}

// matchSkill checks a keyword against the key skills (substring containment
// in either direction) and then the experience bullets, in record order. The
// first matching bullet provides the evidence, truncated to its first 100
// characters.
func matchSkill(keyword string, record *cv.Record) SkillMatch {
	normalized := normalize(keyword)

	for _, skill := range record.KeySkills {
		lowered := normalize(skill)
		if strings.Contains(lowered, normalized) || strings.Contains(normalized, lowered) {
			return SkillMatch{Keyword: keyword, Found: true, Evidence: skill}
		}
	}

	for _, exp := range record.Experience {
		for _, bullet := range exp.Bullets {
			if strings.Contains(normalize(bullet), normalized) {
				return SkillMatch{
					Keyword:  keyword,
					Found:    true,
					Evidence: exp.Company + ": " + truncate(bullet, evidenceLimit) + "...",
				}
			}
		}
	}

	return SkillMatch{Keyword: keyword}
}

// truncate cuts the string after limit characters without caring about word
// boundaries.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// relevantExperience collects one canned statement per triggered topical
// bucket. Buckets are independent: a description can trigger all of them.
func relevantExperience(jobDescription string) []string {
	normalized := normalize(jobDescription)

	statements := make([]string, 0, len(experienceBuckets))
	for _, bucket := range experienceBuckets {
		for _, trigger := range bucket.triggers {
			if strings.Contains(normalized, trigger) {
				statements = append(statements, bucket.statement)
				break
			}
		}
	}
	return statements
}

// identifyGaps returns the extracted keywords that appear nowhere in the
// resume text, unless a related term covers them.
func identifyGaps(keywords []string, record *cv.Record) []string {
	var parts []string
	parts = append(parts, record.Summary, record.SkillsText())
	for _, exp := range record.Experience {
		parts = append(parts, strings.Join(exp.Bullets, " "))
	}
	cvText := normalize(strings.Join(parts, " "))

	gaps := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if strings.Contains(cvText, keyword) {
			continue
		}

		covered := false
		for _, term := range relatedTerms[keyword] {
			if strings.Contains(cvText, term) {
				covered = true
				break
			}
		}
		if !covered {
			gaps = append(gaps, keyword)
		}
	}
	return gaps
}

// fitScore computes the rounded match percentage. No extracted keywords means
// a score of zero, never a division error.
func fitScore(matches []SkillMatch) int {
	if len(matches) == 0 {
		return 0
	}

	found := 0
	for _, m := range matches {
		if m.Found {
			found++
		}
	}
	return int(math.Round(float64(found) / float64(len(matches)) * 100))
}

// Analyze produces the full job fit report for the given job description. It
// is pure and deterministic; an empty description yields a 0% report, not an
// error.
func Analyze(jobDescription string, record *cv.Record) string {
	keywords := ExtractKeywords(jobDescription)

	matches := make([]SkillMatch, 0, len(keywords))
	for _, keyword := range keywords {
		matches = append(matches, matchSkill(keyword, record))
	}

	return renderReport(reportData{
		record:     record,
		fit:        fitScore(matches),
		matches:    matches,
		experience: relevantExperience(jobDescription),
		gaps:       identifyGaps(keywords, record),
	})
}
