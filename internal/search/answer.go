package search

import (
	"fmt"
	"strings"

	"github.com/aps270195/cv-assistant/internal/cv"
)

// Fixed replies returned without consulting the resume record.
const (
	FallbackNoTokens = "I can only answer based on Aditya's CV. Please ask a more specific question about his experience, " +
		"skills, education, or background in cards, payments, or RegTech."
	FallbackNoMatch = "I can only answer based on Aditya's CV. I couldn't find anything directly related to your question. " +
		"Try asking about his roles, skills, education, or experience in cards, payments, or RegTech."
	GreetingReply = "Hi! I'm Aditya's AI CV assistant. What would you like to know about Aditya? You can ask about his " +
		"experience in cards & payments, RegTech, AI projects, skills, or education."
)

var greetings = []string{"hi", "hello", "hey", "greetings"}

// Answer answers a free-text question from the resume record. It is total:
// any input produces a string, degenerate input one of the fixed fallbacks.
func Answer(query string, record *cv.Record) string {
	normalized := normalize(query)
	tokens := Tokenize(query)

	if len(tokens) == 0 {
		return FallbackNoTokens
	}

	if isGreeting(normalized) {
		return GreetingReply
	}

	sections := scoreSections(tokens, record)

	// The no-match fallback fires before any intent rule runs. A query that
	// names an intent keyword but scores nothing still gets this fallback.
	if len(sections) == 0 {
		return FallbackNoMatch
	}

	for _, rule := range intentRules {
		if !containsAny(normalized, rule.keywords) {
			continue
		}
		if len(rule.unless) > 0 && containsAny(normalized, rule.unless) {
			continue
		}
		if answer, ok := rule.handle(sections, record); ok {
			return answer
		}
	}

	return renderTopSection(sections[0])
}

func isGreeting(normalized string) bool {
	return containsAny(normalized, greetings) && len(strings.Split(normalized, " ")) <= 3
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// intentRule pairs a substring predicate with an answer builder. A rule is
// skipped when the query contains any of its unless phrases, and a handler
// may decline by returning false; either way the next rule is tried.
type intentRule struct {
	name     string
	keywords []string
	unless   []string
	handle   func(sections []ScoredSection, record *cv.Record) (string, bool)
}

// companyMentions lets broader rules step aside so a question about one
// employer reaches the company-specific rules at the bottom of the table.
var companyMentions = []string{"barclays", "auto1", "auto 1", "qonto"}

// intentRules is evaluated top to bottom, first match wins. The order is
// load-bearing: a query mentioning both "skills" and "barclays" resolves to
// the skills rule because it comes first.
var intentRules = []intentRule{
	{
		name: "experience",
		keywords: []string{
			"experience", "work", "job", "role",
			"product", "career", "position", "companies", "worked",
		},
		handle: answerExperience,
	},
	{
		name: "skills",
		keywords: []string{
			"skill", "tech", "tool", "know", "can", "regulation", "api", "kafka",
			"payment", "expertise", "proficient", "abilities", "regtech", "card",
			"sepa", "kyc", "aml", "compliance", "microservices", "architecture",
		},
		handle: answerSkills,
	},
	{
		name: "education",
		keywords: []string{
			"education", "degree", "university", "study", "studied", "school",
			"master", "bachelor", "academic", "polytechnique", "delhi",
		},
		handle: answerEducation,
	},
	{
		name:     "contact",
		keywords: []string{"contact", "email", "phone", "reach", "address"},
		handle:   answerContact,
	},
	{
		name:     "location",
		keywords: []string{"where", "location", "based", "live"},
		handle:   answerLocation,
	},
	{
		name:     "ai_pivot",
		keywords: []string{"ai", "artificial intelligence", "emerging", "pivot", "transition"},
		handle:   answerAIPivot,
	},
	{
		name:     "value_proposition",
		keywords: []string{"strength", "value", "proposition", "what makes", "why hire", "unique"},
		handle:   answerValueProposition,
	},
	{
		name:     "summary",
		keywords: []string{"who", "about", "summary", "background", "tell me", "overview"},
		unless:   companyMentions,
		handle:   answerSummary,
	},
	{
		name:     "banking",
		keywords: []string{"fintech", "banking", "financial"},
		handle:   answerBanking,
	},
	{
		name:     "product_management",
		keywords: []string{"product manager", "product owner", "agile", "scrum", "okr"},
		handle:   answerProductManagement,
	},
	{
		name:     "company_barclays",
		keywords: []string{"barclays"},
		handle:   answerCompany("Barclays Bank", companyBarclaysTemplate),
	},
	{
		name:     "company_auto1",
		keywords: []string{"auto1", "auto 1"},
		handle:   answerCompany("Auto 1", companyAuto1Template),
	},
	{
		name:     "company_qonto",
		keywords: []string{"qonto"},
		handle:   answerCompany("Qonto", companyQontoTemplate),
	},
}

func answerExperience(sections []ScoredSection, _ *cv.Record) (string, bool) {
	expSections := make([]ScoredSection, 0, len(sections))
	for _, s := range sections {
		if strings.HasPrefix(s.ID, sectionExperiencePrefix) {
			expSections = append(expSections, s)
		}
	}
	if len(expSections) == 0 {
		return "", false
	}

	var b strings.Builder
	b.WriteString("Aditya has 10+ years of experience delivering high-impact technology products across fintech and banking in Europe. Here are his key roles:\n\n")
	for i, s := range expSections {
		if i == 3 {
			break
		}
		b.WriteString(s.Content + "\n\n")
	}
	return strings.TrimSpace(b.String()), true
}

func answerSkills(_ []ScoredSection, record *cv.Record) (string, bool) {
	// Skill queries always get the full skills list, regardless of which
	// tokens matched.
	return "Aditya has extensive technical and domain expertise across multiple areas:\n\n• " + record.SkillsBullets(), true
}

func answerEducation(_ []ScoredSection, record *cv.Record) (string, bool) {
	var b strings.Builder
	b.WriteString("Aditya has a strong educational background with degrees from prestigious institutions:\n\n")
	for _, edu := range record.Education {
		b.WriteString(fmt.Sprintf("**%s**\n%s, %s (%s)\n\n", edu.Degree, edu.Institution, edu.Location, edu.Years))
	}
	return strings.TrimSpace(b.String()), true
}

func answerContact(_ []ScoredSection, record *cv.Record) (string, bool) {
	return fmt.Sprintf("You can reach Aditya at:\n\n• Email: %s\n• Phone: %s\n• Location: %s",
		record.Contact.Email, record.Contact.Phone, record.Contact.Address), true
}

func answerLocation(_ []ScoredSection, record *cv.Record) (string, bool) {
	return fmt.Sprintf("Aditya is currently based in %s. He has worked across multiple European cities including "+
		"Hamburg (Barclays), Berlin (Auto1), and Paris (Qonto, Ecole Polytechnique).", record.Contact.Address), true
}

func answerAIPivot(_ []ScoredSection, record *cv.Record) (string, bool) {
	capabilities := make([]string, 0, 3)
	for _, idx := range []int{0, 2, 3} {
		if idx < len(record.KeyValueProposition) {
			capabilities = append(capabilities, "• "+record.KeyValueProposition[idx])
		}
	}

	return "Aditya is pivoting into AI-driven project leadership, bringing his 10+ years of fintech experience to " +
		"emerging technologies.\n\n**Key AI & Tech Capabilities:**\n" + strings.Join(capabilities, "\n") +
		"\n\nHe's seeking to apply his strategic thinking, cross-functional coordination, and hands-on approach to " +
		"fast-paced, high-stakes initiatives in AI and emerging technologies.", true
}

func answerValueProposition(_ []ScoredSection, record *cv.Record) (string, bool) {
	return "Aditya's key value propositions:\n\n• " + strings.Join(record.KeyValueProposition, "\n• "), true
}

func answerSummary(_ []ScoredSection, record *cv.Record) (string, bool) {
	top := record.KeyValueProposition
	if len(top) > 3 {
		top = top[:3]
	}

	return fmt.Sprintf("%s\n\n**Headline:** %s\n\n**Key Strengths:**\n• %s",
		record.Summary, record.Headline, strings.Join(top, "\n• ")), true
}

func answerBanking(_ []ScoredSection, record *cv.Record) (string, bool) {
	entries := make([]string, 0, len(record.Experience))
	for _, exp := range record.Experience {
		entries = append(entries, fmt.Sprintf("**%s** (%s)\n%s, %s - %s",
			exp.Company, exp.Location, exp.Role, exp.Start, exp.End))
	}

	return "Aditya has 10+ years of specialized experience in fintech and digital banking:\n\n" +
		strings.Join(entries, "\n\n") +
		"\n\nHis work spans cards & payments, RegTech compliance, cross-border banking integration, and digital " +
		"wallet solutions across Europe.", true
}

func answerProductManagement(_ []ScoredSection, _ *cv.Record) (string, bool) {
	return "Aditya is an accomplished Product Leader with expertise in:\n\n" +
		"• End-to-End Product Ownership: From discovery and vision to KPIs and delivery across B2B and B2C environments\n" +
		"• Product & Agile: OKRs, Agile/Scrum, Discovery → Delivery → Optimization\n" +
		"• Cross-Functional Leadership: Bridge between tech, business, legal, and compliance teams\n\n" +
		"His product management experience includes leading card platforms, digital wallets, and payment systems at " +
		"Barclays, Auto1, and Qonto.", true
}

const (
	companyBarclaysTemplate = "At Barclays Bank in Hamburg, Germany, Aditya currently serves as %s (%s - %s).\n\n**Key Responsibilities:**\n%s"
	companyAuto1Template    = "At Auto1 in Berlin, Aditya worked as %s from %s to %s.\n\n**Key Achievements:**\n%s"
	companyQontoTemplate    = "At Qonto in Paris, Aditya was a %s from %s to %s.\n\n**Key Achievements:**\n%s"
)

func answerCompany(company, template string) func([]ScoredSection, *cv.Record) (string, bool) {
	return func(_ []ScoredSection, record *cv.Record) (string, bool) {
		exp := record.FindExperience(company)
		if exp == nil {
			return "", false
		}

		bullets := make([]string, 0, len(exp.Bullets))
		for _, b := range exp.Bullets {
			bullets = append(bullets, "• "+b)
		}

		return fmt.Sprintf(template, exp.Role, exp.Start, exp.End, strings.Join(bullets, "\n")), true
	}
}

// renderTopSection is the generic fallback when no intent rule produced an
// answer: render the best-scoring section with a short context prefix.
func renderTopSection(top ScoredSection) string {
	switch {
	case strings.HasPrefix(top.ID, sectionExperiencePrefix):
		return "Based on Aditya's experience:\n\n" + top.Content
	case top.ID == SectionSkills:
		return "Aditya's relevant skills include:\n\n• " + top.Content
	case strings.HasPrefix(top.ID, sectionEducationPrefix):
		return "Regarding Aditya's education:\n\n" + top.Content
	default:
		return top.Content
	}
}
