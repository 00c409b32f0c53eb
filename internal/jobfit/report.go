package jobfit

import (
	"fmt"
	"strings"

	"github.com/aps270195/cv-assistant/internal/cv"
)

// Score thresholds for the banner under the overall score and for the final
// recommendation block. The texts keyed by them are fixed and reproduced
// bit-for-bit in golden tests.
const (
	excellentThreshold = 80
	strongThreshold    = 60
	moderateThreshold  = 40

	highlyRecommendedThreshold = 70
	recommendedThreshold       = 50

	maxRenderedGaps = 5
)

type reportData struct {
	record     *cv.Record
	fit        int
	matches    []SkillMatch
	experience []string
	gaps       []string
}

// renderReport assembles the report sections in their fixed order: title,
// score and banner, matched qualifications, relevant experience, key
// strengths, current position, gaps, recommendation, contact.
func renderReport(data reportData) string {
	var b strings.Builder
	record := data.record

	fmt.Fprintf(&b, "# Job Fit Analysis for %s\n\n", record.Name)
	fmt.Fprintf(&b, "## Overall Fit Score: %d%%\n\n", data.fit)
	b.WriteString(scoreBanner(data.fit))

	writeMatched(&b, data.matches)
	writeRelevantExperience(&b, data.experience)
	writeKeyStrengths(&b, record)
	writeCurrentPosition(&b, record)
	writeGaps(&b, data.gaps)
	b.WriteString(recommendation(data.fit))
	writeContact(&b, record)

	return b.String()
}

func scoreBanner(fit int) string {
	switch {
	case fit >= excellentThreshold:
		return "✅ **Excellent Match** - Aditya is an ideal candidate for this role.\n\n"
	case fit >= strongThreshold:
		return "✅ **Strong Match** - Aditya is a very good fit for this role with minor gaps.\n\n"
	case fit >= moderateThreshold:
		return "⚠️ **Moderate Match** - Aditya has relevant experience but with some notable gaps.\n\n"
	default:
		return "⚠️ **Limited Match** - This role may require skills outside Aditya's core expertise.\n\n"
	}
}

func writeMatched(b *strings.Builder, matches []SkillMatch) {
	found := make([]SkillMatch, 0, len(matches))
	for _, m := range matches {
		if m.Found {
			found = append(found, m)
		}
	}
	if len(found) == 0 {
		return
	}

	b.WriteString("## ✅ Matched Qualifications\n\n")
	b.WriteString("**Skills & Technologies:**\n")
	for _, m := range found {
		b.WriteString("• " + strings.ToUpper(m.Keyword))
		if m.Evidence != "" {
			b.WriteString(" - " + m.Evidence)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeRelevantExperience(b *strings.Builder, statements []string) {
	if len(statements) == 0 {
		return
	}

	b.WriteString("**Relevant Experience:**\n")
	for _, s := range statements {
		b.WriteString("• " + s + "\n")
	}
	b.WriteString("\n")
}

func writeKeyStrengths(b *strings.Builder, record *cv.Record) {
	b.WriteString("## 🌟 Key Strengths\n\n")
	for i, kvp := range record.KeyValueProposition {
		if i == 3 {
			break
		}
		fmt.Fprintf(b, "%d. %s\n", i+1, kvp)
	}
	b.WriteString("\n")
}

func writeCurrentPosition(b *strings.Builder, record *cv.Record) {
	current := record.CurrentPosition()

	b.WriteString("## 💼 Current Position\n\n")
	fmt.Fprintf(b, "**%s** at %s (%s)\n", current.Role, current.Company, current.Location)
	fmt.Fprintf(b, "%s - %s\n\n", current.Start, current.End)
	b.WriteString("Key responsibilities:\n")
	for i, bullet := range current.Bullets {
		if i == 3 {
			break
		}
		b.WriteString("• " + bullet + "\n")
	}
	b.WriteString("\n")
}

func writeGaps(b *strings.Builder, gaps []string) {
	// The gaps section renders only for a small gap list: an empty list has
	// nothing to say, a huge one means the scan is off-domain anyway.
	if len(gaps) == 0 || len(gaps) > maxRenderedGaps {
		return
	}

	b.WriteString("## ⚠️ Potential Skill Gaps\n\n")
	b.WriteString("The following skills mentioned in the job description were not explicitly found in Aditya's CV:\n")
	for _, gap := range gaps {
		b.WriteString("• " + gap + "\n")
	}
	b.WriteString("\n*Note: Aditya's strong technical foundation and proven ability to quickly learn new technologies may compensate for these gaps.*\n\n")
}

func recommendation(fit int) string {
	header := "## 📋 Recommendation\n\n"
	switch {
	case fit >= highlyRecommendedThreshold:
		return header +
			"**HIGHLY RECOMMENDED** - Aditya's extensive experience in fintech, cards & payments, and product " +
			"leadership makes him an excellent candidate. His proven track record of delivering high-impact solutions " +
			"across European markets, combined with deep RegTech knowledge and technical expertise, aligns well with " +
			"the role requirements.\n\n" +
			"**Next Steps:**\n" +
			"• Schedule interview to discuss specific project requirements\n" +
			"• Review his cross-border integration and compliance work in detail\n" +
			"• Discuss his product leadership approach and stakeholder management experience\n"
	case fit >= recommendedThreshold:
		return header +
			"**RECOMMENDED** - Aditya has strong relevant experience and could be a good fit for this role. While " +
			"there may be some skill gaps, his proven ability to learn quickly and deliver results across complex " +
			"banking projects makes him worth considering.\n\n" +
			"**Next Steps:**\n" +
			"• Discuss specific technical requirements and skill gaps\n" +
			"• Assess cultural fit and team dynamics\n" +
			"• Review his learning agility and adaptability\n"
	default:
		return header +
			"**CONSIDER WITH CAUTION** - While Aditya has solid experience in fintech and product management, this " +
			"particular role may require skills significantly outside his current expertise. Consider whether " +
			"training/onboarding can bridge the gaps.\n\n"
	}
}

func writeContact(b *strings.Builder, record *cv.Record) {
	b.WriteString("## 📞 Contact Information\n\n")
	fmt.Fprintf(b, "• **Email:** %s\n", record.Contact.Email)
	fmt.Fprintf(b, "• **Phone:** %s\n", record.Contact.Phone)
	fmt.Fprintf(b, "• **Location:** %s\n", record.Contact.Address)
}
