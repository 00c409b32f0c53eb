package search

import (
	"fmt"
	"sort"

	"github.com/aps270195/cv-assistant/internal/cv"
)

// Section identifiers for the non-repeated resume parts. Repeated parts use
// prefixed ids such as experience_<company> and education_<institution>.
const (
	SectionSummary  = "summary"
	SectionHeadline = "headline"
	SectionSkills   = "skills"

	sectionExperiencePrefix = "experience_"
	sectionEducationPrefix  = "education_"
	sectionValuePropPrefix  = "value_proposition_"
)

// ScoredSection is a resume section that matched at least one query token.
// Sections live only for the duration of a single query.
type ScoredSection struct {
	ID      string
	Content string
	Score   int
}

// scoreSections scores every addressable resume section against the token
// set, keeps only those with a positive score, and sorts them by score
// descending. Each section is scored with its title prepended, so a query
// like "skills" or "education" lands on the right section even when the word
// never appears in the section body. The sort is explicitly stable: ties keep
// the enumeration order (summary, headline, value propositions, experience,
// skills, education), which downstream rendering relies on when it picks the
// top section.
func scoreSections(tokens []string, record *cv.Record) []ScoredSection {
	sections := make([]ScoredSection, 0, 8)

	push := func(id, content string, score int) {
		if score > 0 {
			sections = append(sections, ScoredSection{ID: id, Content: content, Score: score})
		}
	}

	push(SectionSummary, record.Summary, Score("Summary "+record.Summary, tokens))
	push(SectionHeadline, record.Headline, Score("Headline "+record.Headline, tokens))

	for i, kvp := range record.KeyValueProposition {
		push(fmt.Sprintf("%s%d", sectionValuePropPrefix, i), kvp, Score("Key Value Proposition "+kvp, tokens))
	}

	for i := range record.Experience {
		exp := &record.Experience[i]
		push(sectionExperiencePrefix+exp.Company, exp.Format(), Score("Experience "+exp.SearchText(), tokens))
	}

	push(SectionSkills, record.SkillsBullets(), Score("Key Skills "+record.SkillsText(), tokens))

	for i := range record.Education {
		edu := &record.Education[i]
		push(sectionEducationPrefix+edu.Institution, edu.Format(), Score("Education "+edu.SearchText(), tokens))
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Score > sections[j].Score
	})

	return sections
}
