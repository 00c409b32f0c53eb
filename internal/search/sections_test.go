package search

import (
	"testing"

	"github.com/aps270195/cv-assistant/internal/cv"
)

func TestScoreSectionsKeepsEnumerationOrderOnTies(t *testing.T) {
	t.Parallel()

	record := cv.Default()
	sections := scoreSections([]string{"kafka"}, record)

	// "kafka" appears once in a value proposition, once in the Auto 1
	// bullets, and once in the key skills. All tie at score 1, so the
	// enumeration order must survive the sort.
	expect := []string{"value_proposition_3", "experience_Auto 1", "skills"}
	if len(sections) != len(expect) {
		t.Fatalf("expected %d sections, got %d: %+v", len(expect), len(sections), sections)
	}
	for i, id := range expect {
		if sections[i].ID != id {
			t.Fatalf("expected section %d to be %q, got %q", i, id, sections[i].ID)
		}
	}
}

func TestScoreSectionsDropsZeroScores(t *testing.T) {
	t.Parallel()

	record := cv.Default()
	sections := scoreSections([]string{"xyzzy"}, record)
	if len(sections) != 0 {
		t.Fatalf("expected no sections, got %+v", sections)
	}
}

func TestScoreSectionsMatchesSectionTitles(t *testing.T) {
	t.Parallel()

	record := cv.Default()

	sections := scoreSections([]string{"skills"}, record)
	if len(sections) == 0 || sections[0].ID != SectionSkills {
		t.Fatalf("expected the skills section to score on its title, got %+v", sections)
	}

	sections = scoreSections([]string{"education"}, record)
	if len(sections) != len(record.Education) {
		t.Fatalf("expected every education entry to score, got %+v", sections)
	}
}

func TestScoreSectionsSortsByScore(t *testing.T) {
	t.Parallel()

	record := cv.Default()

	// "sepa" hits the Qonto bullets, the key skills block twice, and the
	// summary once. The skills block must outrank the single hits.
	sections := scoreSections([]string{"sepa"}, record)
	if len(sections) < 2 {
		t.Fatalf("expected several sections, got %+v", sections)
	}
	if sections[0].ID != SectionSkills {
		t.Fatalf("expected skills first, got %q", sections[0].ID)
	}
	for i := 1; i < len(sections); i++ {
		if sections[i].Score > sections[i-1].Score {
			t.Fatalf("sections not sorted descending: %+v", sections)
		}
	}
}
