package cv

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Record is the structured resume the whole assistant answers from. It is
// built once (either the built-in record or a loaded file) and never mutated
// afterwards, so it is safe to share between callers.
type Record struct {
	Name                string           `mapstructure:"name" yaml:"name" validate:"required"`
	Contact             Contact          `mapstructure:"contact" yaml:"contact" validate:"required"`
	Headline            string           `mapstructure:"headline" yaml:"headline" validate:"required"`
	Summary             string           `mapstructure:"summary" yaml:"summary" validate:"required"`
	KeyValueProposition []string         `mapstructure:"key-value-proposition" yaml:"key-value-proposition" validate:"required,min=1,dive,required"`
	Experience          []ExperienceItem `mapstructure:"experience" yaml:"experience" validate:"required,min=1,dive"`
	KeySkills           []string         `mapstructure:"key-skills" yaml:"key-skills" validate:"required,min=1,dive,required"`
	Education           []EducationItem  `mapstructure:"education" yaml:"education" validate:"required,min=1,dive"`
}

type Contact struct {
	Phone   string `mapstructure:"phone" yaml:"phone" validate:"required"`
	Email   string `mapstructure:"email" yaml:"email" validate:"required,email"`
	Address string `mapstructure:"address" yaml:"address" validate:"required"`
}

// ExperienceItem is a single employment entry. Entries are kept in
// reverse-chronological order: index 0 is always the current position.
type ExperienceItem struct {
	Company  string   `mapstructure:"company" yaml:"company" validate:"required"`
	Location string   `mapstructure:"location" yaml:"location" validate:"required"`
	Role     string   `mapstructure:"role" yaml:"role" validate:"required"`
	Start    string   `mapstructure:"start" yaml:"start" validate:"required"`
	End      string   `mapstructure:"end" yaml:"end" validate:"required"`
	Bullets  []string `mapstructure:"bullets" yaml:"bullets" validate:"required,min=1,dive,required"`
}

type EducationItem struct {
	Institution string `mapstructure:"institution" yaml:"institution" validate:"required"`
	Degree      string `mapstructure:"degree" yaml:"degree" validate:"required"`
	Location    string `mapstructure:"location" yaml:"location" validate:"required"`
	Years       string `mapstructure:"years" yaml:"years" validate:"required"`
}

// Validate checks the well-formedness invariants: no empty required field and
// no empty sequence. A record that fails validation must never reach the
// answering engine.
func (r *Record) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("cv record is malformed: %w", err)
	}
	return nil
}

// CurrentPosition returns the most recent experience entry.
func (r *Record) CurrentPosition() ExperienceItem {
	return r.Experience[0]
}

// FindExperience returns the experience entry for the given company name, or
// nil when the company is not part of the record.
func (r *Record) FindExperience(company string) *ExperienceItem {
	for i := range r.Experience {
		if r.Experience[i].Company == company {
			return &r.Experience[i]
		}
	}
	return nil
}

// SkillsText returns all key skill lines joined with a single space, the form
// the scorer matches against.
func (r *Record) SkillsText() string {
	return strings.Join(r.KeySkills, " ")
}

// SkillsBullets returns the key skills as a bulleted block without the
// leading bullet of the first line.
func (r *Record) SkillsBullets() string {
	return strings.Join(r.KeySkills, "\n• ")
}

// SearchText returns the concatenation of the parts of an experience entry
// the scorer matches against.
func (e *ExperienceItem) SearchText() string {
	return e.Role + " " + e.Company + " " + strings.Join(e.Bullets, " ")
}

// Format renders an experience entry as a short markdown block.
func (e *ExperienceItem) Format() string {
	bullets := make([]string, 0, len(e.Bullets))
	for _, b := range e.Bullets {
		bullets = append(bullets, "• "+b)
	}

	return fmt.Sprintf("**%s** at %s (%s)\n%s - %s\n\n%s",
		e.Role, e.Company, e.Location, e.Start, e.End, strings.Join(bullets, "\n"))
}

// SearchText returns the concatenation of the parts of an education entry
// the scorer matches against.
func (e *EducationItem) SearchText() string {
	return e.Institution + " " + e.Degree + " " + e.Location
}

// Format renders an education entry as a short markdown block.
func (e *EducationItem) Format() string {
	return fmt.Sprintf("**%s**\n%s, %s\n%s", e.Degree, e.Institution, e.Location, e.Years)
}
