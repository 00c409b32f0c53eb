package prompts

import (
	"strings"
	"testing"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	expect := []string{"experience", "skills", "education", "achievements"}
	if len(Catalog) != len(expect) {
		t.Fatalf("expected %d prompts, got %d", len(expect), len(Catalog))
	}
	for i, id := range expect {
		if Catalog[i].ID != id {
			t.Fatalf("expected prompt %d to be %q, got %q", i, id, Catalog[i].ID)
		}
		if Catalog[i].Label == "" || Catalog[i].Query == "" || Catalog[i].Response == "" {
			t.Fatalf("prompt %q has empty fields", id)
		}
	}
}

func TestByID(t *testing.T) {
	t.Parallel()

	prompt, ok := ByID("education")
	if !ok {
		t.Fatalf("expected education prompt to exist")
	}
	for _, want := range []string{
		"**Master of Science and Technology: Internet of Things**",
		"**Bachelors of Technology: Computer Science**",
	} {
		if !strings.Contains(prompt.Response, want) {
			t.Fatalf("expected education response to contain %q", want)
		}
	}

	if _, ok := ByID("nope"); ok {
		t.Fatalf("expected unknown id to be reported as missing")
	}
}

func TestMatchLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		query  string
		expect string
		ok     bool
	}{
		{name: "experience", query: "experience", expect: "experience", ok: true},
		{name: "work experience", query: "work experience", expect: "experience", ok: true},
		{name: "case and whitespace insensitive", query: "  SKILLS  ", expect: "skills", ok: true},
		{name: "singular skill", query: "skill", expect: "skills", ok: true},
		{name: "degree maps to education", query: "degree", expect: "education", ok: true},
		{name: "degrees maps to education", query: "Degrees", expect: "education", ok: true},
		{name: "free text is not a literal", query: "tell me about your skills", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			prompt, ok := MatchLiteral(tt.query)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && prompt.ID != tt.expect {
				t.Fatalf("expected prompt %q, got %q", tt.expect, prompt.ID)
			}
		})
	}
}
