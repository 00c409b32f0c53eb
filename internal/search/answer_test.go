package search

import (
	"strings"
	"testing"

	"github.com/aps270195/cv-assistant/internal/cv"
)

func TestAnswerFallbacks(t *testing.T) {
	t.Parallel()

	record := cv.Default()

	tests := []struct {
		name   string
		query  string
		expect string
	}{
		{
			name:   "empty query",
			query:  "",
			expect: FallbackNoTokens,
		},
		{
			name:   "only short words",
			query:  "hi",
			expect: FallbackNoTokens,
		},
		{
			name:   "nothing matches",
			query:  "xyzzy plugh",
			expect: FallbackNoMatch,
		},
		{
			// An intent keyword alone is not enough: when no section
			// scores, the no-match fallback wins.
			name:   "intent keyword without any section hit",
			query:  "can you fly",
			expect: FallbackNoMatch,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Answer(tt.query, record); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestAnswerGreetings(t *testing.T) {
	t.Parallel()

	record := cv.Default()

	tests := []struct {
		name     string
		query    string
		greeting bool
	}{
		{name: "plain hello", query: "hello", greeting: true},
		{name: "hey there", query: "hey there", greeting: true},
		{name: "long greeting is a question", query: "hello how are you doing today", greeting: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Answer(tt.query, record)
			if tt.greeting && got != GreetingReply {
				t.Fatalf("expected greeting reply, got %q", got)
			}
			if !tt.greeting && got == GreetingReply {
				t.Fatalf("did not expect greeting reply for %q", tt.query)
			}
		})
	}
}

func TestAnswerIntents(t *testing.T) {
	t.Parallel()

	record := cv.Default()

	tests := []struct {
		name     string
		query    string
		prefix   string
		contains []string
	}{
		{
			name:   "skills",
			query:  "skills",
			prefix: "Aditya has extensive technical and domain expertise across multiple areas",
			contains: []string{
				"Cards & Payments: Authorization",
				"RegTech: KYC, AML, SEPA",
				"Systems & Architecture: REST APIs",
				"Data & Tools: SQL, Snowflake",
				"Product & Agile: OKRs",
				"B2B & B2C Payment Ecosystems",
			},
		},
		{
			name:   "skills outranks a company mention",
			query:  "What skills does Aditya use at Barclays",
			prefix: "Aditya has extensive technical and domain expertise across multiple areas",
		},
		{
			name:     "experience listing",
			query:    "Tell me about his work experience",
			prefix:   "Aditya has 10+ years of experience delivering high-impact technology products across fintech and banking in Europe. Here are his key roles:",
			contains: []string{"**Assistant Vice President - Cards** at Barclays Bank (Hamburg, Germany)"},
		},
		{
			name:     "company barclays",
			query:    "Tell me about Barclays",
			prefix:   "At Barclays Bank in Hamburg, Germany, Aditya currently serves as Assistant Vice President - Cards (September 2023 - Present).",
			contains: []string{"**Key Responsibilities:**", "• Driving cross-border integration of card systems"},
		},
		{
			name:     "company qonto",
			query:    "Tell me about Qonto",
			prefix:   "At Qonto in Paris, Aditya was a Product Manager - Cards from April 2019 to March 2022.",
			contains: []string{"**Key Achievements:**", "• Delivered SEPA middleware"},
		},
		{
			name:   "education",
			query:  "Tell me about Aditya's education",
			prefix: "Aditya has a strong educational background with degrees from prestigious institutions:",
			contains: []string{
				"**Master of Science and Technology: Internet of Things**",
				"**Bachelors of Technology: Computer Science**",
			},
		},
		{
			name:     "contact",
			query:    "How do I reach Aditya in Germany",
			prefix:   "You can reach Aditya at:",
			contains: []string{"Email: aps270195@gmail.com", "Phone: +49 160 8220604"},
		},
		{
			name:   "location",
			query:  "Is Aditya based in Germany",
			prefix: "Aditya is currently based in Ansgar Strasse 96A, Elmshorn 25336, Germany.",
		},
		{
			name:   "summary",
			query:  "Who is he? summary please",
			prefix: "Accomplished Product Leader with 10+ years of experience",
			contains: []string{
				"**Headline:** Senior Product Owner",
				"**Key Strengths:**",
			},
		},
		{
			name:     "ai pivot",
			query:    "Is Aditya ready to pivot into AI given his Germany background",
			prefix:   "Aditya is pivoting into AI-driven project leadership",
			contains: []string{"**Key AI & Tech Capabilities:**"},
		},
		{
			name:   "value proposition",
			query:  "What makes Aditya unique in Germany",
			prefix: "Aditya's key value propositions:",
		},
		{
			name:     "banking",
			query:    "digital banking in Germany",
			prefix:   "Aditya has 10+ years of specialized experience in fintech and digital banking:",
			contains: []string{"**Barclays Bank** (Hamburg, Germany)"},
		},
		{
			name:   "product management",
			query:  "agile",
			prefix: "Aditya is an accomplished Product Leader with expertise in:",
		},
		{
			name:   "generic top section",
			query:  "germany",
			prefix: "Based on Aditya's experience:",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Answer(tt.query, record)
			if !strings.HasPrefix(got, tt.prefix) {
				t.Fatalf("expected answer to start with %q, got %q", tt.prefix, got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Fatalf("expected answer to contain %q, got %q", want, got)
				}
			}
		})
	}
}

func TestAnswerIsDeterministic(t *testing.T) {
	t.Parallel()

	record := cv.Default()
	for _, query := range []string{"skills", "Tell me about Barclays", "germany", "xyzzy plugh"} {
		first := Answer(query, record)
		second := Answer(query, record)
		if first != second {
			t.Fatalf("answer for %q not deterministic", query)
		}
	}
}
