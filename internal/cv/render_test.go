package cv

import (
	"strings"
	"testing"
)

func TestRenderText(t *testing.T) {
	t.Parallel()

	out := RenderText(Default())

	header := "Aditya Pratap Singh\n" +
		"aps270195@gmail.com | +49 160 8220604\n" +
		"Ansgar Strasse 96A, Elmshorn 25336, Germany\n\n" +
		"Senior Product Owner – Cards & Accounts | Digital Banking Innovator | RegTech Expert\n\n" +
		"SUMMARY\n"
	if !strings.HasPrefix(out, header) {
		t.Fatalf("unexpected header:\n%s", out[:min(len(out), len(header)+40)])
	}

	for _, want := range []string{
		"KEY VALUE PROPOSITION\n1. AI & Emerging Tech Delivery",
		"EXPERIENCE\n\nAssistant Vice President - Cards at Barclays Bank (Hamburg, Germany)\nSeptember 2023 - Present\n",
		"• Driving cross-border integration of card systems",
		"KEY SKILLS\n• Cards & Payments: Authorization",
		"EDUCATION\n\nMaster of Science and Technology: Internet of Things\nEcole Polytechnique, Paris, France\n2017 – 2019",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}

	if strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing whitespace to be trimmed")
	}
	if !strings.HasSuffix(out, "2013 – 2017") {
		t.Fatalf("expected output to end with the last education entry, got %q", out[len(out)-40:])
	}
}
