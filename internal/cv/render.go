package cv

import (
	"fmt"
	"strings"
)

// DefaultExportFilename is the file name suggested for the plain-text export.
const DefaultExportFilename = "Aditya_Pratap_Singh_CV.txt"

// RenderText renders the record as a plain-text document with fixed section
// headers, suitable for downloading or piping to a file.
func RenderText(r *Record) string {
	var b strings.Builder

	b.WriteString(r.Name + "\n")
	b.WriteString(r.Contact.Email + " | " + r.Contact.Phone + "\n")
	b.WriteString(r.Contact.Address + "\n\n")
	b.WriteString(r.Headline + "\n\n")

	b.WriteString("SUMMARY\n")
	b.WriteString(r.Summary + "\n\n")

	b.WriteString("KEY VALUE PROPOSITION\n")
	for i, kvp := range r.KeyValueProposition {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, kvp))
	}
	b.WriteString("\n")

	b.WriteString("EXPERIENCE\n")
	blocks := make([]string, 0, len(r.Experience))
	for _, exp := range r.Experience {
		var eb strings.Builder
		eb.WriteString(fmt.Sprintf("\n%s at %s (%s)\n", exp.Role, exp.Company, exp.Location))
		eb.WriteString(exp.Start + " - " + exp.End + "\n")
		for _, bullet := range exp.Bullets {
			eb.WriteString("• " + bullet + "\n")
		}
		blocks = append(blocks, eb.String())
	}
	b.WriteString(strings.Join(blocks, "\n"))
	b.WriteString("\n")

	b.WriteString("KEY SKILLS\n")
	for _, skill := range r.KeySkills {
		b.WriteString("• " + skill + "\n")
	}
	b.WriteString("\n")

	b.WriteString("EDUCATION\n")
	blocks = blocks[:0]
	for _, edu := range r.Education {
		blocks = append(blocks, fmt.Sprintf("\n%s\n%s, %s\n%s\n", edu.Degree, edu.Institution, edu.Location, edu.Years))
	}
	b.WriteString(strings.Join(blocks, "\n"))

	return strings.TrimSpace(b.String())
}
