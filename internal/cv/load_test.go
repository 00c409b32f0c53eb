package cv

import (
	"os"
	"path/filepath"
	"testing"
)

const validCvYaml = `name: Jane Doe
contact:
  phone: "+49 123 456"
  email: jane@example.com
  address: Berlin, Germany
headline: Payments Product Lead
summary: Ten years of payments product work.
key-value-proposition:
  - Ships regulated products end to end.
experience:
  - company: ExampleBank
    location: Berlin, Germany
    role: Product Lead
    start: January 2020
    end: Present
    bullets:
      - Launched a card platform.
key-skills:
  - Cards & Payments
education:
  - institution: Example University
    degree: MSc Computer Science
    location: Berlin, Germany
    years: 2010 - 2012
`

func writeCvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cv.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing cv file: %v", err)
	}
	return path
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	record, err := FromFile(writeCvFile(t, validCvYaml))
	if err != nil {
		t.Fatalf("expected record to load, got %v", err)
	}

	if record.Name != "Jane Doe" {
		t.Fatalf("unexpected name %q", record.Name)
	}
	if record.Contact.Email != "jane@example.com" {
		t.Fatalf("unexpected email %q", record.Contact.Email)
	}
	if len(record.Experience) != 1 || record.Experience[0].Company != "ExampleBank" {
		t.Fatalf("unexpected experience: %+v", record.Experience)
	}
	if len(record.Education) != 1 || record.Education[0].Degree != "MSc Computer Science" {
		t.Fatalf("unexpected education: %+v", record.Education)
	}
}

func TestFromFileMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestFromFileRejectsIncompleteRecord(t *testing.T) {
	t.Parallel()

	incomplete := `name: Jane Doe
headline: Payments Product Lead
`
	if _, err := FromFile(writeCvFile(t, incomplete)); err == nil {
		t.Fatalf("expected validation error for an incomplete record")
	}
}

func TestFromFileRejectsMalformedYaml(t *testing.T) {
	t.Parallel()

	if _, err := FromFile(writeCvFile(t, "name: [unclosed")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
