package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

const fixtureDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Senior Backend Engineer with 8 years of Go experience.</w:t></w:r></w:p>
</w:body>
</w:document>`

const fixtureRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocxFixture(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := map[string]string{
		"word/document.xml":            fixtureDocumentXML,
		"word/_rels/document.xml.rels": fixtureRelsXML,
	}
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractDocxReturnsPlainText(t *testing.T) {
	data := buildDocxFixture(t)

	text, err := Extract(data, "resume.docx")
	if err != nil {
		t.Fatalf("expected docx to extract, got error: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") {
		t.Fatalf("expected extracted text to contain name, got %q", text)
	}
	if !strings.Contains(text, "Senior Backend Engineer") {
		t.Fatalf("expected extracted text to contain title, got %q", text)
	}
	if !strings.Contains(text, "\n") {
		t.Fatalf("expected paragraph break in extracted text, got %q", text)
	}
}

func TestExtractExtensionIsCaseInsensitive(t *testing.T) {
	data := buildDocxFixture(t)

	if _, err := Extract(data, "RESUME.DOCX"); err != nil {
		t.Fatalf("expected uppercase extension to extract, got error: %v", err)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"resume.txt", "resume.doc", "resume", "resume.pdf.bak"} {
		_, err := Extract([]byte("plain text"), name)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat for %s, got %v", name, err)
		}
	}
}

func TestExtractCorruptPDFIsParseFailure(t *testing.T) {
	_, err := Extract([]byte("not a pdf at all"), "resume.pdf")
	if !errors.Is(err, ErrParseFailure) {
		t.Fatalf("expected ErrParseFailure, got %v", err)
	}
}

func TestExtractCorruptDocxIsParseFailure(t *testing.T) {
	_, err := Extract([]byte("not a zip"), "resume.docx")
	if !errors.Is(err, ErrParseFailure) {
		t.Fatalf("expected ErrParseFailure, got %v", err)
	}
}

func TestStripDocxXMLKeepsRawOnInvalidXML(t *testing.T) {
	raw := "<w:document><unclosed"
	if got := stripDocxXML(raw); got != raw {
		t.Fatalf("expected raw string back for invalid xml, got %q", got)
	}
}
