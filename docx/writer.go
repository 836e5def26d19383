package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const relationshipsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math">` +
	`<w:body>`

const documentFooter = `</w:body></w:document>`

// heading text is bold at 16pt, sizes are in half-points
const headingRunProps = `<w:rPr><w:b/><w:sz w:val="32"/><w:szCs w:val="32"/></w:rPr>`

// Write packs the document as a .docx container: a zip archive holding the
// content-type map, the package relationships and the document part. Any
// packing failure is returned to the caller, this step is not retried.
func (d *Document) Write(w io.Writer) error {
	archive := zip.NewWriter(w)

	for _, part := range []struct{ name, data string }{
		{name: "[Content_Types].xml", data: contentTypesXML},
		{name: "_rels/.rels", data: relationshipsXML},
	} {
		f, err := archive.Create(part.name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", part.name, err)
		}

		if _, err := io.WriteString(f, part.data); err != nil {
			return fmt.Errorf("write part %s: %w", part.name, err)
		}
	}

	f, err := archive.Create("word/document.xml")
	if err != nil {
		return fmt.Errorf("create part word/document.xml: %w", err)
	}

	if err := d.render(f); err != nil {
		return fmt.Errorf("write part word/document.xml: %w", err)
	}

	if err := archive.Close(); err != nil {
		return fmt.Errorf("close container: %w", err)
	}

	return nil
}

func (d *Document) render(w io.Writer) error {
	if _, err := io.WriteString(w, documentHeader); err != nil {
		return err
	}

	for _, par := range d.Paragraphs {
		if err := renderParagraph(w, par); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, documentFooter)
	return err
}

func renderParagraph(w io.Writer, par Paragraph) error {
	if _, err := io.WriteString(w, "<w:p>"); err != nil {
		return err
	}

	for _, inline := range par.Inlines {
		switch inline.Kind {
		case TextInline:
			if err := renderTextRun(w, inline.Text, par.Heading); err != nil {
				return err
			}
		case MathInline:
			if err := renderMath(w, inline.Math); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "</w:p>")
	return err
}

func renderTextRun(w io.Writer, text string, heading bool) error {
	if _, err := io.WriteString(w, "<w:r>"); err != nil {
		return err
	}

	if heading {
		if _, err := io.WriteString(w, headingRunProps); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, `<w:t xml:space="preserve">`); err != nil {
		return err
	}

	if err := xml.EscapeText(w, []byte(text)); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</w:t></w:r>")
	return err
}
