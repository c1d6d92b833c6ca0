package docfmt

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// WriteDocx writes the given paragraphs as a minimal DOCX package. The
// file is fully written or not created at all: errors on any part
// abort the whole save.
func WriteDocx(path string, paras []OutParagraph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	zw := zip.NewWriter(f)
	parts := []struct {
		name, body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{documentPart, documentXML(paras)},
	}
	for _, part := range parts {
		w, werr := zw.Create(part.name)
		if werr != nil {
			return fmt.Errorf("failed to add %s to %s: %w", part.name, path, werr)
		}
		if _, werr := w.Write([]byte(part.body)); werr != nil {
			return fmt.Errorf("failed to write %s in %s: %w", part.name, path, werr)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return nil
}

func documentXML(paras []OutParagraph) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paras {
		writeParagraphXML(&b, p)
	}
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeParagraphXML(b *strings.Builder, p OutParagraph) {
	b.WriteString("<w:p>")
	if p.Center || p.IndentPt > 0 {
		b.WriteString("<w:pPr>")
		if p.Center {
			b.WriteString(`<w:jc w:val="center"/>`)
		}
		if p.IndentPt > 0 {
			// w:ind is measured in twips (twentieths of a point).
			fmt.Fprintf(b, `<w:ind w:left="%d"/>`, p.IndentPt*20)
		}
		b.WriteString("</w:pPr>")
	}
	for _, r := range p.Runs {
		b.WriteString("<w:r>")
		if r.Bold || r.Italic || r.SizePt > 0 {
			b.WriteString("<w:rPr>")
			if r.Bold {
				b.WriteString("<w:b/>")
			}
			if r.Italic {
				b.WriteString("<w:i/>")
			}
			if r.SizePt > 0 {
				// w:sz is measured in half-points.
				fmt.Fprintf(b, `<w:sz w:val="%d"/>`, r.SizePt*2)
			}
			b.WriteString("</w:rPr>")
		}
		b.WriteString(`<w:t xml:space="preserve">`)
		b.WriteString(escapeXML(r.Text))
		b.WriteString("</w:t></w:r>")
	}
	b.WriteString("</w:p>")
}

func escapeXML(s string) string {
	var b strings.Builder
	// EscapeText never fails on a strings.Builder.
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
