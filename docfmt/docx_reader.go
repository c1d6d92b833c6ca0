package docfmt

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// WordprocessingML is a zip package; the paragraph/run subset this
// tool needs lives entirely in word/document.xml.
const documentPart = "word/document.xml"

type xmlDocument struct {
	XMLName    xml.Name       `xml:"document"`
	Paragraphs []xmlParagraph `xml:"body>p"`
}

type xmlParagraph struct {
	Runs []xmlRun `xml:"r"`
}

type xmlRun struct {
	Properties *xmlRunProperties `xml:"rPr"`
	Texts      []string          `xml:"t"`
}

type xmlRunProperties struct {
	Bold *xmlToggle `xml:"b"`
}

type xmlToggle struct {
	Val string `xml:"val,attr"`
}

// boldSet reports whether a <w:b> toggle actually enables bold; Word
// writes <w:b w:val="0"/> to switch bold back off inside a styled run.
func (t *xmlToggle) boldSet() bool {
	if t == nil {
		return false
	}
	switch strings.ToLower(t.Val) {
	case "0", "false", "none", "off":
		return false
	}
	return true
}

// ReadDocx extracts the ordered paragraphs of a DOCX file, each with
// its flattened text and styled runs.
func ReadDocx(path string) ([]Paragraph, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s as a DOCX package: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in %s: %w", documentPart, path, err)
		}
		defer rc.Close()

		var doc xmlDocument
		if err := xml.NewDecoder(rc).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s in %s: %w", documentPart, path, err)
		}
		return flattenParagraphs(doc.Paragraphs), nil
	}
	return nil, fmt.Errorf("%s contains no %s part", path, documentPart)
}

func flattenParagraphs(xmlParas []xmlParagraph) []Paragraph {
	paras := make([]Paragraph, 0, len(xmlParas))
	for _, xp := range xmlParas {
		var para Paragraph
		for _, xr := range xp.Runs {
			run := Run{
				Text: strings.Join(xr.Texts, ""),
				Bold: xr.Properties != nil && xr.Properties.Bold.boldSet(),
			}
			para.Text += run.Text
			para.Runs = append(para.Runs, run)
		}
		paras = append(paras, para)
	}
	return paras
}
