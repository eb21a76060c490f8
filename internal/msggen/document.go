package msggen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/K4R-IAI/UROSActionLib/internal/actiondef"
	"github.com/K4R-IAI/UROSActionLib/internal/ioerr"
)

// Document is the content of one generated .msg file.
type Document struct {
	FileName string
	Lines    []string
}

// Bytes renders the document with every line terminated by '\n'. A document
// without lines renders as an empty file.
func (d Document) Bytes() []byte {
	var b strings.Builder
	for _, line := range d.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Build assembles the document for variant v. section is ignored unless
// v.Splice is set. Build does not modify section.
func (v Variant) Build(id Identity, section []string) Document {
	lines := make([]string, 0, len(v.Boilerplate)+len(section)+1)
	lines = append(lines, v.Boilerplate...)
	if v.Splice {
		lines = append(lines, section...)
	}
	if v.Composite != "" {
		lines = append(lines, v.compositeLine(id))
	}
	return Document{
		FileName: v.FileName(id),
		Lines:    lines,
	}
}

// BuildAll assembles the six documents for def in generation order.
func BuildAll(id Identity, def *actiondef.Definition) []Document {
	docs := make([]Document, 0, len(Variants))
	for _, v := range Variants {
		docs = append(docs, v.Build(id, def.Lines(v.Section)))
	}
	return docs
}

// Save writes doc into dir, replacing any existing file. dir must exist.
func Save(doc Document, dir string) error {
	path := filepath.Join(dir, doc.FileName)
	if err := os.WriteFile(path, doc.Bytes(), 0o644); err != nil {
		return ioerr.Wrap("write", path, err)
	}
	return nil
}
