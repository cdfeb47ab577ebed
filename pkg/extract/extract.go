// Package extract converts uploaded job-description documents into plain text.
// Recognized MIME types: plain text, PDF, and the two word-processing formats
// (legacy and OOXML). Anything else yields the Unsupported sentinel.
package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/pkg/errors"
)

const (
	// MIMEPlainText is the plain text MIME type.
	MIMEPlainText = "text/plain"
	// MIMEPDF is the PDF MIME type.
	MIMEPDF = "application/pdf"
	// MIMEDocx is the OOXML word-processing MIME type.
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	// MIMEDoc is the legacy word-processing MIME type.
	MIMEDoc = "application/msword"

	// Unsupported is returned verbatim for unrecognized MIME types.
	Unsupported = "Unsupported file type."
)

// Text extracts plain text from a document with a declared MIME type. For
// unrecognized types it returns the Unsupported sentinel and no error.
func Text(mimeType string, data []byte) (text string, err error) {
	switch mimeType {
	case MIMEPlainText:
		text = string(data)
		return text, err
	case MIMEPDF:
		text, err = pdfText(data)
		return text, err
	case MIMEDocx, MIMEDoc:
		text, err = docxText(data)
		return text, err
	default:
		text = Unsupported
		return text, err
	}
}

// FromFile reads a file and extracts its text, inferring the MIME type from
// the file extension.
func FromFile(path string) (text string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return text, err
	}

	text, err = Text(MIMEForPath(path), data)
	return text, err
}

// MIMEForPath maps a file extension to its declared MIME type. Unknown
// extensions map to the empty string, which Text treats as unrecognized.
func MIMEForPath(path string) (mimeType string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		mimeType = MIMEPlainText
	case ".pdf":
		mimeType = MIMEPDF
	case ".docx":
		mimeType = MIMEDocx
	case ".doc":
		mimeType = MIMEDoc
	}
	return mimeType
}

func pdfText(data []byte) (text string, err error) {
	var reader *pdf.Reader
	reader, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		err = errors.Wrap(err, "failed to read pdf")
		return text, err
	}

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, textErr := page.GetPlainText(nil)
		if textErr != nil {
			continue
		}

		if pageText != "" {
			builder.WriteString(pageText)
			builder.WriteString("\n")
		}
	}

	text = builder.String()
	return text, err
}

func docxText(data []byte) (text string, err error) {
	var doc *docx.ReplaceDocx
	doc, err = docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		err = errors.Wrap(err, "failed to parse document")
		return text, err
	}
	defer func() { _ = doc.Close() }()

	text = doc.Editable().GetContent()
	return text, err
}
