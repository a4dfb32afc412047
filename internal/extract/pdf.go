package extract

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"
)

// extractPDF parses the bytes as a PDF and returns its logical text stream.
// Parse failures, including library panics on malformed files, yield "".
func extractPDF(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return ""
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return ""
	}
	return buf.String()
}
