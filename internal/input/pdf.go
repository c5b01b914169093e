package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

// readPDF extracts the plain text of every page of the PDF at path,
// concatenated in ascending page order.
func readPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &model.InputError{Source: path, Err: fmt.Errorf("open pdf: %w", err)}
	}
	defer f.Close()

	total := reader.NumPage()
	if total == 0 {
		return "", &model.InputError{Source: path, Err: errors.New("pdf has no pages")}
	}

	var b strings.Builder
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &model.InputError{Source: path, Err: fmt.Errorf("extract page %d: %w", i, err)}
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", &model.InputError{Source: path, Err: errors.New("pdf contains no extractable text")}
	}
	return out, nil
}
