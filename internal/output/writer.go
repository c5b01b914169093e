// Package output emits the generated letter, either to a stream or a file.
package output

import (
	"io"
	"os"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

// Write emits exactly text, with no extra framing: to w when path is empty,
// otherwise to the file at path (created or overwritten, mode 0644).
func Write(w io.Writer, path, text string) error {
	if path == "" {
		if _, err := io.WriteString(w, text); err != nil {
			return &model.OutputError{Path: "stdout", Err: err}
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return &model.OutputError{Path: path, Err: err}
	}
	return nil
}
