// Package input turns CLI positional arguments into resume and
// job-description text, falling back to default on-disk files.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

// Resolver resolves positional arguments against default input files.
type Resolver struct {
	DefaultResumePath  string
	DefaultJobDescPath string
}

// Resolve produces (resume text, job-description text) from zero, one, or two
// positional arguments.
//
//   - zero args: both come from the default files
//   - one arg: it is the job description (file content if it names an existing
//     file, the literal string otherwise); resume comes from the default file
//   - two args: first is the resume, second the job description, each a file
//     path or literal text
//
// Resume files may be PDFs; job-description files are always read as UTF-8 text.
func (r Resolver) Resolve(args []string) (string, string, error) {
	switch len(args) {
	case 0:
		resume, err := r.readDefault(r.DefaultResumePath, true)
		if err != nil {
			return "", "", err
		}
		jobDesc, err := r.readDefault(r.DefaultJobDescPath, false)
		if err != nil {
			return "", "", err
		}
		return resume, jobDesc, nil

	case 1:
		resume, err := r.readDefault(r.DefaultResumePath, true)
		if err != nil {
			return "", "", err
		}
		jobDesc, err := readFileOrText(args[0], false)
		if err != nil {
			return "", "", err
		}
		return resume, jobDesc, nil

	case 2:
		resume, err := readFileOrText(args[0], true)
		if err != nil {
			return "", "", err
		}
		jobDesc, err := readFileOrText(args[1], false)
		if err != nil {
			return "", "", err
		}
		return resume, jobDesc, nil

	default:
		return "", "", &model.InputError{Err: fmt.Errorf("expected at most 2 arguments, got %d", len(args))}
	}
}

// readDefault reads a default input file; a missing file is a configuration
// error since nothing else can supply the text.
func (r Resolver) readDefault(path string, allowPDF bool) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", &model.ConfigError{Err: fmt.Errorf("default input file %s: %w", path, err)}
	}
	return readFile(path, allowPDF)
}

// readFileOrText reads arg as a file when it names an existing regular file,
// and treats it as literal text otherwise.
func readFileOrText(arg string, allowPDF bool) (string, error) {
	info, err := os.Stat(arg)
	if err != nil || info.IsDir() {
		return arg, nil
	}
	return readFile(arg, allowPDF)
}

func readFile(path string, allowPDF bool) (string, error) {
	if allowPDF && isPDFPath(path) {
		return readPDF(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &model.InputError{Source: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &model.InputError{Source: path, Err: fmt.Errorf("file is not valid UTF-8")}
	}
	return string(data), nil
}

func isPDFPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
