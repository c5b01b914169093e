package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testResolver(t *testing.T) (Resolver, string) {
	t.Helper()
	dir := t.TempDir()
	return Resolver{
		DefaultResumePath:  filepath.Join(dir, "resume.txt"),
		DefaultJobDescPath: filepath.Join(dir, "job_description.txt"),
	}, dir
}

func TestResolve_ZeroArgsReadsDefaults(t *testing.T) {
	r, dir := testResolver(t)
	writeFile(t, dir, "resume.txt", "my resume")
	writeFile(t, dir, "job_description.txt", "the job")

	resume, jobDesc, err := r.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resume != "my resume" {
		t.Errorf("resume = %q", resume)
	}
	if jobDesc != "the job" {
		t.Errorf("jobDesc = %q", jobDesc)
	}
}

func TestResolve_ZeroArgsMissingDefaultResume(t *testing.T) {
	r, dir := testResolver(t)
	writeFile(t, dir, "job_description.txt", "the job")

	_, _, err := r.Resolve(nil)
	var cfgErr *model.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *model.ConfigError", err)
	}
}

func TestResolve_ZeroArgsMissingDefaultJobDesc(t *testing.T) {
	r, dir := testResolver(t)
	writeFile(t, dir, "resume.txt", "my resume")

	_, _, err := r.Resolve(nil)
	var cfgErr *model.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *model.ConfigError", err)
	}
}

func TestResolve_OneArgLiteral(t *testing.T) {
	r, dir := testResolver(t)
	writeFile(t, dir, "resume.txt", "my resume")

	resume, jobDesc, err := r.Resolve([]string{"Senior Python role"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resume != "my resume" {
		t.Errorf("resume = %q, want the default file content", resume)
	}
	if jobDesc != "Senior Python role" {
		t.Errorf("jobDesc = %q, want the literal argument", jobDesc)
	}
}

func TestResolve_OneArgExistingFileWinsOverLiteral(t *testing.T) {
	r, dir := testResolver(t)
	writeFile(t, dir, "resume.txt", "my resume")
	jdPath := writeFile(t, dir, "jd.txt", "job from file")

	_, jobDesc, err := r.Resolve([]string{jdPath})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if jobDesc != "job from file" {
		t.Errorf("jobDesc = %q, want the file content, never the path literal", jobDesc)
	}
}

func TestResolve_TwoArgsLiterals(t *testing.T) {
	r, _ := testResolver(t)

	resume, jobDesc, err := r.Resolve([]string{"5 years Python", "Senior Python role"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resume != "5 years Python" || jobDesc != "Senior Python role" {
		t.Errorf("got (%q, %q)", resume, jobDesc)
	}
}

func TestResolve_TwoArgsFiles(t *testing.T) {
	r, dir := testResolver(t)
	resumePath := writeFile(t, dir, "cv.txt", "resume from file")
	jdPath := writeFile(t, dir, "jd.txt", "job from file")

	resume, jobDesc, err := r.Resolve([]string{resumePath, jdPath})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resume != "resume from file" || jobDesc != "job from file" {
		t.Errorf("got (%q, %q)", resume, jobDesc)
	}
}

func TestResolve_DirectoryArgTreatedAsLiteral(t *testing.T) {
	r, dir := testResolver(t)

	_, jobDesc, err := r.Resolve([]string{"some resume", dir})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if jobDesc != dir {
		t.Errorf("jobDesc = %q, want the directory path as literal text", jobDesc)
	}
}

func TestResolve_InvalidUTF8File(t *testing.T) {
	r, dir := testResolver(t)
	path := filepath.Join(dir, "latin1.txt")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x41}, 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := r.Resolve([]string{"resume text", path})
	var inErr *model.InputError
	if !errors.As(err, &inErr) {
		t.Fatalf("err = %v, want *model.InputError", err)
	}
}
