package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-svcfmt/internal/hints"
)

// textExtensions are picked up when walking an input directory.
var textExtensions = map[string]bool{".txt": true, ".text": true}

// fileJob is a single file to process. An empty OutputPath means stdout.
type fileJob struct {
	InputPath  string
	OutputPath string
}

// outputPlan describes where transformed text goes.
type outputPlan struct {
	output  string // -o value
	inPlace bool
	html    bool
}

// discoverFiles expands inputs (files or directories) into jobs and assigns
// each an output path according to plan.
func discoverFiles(inputs []string, plan outputPlan) ([]fileJob, error) {
	type found struct {
		path, baseDir string
	}
	var files []found
	sawDir := false

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		if !info.IsDir() {
			files = append(files, found{path: input})
			continue
		}

		sawDir = true
		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !textExtensions[filepath.Ext(path)] {
				return nil
			}
			files = append(files, found{path: path, baseDir: input})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no .txt files found in %s", ErrNoInput, strings.Join(inputs, ", "))
	}

	jobs := make([]fileJob, len(files))
	toDir := sawDir || len(files) > 1 || isDirTarget(plan.output)

	for i, f := range files {
		jobs[i].InputPath = f.path
		switch {
		case plan.inPlace:
			jobs[i].OutputPath = f.path
		case plan.output == "":
			if toDir {
				return nil, fmt.Errorf("%w%s", ErrOutputRequired, hints.ForOutputRequired())
			}
		case toDir:
			jobs[i].OutputPath = resolveOutputPath(f.path, plan.output, f.baseDir, plan.html)
		default:
			jobs[i].OutputPath = plan.output
		}
	}
	return jobs, nil
}

// isDirTarget reports whether an -o value names a directory: it exists as
// one or ends with a path separator.
func isDirTarget(output string) bool {
	if output == "" {
		return false
	}
	if strings.HasSuffix(output, "/") || strings.HasSuffix(output, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(output)
	return err == nil && info.IsDir()
}

// resolveOutputPath determines the output path for an input file written
// under outputDir, keeping its path relative to baseInputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, html bool) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	switch {
	case html:
		ext = ".html"
	case ext == "":
		ext = ".txt"
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+ext)
		}
	}

	return filepath.Join(outputDir, base+ext)
}

// titleFor derives a review page title from a file name.
func titleFor(path string) string {
	if path == "" || path == "-" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
