// Package collect locates DRAGEN metrics files on disk and merges
// per-sample records across documents.
package collect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/inodb/dragen-qc/internal/vcmetrics"
)

// InputFile is one located metrics document with its contents read
// into memory.
type InputFile struct {
	Path       string
	SampleHint string
	Data       string
}

// Find walks the given files and directories and returns every
// vc_metrics.csv document found, read into memory. Paths are visited
// in argument order and directory walks are lexical, so downstream
// merges are deterministic.
func Find(paths []string) ([]InputFile, error) {
	var files []InputFile

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			f, err := readInput(path)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), vcmetrics.FileSuffix) {
				return nil
			}
			f, err := readInput(p)
			if err != nil {
				return err
			}
			files = append(files, f)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	return files, nil
}

func readInput(path string) (InputFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InputFile{}, fmt.Errorf("read metrics file %s: %w", path, err)
	}
	return InputFile{
		Path:       path,
		SampleHint: vcmetrics.SampleFromFilename(path),
		Data:       string(data),
	}, nil
}
