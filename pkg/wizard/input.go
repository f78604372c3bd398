package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rusal0/Wizard/pkg/wizard/parser"
)

// Input is one workbook to process: its bytes plus the display name used in
// reports and for naming.
type Input struct {
	Name string
	Data []byte
}

// LoadInput reads a workbook file. The input is named after the file.
func LoadInput(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Input{Name: filepath.Base(path), Data: data}, nil
}

// Stem returns the input name without its extension.
func (in Input) Stem() string {
	return strings.TrimSuffix(in.Name, filepath.Ext(in.Name))
}

// read parses an input and converts reader issues into warnings.
func read(in Input, opts Options) (*parser.ReadResult, []Warning, error) {
	log := opts.logger().WithField("input", in.Name)
	log.WithField("bytes", len(in.Data)).Debug("reading workbook")

	result, err := parser.Read(in.Stem(), in.Data, opts.readOptions())
	if err != nil {
		return nil, nil, &InputError{Input: in.Name, Err: err}
	}

	warnings := make([]Warning, 0, len(result.Issues))
	for _, issue := range result.Issues {
		warnings = append(warnings, Warning{
			Input:   in.Name,
			Sheet:   issue.Sheet,
			Cell:    issue.Cell,
			Message: issue.Message,
		})
	}
	log.WithField("sheets", len(result.Workbook.Sheets)).
		WithField("kind", result.Kind).
		Debug("workbook read")
	return result, warnings, nil
}

func logWarnings(opts Options, warnings []Warning) {
	log := opts.logger()
	for _, w := range warnings {
		entry := log.WithField("input", w.Input)
		if w.Sheet != "" {
			entry = entry.WithField("sheet", w.Sheet)
		}
		if w.Cell != "" {
			entry = entry.WithField("cell", w.Cell)
		}
		entry.Warn(w.Message)
	}
}
