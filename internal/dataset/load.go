package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrEmptyDataset      = errors.New("dataset has no header row")
)

// MissingColumnsError is returned when the header lacks required columns.
type MissingColumnsError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("dataset %s is missing columns: %s", e.Path, strings.Join(e.Columns, ", "))
}

// LoadJobs reads the job postings dataset from a .csv or .xlsx file.
func LoadJobs(path string) (*Jobs, error) {
	var items []JobRecord
	if err := load(path, jobColumns, &items); err != nil {
		return nil, err
	}
	return &Jobs{Items: items}, nil
}

// LoadCourses reads the courses dataset from a .csv or .xlsx file.
func LoadCourses(path string) (*Courses, error) {
	var items []CourseRecord
	if err := load(path, courseColumns, &items); err != nil {
		return nil, err
	}
	return &Courses{Items: items}, nil
}

func load(path string, required []string, result any) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyDataset, path)
	}

	records, err := toRecords(path, rows[0], rows[1:], required)
	if err != nil {
		return err
	}

	cfg := &mapstructure.DecoderConfig{
		Result:  result,
		TagName: "column",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	if err := decoder.Decode(records); err != nil {
		return fmt.Errorf("decoding dataset %s: %w", path, err)
	}

	return nil
}

func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	// Rows are allowed to be shorter or longer than the header.
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv %s: %w", path, err)
		}
		rows = append(rows, record)
	}

	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheets[0], path, err)
	}

	return rows, nil
}

// toRecords maps every row to a header -> cell map. Missing cells are empty strings.
func toRecords(path string, header []string, rows [][]string, required []string) ([]map[string]string, error) {
	columns := make([]string, len(header))
	present := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[i] = name
		present[name] = true
	}

	var missing []string
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Path: path, Columns: missing}
	}

	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}

		record := make(map[string]string, len(required))
		for _, name := range required {
			record[name] = ""
		}
		for i, name := range columns {
			if i < len(row) && name != "" {
				record[name] = row[i]
			}
		}
		records = append(records, record)
	}

	return records, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
