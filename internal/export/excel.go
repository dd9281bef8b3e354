package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	profileSheet = "Profile"
	jobsSheet    = "Jobs"
	coursesSheet = "Courses"
)

// ToExcel writes the report to an xlsx workbook with profile, jobs and courses sheets.
func (r *Report) ToExcel(path string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", profileSheet); err != nil {
		return "", err
	}
	for _, name := range []string{jobsSheet, coursesSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return "", err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return "", err
	}

	if err := r.writeProfile(f, headerStyle); err != nil {
		return "", fmt.Errorf("writing profile sheet: %w", err)
	}
	if err := r.writeJobs(f, headerStyle); err != nil {
		return "", fmt.Errorf("writing jobs sheet: %w", err)
	}
	if err := r.writeCourses(f, headerStyle); err != nil {
		return "", fmt.Errorf("writing courses sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving workbook: %w", err)
	}
	return path, nil
}

func (r *Report) writeProfile(f *excelize.File, headerStyle int) error {
	rows := [][]any{
		{"Field", "Value"},
		{"Session", r.SessionID},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Match mode", string(r.MatchMode)},
		{"Educational Background", r.Profile.Education},
		{"Interests", strings.Join(r.Profile.Interests, ", ")},
		{"Technical Skills", strings.Join(r.Profile.TechSkills, ", ")},
		{"Soft Skills", strings.Join(r.Profile.SoftSkills, ", ")},
	}
	for _, qa := range r.Profile.Answers {
		rows = append(rows, []any{qa.Question, qa.Answer})
	}
	rows = append(rows, []any{"Top Universities", r.UniversitiesURL})

	if err := writeRows(f, profileSheet, rows, headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(profileSheet, "A", "B", 50)
}

func (r *Report) writeJobs(f *excelize.File, headerStyle int) error {
	rows := [][]any{{"Job Title", "Job Description", "Outcome"}}
	for _, job := range r.Jobs.Jobs {
		rows = append(rows, []any{job.Title, job.Description, r.Jobs.Outcome.String()})
	}

	if err := writeRows(f, jobsSheet, rows, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(jobsSheet, "A", "A", 30); err != nil {
		return err
	}
	return f.SetColWidth(jobsSheet, "B", "B", 80)
}

func (r *Report) writeCourses(f *excelize.File, headerStyle int) error {
	rows := [][]any{{"Course Name", "Links", "Outcome"}}
	for _, course := range r.Courses.Courses {
		rows = append(rows, []any{course.Name, course.Link, r.Courses.Outcome.String()})
	}

	if err := writeRows(f, coursesSheet, rows, headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(coursesSheet, "A", "B", 50)
}

func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}
