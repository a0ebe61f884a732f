package export

import (
	"fmt"

	"github.com/stemsi/studentbook/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names in an exported workbook.
const (
	StudentsSheet = "Students"
	SubjectsSheet = "Subjects"
	RecordsSheet  = "Records"
)

// Workbook holds the collections written by WriteWorkbook.
type Workbook struct {
	Students []model.Student
	Subjects []model.Subject
	Records  []model.Record
}

// WriteWorkbook saves one sheet per collection to path. Absent optional
// values are left as empty cells.
func WriteWorkbook(path string, wb Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", StudentsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SubjectsSheet, RecordsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	students := [][]interface{}{{"Student ID", "Name", "Email", "Age"}}
	for _, s := range wb.Students {
		students = append(students, []interface{}{s.ID, s.Name, s.Email, optInt(s.Age)})
	}

	subjects := [][]interface{}{{"Subject ID", "Code", "Name", "Credits"}}
	for _, s := range wb.Subjects {
		subjects = append(subjects, []interface{}{s.ID, s.Code, s.Name, optInt(s.Credits)})
	}

	records := [][]interface{}{{"Student ID", "Subject ID", "Grade", "Attendance", "Total Classes", "Attendance %"}}
	for _, r := range wb.Records {
		var rate interface{}
		if pct, ok := r.AttendanceRate(); ok {
			rate = pct
		}
		var grade interface{}
		if r.Grade != nil {
			grade = *r.Grade
		}
		records = append(records, []interface{}{
			r.StudentID, r.SubjectID, grade, optInt(r.Attendance), optInt(r.TotalClasses), rate,
		})
	}

	for sheet, rows := range map[string][][]interface{}{
		StudentsSheet: students,
		SubjectsSheet: subjects,
		RecordsSheet:  records,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func optInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
