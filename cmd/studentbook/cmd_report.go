package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stemsi/studentbook/internal/cli"
	"github.com/stemsi/studentbook/internal/export"
	"github.com/stemsi/studentbook/internal/response"
)

var reportFormat string

// studentsCmd lists every student.
var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "List all students",
	Args:  cobra.NoArgs,
	RunE:  runStudents,
}

// subjectsCmd lists every subject.
var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List all subjects",
	Args:  cobra.NoArgs,
	RunE:  runSubjects,
}

// reportCmd prints one student's report.
var reportCmd = &cobra.Command{
	Use:   "report <student-id>",
	Short: "Show a student's grades and attendance",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

// exportCmd writes every collection to an Excel workbook.
var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export students, subjects and records to an Excel workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "output format: text or yaml")
}

func runStudents(cmd *cobra.Command, args []string) error {
	cli.RenderStudents(cmd.OutOrStdout(), manager.Students())
	return nil
}

func runSubjects(cmd *cobra.Command, args []string) error {
	cli.RenderSubjects(cmd.OutOrStdout(), manager.Subjects())
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	report, err := manager.StudentReport(args[0])
	if err != nil {
		return errors.New(response.Message(err))
	}

	switch reportFormat {
	case "text", "":
		cli.RenderReport(cmd.OutOrStdout(), report)
		return nil
	case "yaml":
		return export.WriteReportYAML(cmd.OutOrStdout(), report)
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", reportFormat)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	err := export.WriteWorkbook(path, export.Workbook{
		Students: manager.Students(),
		Subjects: manager.Subjects(),
		Records:  manager.Records(),
	})
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	log.Info().Str("path", path).Msg("Workbook exported")
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d students, %d subjects and %d records to %s\n",
		len(manager.Students()), len(manager.Subjects()), len(manager.Records()), path)
	return nil
}
