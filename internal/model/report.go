package model

// ReportEntry pairs one of the student's records with its subject. Subject is
// nil when the record points at a subject that no longer exists.
type ReportEntry struct {
	Subject *Subject `json:"subject" yaml:"subject"`
	Record  *Record  `json:"record" yaml:"record"`
}

// StudentReport is a read-only view of a student and all of their records.
type StudentReport struct {
	Student Student       `json:"student" yaml:"student"`
	Entries []ReportEntry `json:"records" yaml:"records"`
}
