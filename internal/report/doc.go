// Package report implements the section model of a daily report.
//
// A report is a plain text file split into named sections by single-hash heading lines
// ("# Todo"). Everything before the first heading belongs to the HEADER section. The
// model keeps sections in first-appearance order so a document can be written back in
// the same shape, and remembers the trimmed source lines so two reports can be compared
// exactly as they were typed.
package report
