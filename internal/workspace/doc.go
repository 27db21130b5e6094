// Package workspace prepares the project directory a daily report lives in.
//
// A project needs a template, a working report and an archive directory. The
// template is the only thing the user must provide; the working report is seeded
// from it and the archive directory is created on first use.
package workspace
