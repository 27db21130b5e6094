// Package git records archived daily reports in the git repository that encloses the
// project directory.
package git
