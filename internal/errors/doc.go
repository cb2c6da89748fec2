// Package apperrors defines the error types and exit codes used across the
// demoscript application. Every failure the program can report to the OS maps
// to one of the exit-code constants defined here.
package apperrors
