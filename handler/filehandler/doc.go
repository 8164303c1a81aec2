// Package filehandler provides a handler that appends log lines to a file.
//
// The file is opened once with O_APPEND and every log call results in one
// write, so lines from several processes appending to the same file do not
// interleave within a line on POSIX systems. There is no rotation; use an
// external tool such as logrotate with copytruncate.
package filehandler
