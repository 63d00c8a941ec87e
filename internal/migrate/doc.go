// Package migrate runs the slide props migration over a configured list of
// slide files.
//
// Slides are processed one at a time in list order. A slide whose file does
// not exist is reported and skipped. Any other failure stops the run at that
// slide, leaving later slides untouched; a file being written when the
// process dies may be left truncated, since writes are not atomic.
package migrate
