// Package scaffold creates a new sample module from the repository's
// reference sample. It powers the "newmodule create" command: the reference
// sample's tree is copied to a directory named after the new sample, the
// Kotlin templates from the tool directory are installed into a fresh source
// package, files that belong only to the reference sample are removed, and a
// fixed set of files is rewritten by literal substring replacement.
//
// Every operation is a function of an immutable Request and a Layout. No
// operation prints or exits; failures are returned as *StepError values that
// carry the stack captured where the failure was detected.
package scaffold
