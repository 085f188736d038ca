/*
Package domain contains the core models of an edmcheck run.

It defines what a validation run produces, independently of how documents are
found, parsed or checked. This package is kept pure and free of I/O so the
runner, the reporters and the HTTP surface can share the same vocabulary.

# Key Entities

  - Violation: one way a candidate document fails to conform to the schema.
  - Result: the outcome for a single candidate file (valid, or invalid with violations).
  - Report: the aggregate of a run, including the failure counter and final Status.
  - Status: passed, failed, empty or crashed; each maps to a process exit code.
*/
package domain
