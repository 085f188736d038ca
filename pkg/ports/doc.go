/*
Package ports defines the driven ports (interfaces) of the validation runner.

These interfaces decouple the runner from where candidate documents come from,
so the same batch logic runs against the filesystem, an in-memory fixture set,
or anything else that can list and read documents.

# Key Interfaces

  - Source: discovers candidate documents and reads their raw bytes.
  - Watchable: notifies about changes so a caller can re-run the batch.
*/
package ports
