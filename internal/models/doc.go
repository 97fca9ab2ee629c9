// Package models defines the transient domain entities of the report processing client.
//
// All entities live in client memory for the lifetime of a run; nothing is persisted:
//   - [Session] : the client's belief about whether the user is authenticated, and under which role
//   - [FileSelection] : the pair of user-chosen input files awaiting submission
//   - [SubmissionResult] : the outcome state of a single process-files request
//
// Ownership follows the controller split: the auth controller owns the Session,
// the submission workflow owns FileSelection and SubmissionResult.
package models
