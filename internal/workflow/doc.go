// Package workflow implements the file submission workflow.
//
// [SubmissionController] owns the file selection and the submission result. It
// validates that both input files are present before any network call, performs
// the upload through the services client, classifies the outcome, and publishes
// the transformed report into an in-memory [Store] of revocable artifacts.
//
// The controller never mutates authentication state directly. When a protected
// call is rejected for authorization reasons it emits the event through
// [AuthSink], which the auth controller implements.
package workflow
