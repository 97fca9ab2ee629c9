// Package ui implements the interactive terminal views of the client.
//
// The TUI mirrors the three-view workflow of the original web client:
//
//  1. Login: credential form, gated by the auth controller's session
//  2. Upload: two file path inputs, submit disabled while a request is in flight
//  3. Result: save the processed report or open it in the browser
//
// The [Model] never owns authentication or submission state itself; it reads
// and drives the auth and workflow controllers and re-renders on their
// transitions. An authorization-denied response during a submission demotes
// the session and forces the login view to re-render.
package ui
