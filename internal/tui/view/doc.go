// Package view renders the feeflow dashboard.
//
// Every function here is a pure renderer: it takes a state struct and a
// [styles.Styles] and returns a string. Nothing in this package mutates the
// model or talks to the loader, which keeps the components testable with
// plain string assertions.
//
// # Components
//
//   - [RenderHeader]: system name and workflow caption
//   - [RenderCards]: one card per pipeline stage, joined by arrows when wide
//   - [RenderChain]: the processing chain strip
//   - [RenderStats]: the progress summary panel
//   - [RenderDetail]: the stage detail modal with tabs and copy button
//   - [RenderHelpBar]: the key help footer
package view
