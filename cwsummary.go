// Package cwsummary builds plain-text summaries of courseware pages and
// manages the per-range API credential used to send those summaries to a
// language model.
//
// A page is an ordered list of containers, each an ordered list of typed
// blocks (text, code, headline, key-point, dialog-cards, typewriter and
// document). The summary is the page title followed by the formatted text
// extracted from every block that has any.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, pdf/, gemini/).
package cwsummary
