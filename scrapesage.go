// Package scrapesage provides a line-oriented command interpreter for
// answering natural language questions through search-grounded generation.
// Users maintain a list of priority and excluded websites; questions are
// answered by a hosted generative search backend restricted to those sites,
// with citations for every source used.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, fs/, slog/).
package scrapesage
