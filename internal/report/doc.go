// Package report renders scanner reports for operators and CI systems.
//
// Three formats are supported: colored text for terminals, JSON for tool
// integration and Markdown for pull-request comments or job summaries. All
// writers share the Writer interface so the validate command can pick one by
// name.
package report
