// Package linkaudit provides a CLI-based privacy audit for a single web page.
// It fetches the page, extracts its metadata and body text, and reports
// sentiment, known tracking-script signatures, outbound links and a
// tracking-likelihood verdict from a small Naive-Bayes classifier.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, govader/, bayes/).
package linkaudit
