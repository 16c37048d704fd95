// Package scanner checks that externally hosted resources are pinned with SRI.
//
// Scanning runs in three stages:
//
//   - An Extractor pulls candidate references out of markup (<link> and
//     <script src> tags) and stylesheet text (@import url(...) directives).
//     RegexExtractor matches tag-like substrings; HTMLExtractor tokenizes the
//     markup with golang.org/x/net/html. Either can be swapped in without
//     touching the policy.
//   - NewReference drops every candidate whose URL is not absolute http(s).
//   - Classify applies the policy, first match wins: stylesheet imports always
//     warn, then missing integrity, placeholder integrity, missing crossorigin.
//
// A Report keeps successes, errors and warnings in discovery order. Only
// errors fail a scan.
package scanner
