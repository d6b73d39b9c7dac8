// Package pattern implements the string comparisons used to filter component
// types: contains, starts with, ends with, equals and raw regular expressions.
// Non-regex comparisons are compiled into an anchored, escaped expression so a
// single matcher (regexp2, .NET syntax) serves every mode.
package pattern
