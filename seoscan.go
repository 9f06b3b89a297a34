// Package seoscan provides a CLI-based SEO audit tool.
// It fetches rendered pages through a scraping API, extracts SEO signals
// from the raw HTML and Markdown, stores one flat record per page, and
// compiles the stored records into a multi-sheet spreadsheet.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., firecrawl/, sqlite/, excelize/).
package seoscan
