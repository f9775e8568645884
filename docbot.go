// Package docbot answers documentation questions by scraping official
// documentation sites. Given a base URL and a free-text query it fetches the
// base page plus every same-prefix page linked from it, ranks the pages by how
// often the query occurs, and returns context-padded excerpts from the best
// matches as a markdown reply.
//
// This package contains domain types, pure text functions and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/, http/).
package docbot
