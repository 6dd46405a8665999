// Package browscap resolves client identification strings (user agents)
// against a Browscap capability database.
//
// A Browscap file is an INI document whose section names are fnmatch-style
// patterns. Each section holds typed properties and may name a Parent section
// it inherits from. Which properties exist depends on the file's schema
// variant (lite, regular or full), each a superset of the previous one.
//
// # Architecture
//
// Loading happens once and produces an immutable DB. Every query then flows
// through three stages over the same read-only data:
//
//	┌──────────┐ query ┌───────────┐ record ┌────────────┐ fields ┌──────────┐
//	│  Search  │──────▶│  matcher  │───────▶│  resolver  │───────▶│  Result  │
//	└──────────┘       └───────────┘        └────────────┘        └──────────┘
//	                     first match          parent chain,
//	                     in file order        first write wins
//
// The schema registry (schema.go) fixes the ordered property lists per
// variant. The matcher (matcher.go) prepares every section name once and
// returns the first one matching the whole query, ignoring case. The
// resolver (resolver.go) walks the matched record and its ancestors, filling
// each property from the most specific record that defines it. Absence is tracked per field, so an
// unset boolean is distinguishable from false.
//
// Data access goes through the Source interface. INISource (ini.go) parses a
// file with gopkg.in/ini.v1 into a case-insensitive snapshot; any other store
// can be plugged in through New.
//
// # Usage
//
//	db, err := browscap.Load("/var/lib/browscap/browscap.ini")
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	res, err := db.Search(r.UserAgent())
//	if err != nil {
//	    // only ErrClosed or ErrCyclicInheritance
//	}
//	if res.IsCrawler() {
//	    // skip analytics
//	}
//	if platform, ok := res.String("Platform"); ok {
//	    log.Printf("platform=%s", platform)
//	}
//
// # Error Handling
//
// Load, Open and New wrap parse failures in ErrLoadFailed. A file without a
// declared type is not an error: the variant defaults to regular and a
// warning carrying ErrMissingSchemaType is logged. Search returns
// ErrCyclicInheritance for a parent chain that loops and ErrClosed after
// Close. A query matching no pattern yields a Result with every field unset.
package browscap
