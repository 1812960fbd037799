// Package worldfacts harvests structured facts about countries from
// encyclopedia pages. It discovers the list of countries from an index
// table, parses each country's info table into a typed record, and hands
// the finished batch to a storage sink.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, text/).
package worldfacts
