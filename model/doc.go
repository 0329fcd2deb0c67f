// Package model defines the canonical in-memory records shared by the
// loaders in package reader and the sinks in package output.
//
// Two record kinds exist:
//
//   - NearEarthObject: one per distinct object, keyed by its primary
//     designation.
//   - CloseApproach: one per close-approach event, referencing its object by
//     designation.
//
// Records are built once by the loaders and are not mutated by them. The
// NearEarthObject.Approaches and CloseApproach.NEO links start out empty and
// are filled in by package database after both sources are loaded.
//
// # Absent values
//
// An absent name is always the empty string: an empty CSV cell is the only
// absence marker, and any other name is kept exactly as read, surrounding
// whitespace included. Writers emit Name as-is. Diameter and
// Hazardous keep the raw source text; use DiameterKM and IsHazardous to read
// them as typed values.
package model
