// Package kernel holds the value objects shared by every aggregate of the
// attendance core: identifiers, geographic points, geofences, clock times and time windows.
//
// All of them are immutable and carry a constructor guard, so a zero value is
// detected by Validate instead of silently behaving like a real coordinate on
// the equator or a window starting at the Unix epoch.
//
// The geographic and interval math that the monitor and the schedule conflict
// check rely on lives here:
//   - GeoPoint.DistanceTo: great-circle (haversine) distance in meters
//   - TimeWindow.Overlaps: half-open interval overlap
//   - Geofence.Measure: distance from a site and the outside flag
package kernel
