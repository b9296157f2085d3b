// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Ecliptic arc on the chart, moon bright-limb orientation, phase events
// 0.3.0 - Simulated clock with rate control, rise/set event log, TOML config
// 0.2.0 - Planet positions from circular orbits, external catalog files
// 0.1.0 - Initial release: sun/moon/star altitudes, stereographic chart, almanac table
