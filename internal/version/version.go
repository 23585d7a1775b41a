// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - SVG document export, YAML config with location presets
// 0.2.0 - Terminal viewer: date scrubbing, preset cycling, info panel
// 0.1.0 - Initial release: solar model, analemma table, assembler, generator
