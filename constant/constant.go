// Package constant holds project-wide constants.
package constant

// ProjectName is used for window titles, config paths, and env prefixes.
const ProjectName = "editfield"

// UnsetInt marks integer settings that were never assigned.
const UnsetInt = -1
