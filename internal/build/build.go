// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Identifier returns the generator marker embedded in emitted reports.
func Identifier() string {
	return "pipreport/" + Version
}
