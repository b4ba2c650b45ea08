// ABOUTME: Version information for cwgen
// ABOUTME: Product name and release version shown by the CLI and TUI
package version

const (
	// Version is the release version
	Version = "0.3.0"

	// Product is the program name
	Product = "cwgen"

	// Manufacturer is the project name
	Manufacturer = "cwgen-go"
)

// String returns the product and version for display
func String() string {
	return Product + " " + Version
}
