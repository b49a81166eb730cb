// Package cowbox holds module-level metadata for the cowbox CLI.
package cowbox

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/mesh-intelligence/cowbox/pkg/cowbox.Version=...".
var Version = "0.1.0"

// ModulePath is the Go module path of this repository.
const ModulePath = "github.com/mesh-intelligence/cowbox"
