// Package names generates the random suffixes used for transient resources
// (credential volumes, auto-named disks).
package names

import (
	"strings"

	"github.com/google/uuid"
)

// Suffix returns an 8 character lowercase alphanumeric suffix. Lowercase
// keeps generated names valid for both docker volumes and GCE resources.
func Suffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
