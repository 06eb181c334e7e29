package standalone

import (
	"fmt"
	"os"
)

// artifactPermissions is rw-r--r--: owner read+write, others read.
const artifactPermissions = 0o644

// WriteArtifact writes data to every destination in order, overwriting
// existing files. On failure the artifact may already exist at earlier
// destinations; the run must still report the error and never claim
// success.
func WriteArtifact(data []byte, destinations []string) error {
	if len(destinations) == 0 {
		return ErrNoDestinations
	}

	for _, dest := range destinations {
		if err := os.WriteFile(dest, data, artifactPermissions); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteArtifact, dest, err)
		}
	}

	return nil
}
