package user

import (
	"os"
	"os/user"
	"strings"
)

// DisplayName suggests a name for a new account from the local system user.
// It prefers the full name (GECOS), then the login name, then $USER. An empty
// string means nothing usable was found.
func DisplayName() string {
	if current, err := user.Current(); err == nil {
		// GECOS may carry extra comma separated fields
		if name, _, _ := strings.Cut(current.Name, ","); strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
		if current.Username != "" {
			return current.Username
		}
	}
	return os.Getenv("USER")
}
