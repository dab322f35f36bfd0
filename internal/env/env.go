package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/errors"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
)

// Keys managed in the stack .env file.
const (
	KeyHostIP         = "HOST_IP"
	KeyVIPAddress     = "VIP_ADDRESS"
	KeyInterface      = "NETWORK_INTERFACE"
	KeyPiholePassword = "PIHOLE_PASSWORD"
	KeyWebPassword    = "WEBPASSWORD"
	KeyNodeRole       = "NODE_ROLE"
)

// ManagedKeys lists the managed keys in display order.
var ManagedKeys = []string{
	KeyHostIP,
	KeyVIPAddress,
	KeyInterface,
	KeyPiholePassword,
	KeyWebPassword,
	KeyNodeRole,
}

var secretKeys = map[string]bool{
	KeyPiholePassword: true,
	KeyWebPassword:    true,
}

// IsSecret reports whether a key's value must be redacted when displayed.
func IsSecret(key string) bool {
	return secretKeys[key]
}

// Redact masks secret values for display.
func Redact(key, value string) string {
	if IsSecret(key) && value != "" {
		return "********"
	}
	return value
}

// Store reads and updates the stack's .env file. When the file does not
// exist yet, reads and updates start from the sibling .env.example, and the
// first update materializes the real file.
type Store struct {
	path        string
	examplePath string
}

func NewStore(path string) *Store {
	return &Store{
		path:        path,
		examplePath: path + ".example",
	}
}

// Path returns the .env location this store writes to.
func (s *Store) Path() string {
	return s.path
}

// Read parses the current environment values.
func (s *Store) Read() (map[string]string, error) {
	src, err := s.sourcePath()
	if err != nil {
		return nil, err
	}

	values, err := godotenv.Read(src)
	if err != nil {
		return nil, errors.NewEnvError(fmt.Sprintf("failed to parse %s", src), err)
	}
	return values, nil
}

// Set updates managed keys in place and writes the result to the .env file.
// Comment lines, blank lines, and unknown keys pass through untouched. The
// two Pi-hole password keys are kept in sync: setting either one updates
// both. Keys absent from the file are reported as an error rather than
// appended, so a typoed key never silently grows the file.
func (s *Store) Set(updates map[string]string) error {
	if len(updates) == 0 {
		return nil
	}

	updates, err := normalizeUpdates(updates)
	if err != nil {
		return err
	}

	src, err := s.sourcePath()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(src)
	if err != nil {
		return errors.NewEnvError(fmt.Sprintf("failed to read %s", src), err)
	}

	lines := strings.Split(string(raw), "\n")
	applied := make(map[string]bool, len(updates))

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		idx := strings.Index(line, "=")
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value, ok := updates[key]
		if !ok {
			continue
		}

		lines[i] = key + "=" + value
		applied[key] = true
	}

	var missing []string
	for _, key := range ManagedKeys {
		if _, ok := updates[key]; ok && !applied[key] {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return errors.NewEnvError(fmt.Sprintf("keys not present in %s: %s", src, strings.Join(missing, ", ")), nil)
	}

	if err := os.WriteFile(s.path, []byte(strings.Join(lines, "\n")), 0o600); err != nil {
		return errors.NewEnvError(fmt.Sprintf("failed to write %s", s.path), err)
	}

	log.Debugf("Updated %d key(s) in %s", len(applied), s.path)
	return nil
}

// sourcePath returns the .env file, falling back to .env.example.
func (s *Store) sourcePath() (string, error) {
	if _, err := os.Stat(s.path); err == nil {
		return s.path, nil
	}
	if _, err := os.Stat(s.examplePath); err == nil {
		return s.examplePath, nil
	}
	return "", errors.NewEnvError(fmt.Sprintf("neither %s nor %s exists", s.path, s.examplePath), nil)
}

// normalizeUpdates rejects unmanaged keys and mirrors the password keys.
func normalizeUpdates(updates map[string]string) (map[string]string, error) {
	normalized := make(map[string]string, len(updates)+1)

	for key, value := range updates {
		managed := false
		for _, known := range ManagedKeys {
			if key == known {
				managed = true
				break
			}
		}
		if !managed {
			return nil, errors.NewEnvError(fmt.Sprintf("unsupported key %q (managed keys: %s)", key, strings.Join(ManagedKeys, ", ")), nil)
		}
		normalized[key] = value
	}

	if password, ok := normalized[KeyPiholePassword]; ok {
		normalized[KeyWebPassword] = password
	} else if password, ok := normalized[KeyWebPassword]; ok {
		normalized[KeyPiholePassword] = password
	}

	return normalized, nil
}
