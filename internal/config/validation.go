package config

import (
	"fmt"
	"net"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "url":
		return "must be a valid URL"
	case "fqdn":
		return "must be a valid domain name"
	case "instance_name":
		return "must consist only of lowercase letters, numbers, and underscores [a-z0-9_]"
	case "host_or_ip":
		return "must be a valid IP address or hostname"
	case "listen_addr":
		return "must be in format 'host:port' or ':port'"
	case "cmd_template":
		if e.Param() != "" {
			return fmt.Sprintf("must be a command template containing {%s} and {%s}", TmplContainer, e.Param())
		}
		return fmt.Sprintf("must be a command template containing {%s} with no unknown placeholders", TmplContainer)
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For instances: the name of the item (e.g. "pihole_primary")
	FieldPath string // Dot-notation field path (e.g. "general.listen", "gateway.rebuild_cmd")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

var templatePlaceholderRegexp = regexp.MustCompile(`\{([a-z_]+)\}`)

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("instance_name", validateInstanceName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("host_or_ip", validateHostOrIP); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("listen_addr", validateListenAddr); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("cmd_template", validateCmdTemplate); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: instance/group name format
func validateInstanceName(fl validator.FieldLevel) bool {
	return instanceNameRegexp.MatchString(fl.Field().String())
}

// Custom validator: IP address or plain hostname
func validateHostOrIP(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	if ip := net.ParseIP(value); ip != nil {
		return true
	}
	return validateHostname(value)
}

func validateHostname(value string) bool {
	if len(value) > 253 {
		return false
	}
	for _, label := range strings.Split(value, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
		for _, r := range label {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
				return false
			}
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

// Custom validator: listen address in host:port or :port form
func validateListenAddr(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	host, port, err := net.SplitHostPort(value)
	if err != nil {
		return false
	}
	if port == "" {
		return false
	}
	if host != "" && net.ParseIP(host) == nil && !validateHostname(host) {
		return false
	}
	return true
}

// Custom validator: gateway command template. The template must reference
// {container}, must reference the placeholder named by the tag parameter
// (if any), and may not reference unknown placeholders.
func validateCmdTemplate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	known := map[string]bool{
		TmplContainer: true,
		TmplURL:       true,
		TmplDomain:    true,
		TmplPattern:   true,
	}

	seen := make(map[string]bool)
	for _, match := range templatePlaceholderRegexp.FindAllStringSubmatch(value, -1) {
		name := match[1]
		if !known[name] {
			return false
		}
		seen[name] = true
	}

	if !seen[TmplContainer] {
		return false
	}
	if param := fl.Param(); param != "" && !seen[param] {
		return false
	}
	return true
}
