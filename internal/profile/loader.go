package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/errors"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field names by their "yaml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ResolveProfilePath maps a profile argument to a document path. An argument
// containing a path separator or a YAML extension is used as-is; anything
// else is looked up as <profileDir>/<name>.yaml (then .yml).
func ResolveProfilePath(profileDir, nameOrPath string) string {
	if strings.ContainsRune(nameOrPath, os.PathSeparator) ||
		strings.HasSuffix(nameOrPath, ".yaml") || strings.HasSuffix(nameOrPath, ".yml") {
		return nameOrPath
	}

	path := filepath.Join(profileDir, nameOrPath+".yaml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(profileDir, nameOrPath+".yml")
}

// LoadProfile reads, parses, and validates one profile document. A missing
// or malformed document is a fatal condition for the caller: no
// reconciliation run may start without a valid ProfileSpec.
func LoadProfile(path string) (*ProfileSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewProfileError(fmt.Sprintf("profile file not found: %s", path), err)
		}
		return nil, errors.NewProfileError(fmt.Sprintf("failed to read profile: %s", path), err)
	}

	var spec ProfileSpec
	if err := yaml.Unmarshal(content, &spec); err != nil {
		return nil, errors.NewProfileError(fmt.Sprintf("invalid YAML in profile: %s", path), err)
	}

	if err := validateProfile(&spec); err != nil {
		return nil, err
	}

	log.Debugf("Loaded profile %q (%d blocklists, %d whitelist categories, %d regex rules)",
		spec.Name, len(spec.Blocklists), len(spec.Whitelist), len(spec.RegexPatterns))

	return &spec, nil
}

// validateProfile checks struct constraints and compiles every enabled regex
// rule. Disabled rules are not compiled: they are never applied, so a stale
// pattern in a disabled rule must not block the run.
func validateProfile(spec *ProfileSpec) error {
	var problems []string

	if err := validate.Struct(spec); err != nil {
		validatorErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.NewValidationError("profile validation failed", err)
		}
		for _, e := range validatorErrs {
			// Namespace carries yaml tag names, e.g. "ProfileSpec.blocklists[2].url"
			field := strings.TrimPrefix(e.Namespace(), "ProfileSpec.")
			problems = append(problems, fmt.Sprintf("%s: %s", field, validationMessage(e)))
		}
	}

	for i, rule := range spec.RegexPatterns {
		if !rule.IsEnabled() {
			continue
		}
		if rule.Pattern == "" {
			continue
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			problems = append(problems, fmt.Sprintf("regex_patterns[%d]: pattern does not compile: %v", i, err))
		}
	}

	if len(problems) > 0 {
		return errors.New(errors.ErrCodeValidation,
			fmt.Sprintf("profile %q is invalid:\n  - %s", spec.Name, strings.Join(problems, "\n  - ")))
	}

	return nil
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}
