package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	// Validate general config
	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	// Use validator to validate General config
	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}

	// Validate instances
	if len(c.Instances) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "instance",
			Message:   "configuration must contain at least one instance",
		})
	} else {
		validationErrors = append(validationErrors, c.validateInstances()...)
	}

	// Validate gateway config
	if c.Gateway != nil {
		if err := validate.Struct(c.Gateway); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "gateway", "")...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateInstances() ValidationErrors {
	var validationErrors ValidationErrors

	seenNames := make(map[string]bool)
	seenPrimary := make(map[string]bool)
	reconcileTargets := 0

	for i, inst := range c.Instances {
		itemName := inst.Name
		if itemName == "" {
			itemName = fmt.Sprintf("instance[%d]", i)
		}

		// Validate struct fields
		if err := validate.Struct(inst); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("instance.%d", i), itemName)...)
		}

		// Check duplicate instance name
		if seenNames[inst.Name] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "name",
				Message:   fmt.Sprintf("duplicate instance name: %s", inst.Name),
			})
		}
		seenNames[inst.Name] = true

		// At most one primary per role group
		if inst.Primary {
			if seenPrimary[inst.Group] {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: "primary",
					Message:   fmt.Sprintf("role group %q has more than one primary instance", inst.Group),
				})
			}
			seenPrimary[inst.Group] = true
		}

		if inst.Primary && inst.Container != "" && inst.APIURL != "" {
			reconcileTargets++
		}

		// Connectivity verification needs the API URL next to the container
		if inst.Container != "" && inst.APIURL == "" && inst.Primary {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "api_url",
				Message:   "primary instance with a container must also set api_url",
			})
		}
	}

	if reconcileTargets == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "instance",
			Message:   "exactly one primary instance with container and api_url is required as the reconciliation target",
		})
	} else if reconcileTargets > 1 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "instance",
			Message:   fmt.Sprintf("found %d reconciliation targets, expected exactly one", reconcileTargets),
		})
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because of the registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			message := getValidationMessage(e)

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   message,
			})
		}
	}

	return validationErrors
}
