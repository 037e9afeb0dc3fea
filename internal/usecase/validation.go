package usecase

import (
	"net/mail"
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

func ValidateCreateLeadInput(input CreateLeadInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(input.CompanyName) == "" {
		errs = append(errs, FieldError{"company_name", "is required"})
	}
	if strings.TrimSpace(input.CommunicationChannel) == "" {
		errs = append(errs, FieldError{"communication_channel", "is required"})
	}
	if strings.TrimSpace(input.ContactLocation) == "" {
		errs = append(errs, FieldError{"contact_location", "is required"})
	}

	if strings.TrimSpace(input.CNPJ) == "" {
		errs = append(errs, FieldError{"cnpj", "is required"})
	} else if !isValidCpfCnpj(input.CNPJ) {
		errs = append(errs, FieldError{"cnpj", "is invalid"})
	}
	if strings.TrimSpace(input.BusinessArea) == "" {
		errs = append(errs, FieldError{"business_area", "is required"})
	}
	if strings.TrimSpace(input.CompanyEmail) == "" {
		errs = append(errs, FieldError{"company_email", "is required"})
	} else if _, err := mail.ParseAddress(input.CompanyEmail); err != nil {
		errs = append(errs, FieldError{"company_email", "is invalid"})
	}
	if strings.TrimSpace(input.CompanyPhone) == "" {
		errs = append(errs, FieldError{"company_phone", "is required"})
	} else if !isValidPhoneNumber(input.CompanyPhone) {
		errs = append(errs, FieldError{"company_phone", "must be a valid phone number"})
	}

	return errs
}

func ValidateCreateLeadTaskInput(input CreateLeadTaskInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(input.Contact) == "" {
		errs = append(errs, FieldError{"contact", "is required"})
	}
	if strings.TrimSpace(input.Place) == "" {
		errs = append(errs, FieldError{"place", "is required"})
	}
	if strings.TrimSpace(input.ContactMethod) == "" {
		errs = append(errs, FieldError{"contact_method", "is required"})
	}
	if strings.TrimSpace(input.Environment) == "" {
		errs = append(errs, FieldError{"environment", "is required"})
	}
	if strings.TrimSpace(input.Location) == "" {
		errs = append(errs, FieldError{"location", "is required"})
	}
	if strings.TrimSpace(input.Feedback) == "" {
		errs = append(errs, FieldError{"feedback", "is required"})
	}
	if strings.TrimSpace(input.LeadID) == "" {
		errs = append(errs, FieldError{"lead_id", "is required"})
	}
	if input.TaskBegin.IsZero() {
		errs = append(errs, FieldError{"task_begin", "is required"})
	}
	if input.TaskEnd.IsZero() {
		errs = append(errs, FieldError{"task_end", "is required"})
	} else if !input.TaskBegin.IsZero() && input.TaskEnd.Before(input.TaskBegin) {
		errs = append(errs, FieldError{"task_end", "must not be before task_begin"})
	}

	return errs
}

func ValidateCreateClientTaskInput(input CreateClientTaskInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(input.Theme) == "" {
		errs = append(errs, FieldError{"theme", "is required"})
	}
	if strings.TrimSpace(input.ProjectDescription) == "" {
		errs = append(errs, FieldError{"project_description", "is required"})
	}
	if strings.TrimSpace(input.ClientID) == "" {
		errs = append(errs, FieldError{"client_id", "is required"})
	}
	if input.StartDateTime.IsZero() {
		errs = append(errs, FieldError{"start_date_time", "is required"})
	}
	if input.EndDateTime.IsZero() {
		errs = append(errs, FieldError{"end_date_time", "is required"})
	} else if !input.StartDateTime.IsZero() && input.EndDateTime.Before(input.StartDateTime) {
		errs = append(errs, FieldError{"end_date_time", "must not be before start_date_time"})
	}

	return errs
}

// isValidCpfCnpj aceita CPF (11 dígitos) ou CNPJ (14 dígitos),
// com ou sem pontuação. Rejeita sequências de um dígito só.
func isValidCpfCnpj(doc string) bool {
	cleaned := nonDigits.ReplaceAllString(doc, "")

	if len(cleaned) != 11 && len(cleaned) != 14 {
		return false
	}

	first := cleaned[0]
	allEqual := true
	for i := 1; i < len(cleaned); i++ {
		if cleaned[i] != first {
			allEqual = false
			break
		}
	}
	return !allEqual
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 13
}
