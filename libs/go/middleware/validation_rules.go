package middleware

import "math"

const (
	maxBodySize   = 16 * 1024
	maxNameLength = 100
	maxFieldSize  = 128
)

// Body shapes of the donation and role endpoints
var (
	AddShelterValidation = ValidationConfig{
		MaxBodySize: maxBodySize,
		Rules: []ValidationRule{
			{Field: "address", Type: "string", MaxLength: maxFieldSize},
			{Field: "name", Type: "string", MaxLength: maxNameLength},
		},
	}

	AddAnimalValidation = ValidationConfig{
		MaxBodySize: maxBodySize,
		Rules: []ValidationRule{
			{Field: "name", Type: "string", MaxLength: maxNameLength},
			{Field: "species", Type: "string", MaxLength: maxNameLength},
		},
	}

	DonateValidation = ValidationConfig{
		MaxBodySize: maxBodySize,
		Rules: []ValidationRule{
			{Field: "amount", Type: "string", MaxLength: maxFieldSize},
			{Field: "shelter_address", Type: "string", MaxLength: maxFieldSize},
		},
	}

	DonateRecurringValidation = ValidationConfig{
		MaxBodySize: maxBodySize,
		Rules: []ValidationRule{
			{Field: "amount", Type: "string", MaxLength: maxFieldSize},
			{Field: "frequency", Type: "string", MaxLength: maxFieldSize},
			{Field: "occurrences", Type: "integer", Min: int64Ptr(math.MinInt32), Max: int64Ptr(math.MaxInt32)},
			{Field: "shelter_address", Type: "string", MaxLength: maxFieldSize},
		},
	}

	WithdrawValidation = ValidationConfig{
		MaxBodySize: maxBodySize,
		Rules: []ValidationRule{
			{Field: "amount", Type: "string", MaxLength: maxFieldSize},
			{Field: "destination_address", Type: "string", MaxLength: maxFieldSize},
		},
	}

	MarkSpentValidation = ValidationConfig{
		MaxBodySize: maxBodySize,
		Rules: []ValidationRule{
			{Field: "amount", Type: "string", MaxLength: maxFieldSize},
		},
	}

	SetAdminValidation = ValidationConfig{
		MaxBodySize: maxBodySize,
		Rules: []ValidationRule{
			{Field: "address", Type: "string", MaxLength: maxFieldSize},
		},
	}

	RoleEntryValidation = ValidationConfig{
		MaxBodySize: maxBodySize,
		Rules: []ValidationRule{
			{Field: "address", Type: "string", MaxLength: maxFieldSize},
			{Field: "name", Type: "string", MaxLength: maxNameLength},
		},
	}
)
