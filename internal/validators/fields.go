package validators

// Field name constants used to restrict validation to a subset of fields
// (field-level scoping).
const (
	// FieldLength targets the requested password length.
	FieldLength = "length"

	// FieldClasses targets the RequireEachClass constraint against the
	// requested length.
	FieldClasses = "classes"

	// FieldPassphrase targets the master passphrase of seal/open requests.
	FieldPassphrase = "passphrase"
)
