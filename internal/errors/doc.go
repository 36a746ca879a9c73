// Package errors provides the error vocabulary for the character importer.
//
// Two kinds of failure live here and they are deliberately kept apart:
//
//   - *Error: a structured Go error with a Code, message, cause and metadata.
//     Repositories, configuration and other infrastructure return these.
//   - ImportError: a plain data record describing why an external character
//     or campaign document could not be imported. Adapters return these as
//     values next to a nil result; they are never raised.
//
// # Structured errors
//
//	err := errors.NotFound("campaign not found").
//	    WithMeta("campaign_id", id)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load campaign")
//	}
//
//	if errors.IsNotFound(err) {
//	    // ...
//	}
//
// # Import errors
//
//	var errs errors.ImportErrors
//	errs = append(errs, errors.NewParseError("format", "invalid JSON"))
//	if errs.HasField("name") {
//	    // ...
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("title", title, vb)
//	importErrs := vb.ImportErrors()
//
// The builder can produce either a single InvalidArgument *Error (Build) or a
// sorted list of ValidationError import records (ImportErrors).
package errors
