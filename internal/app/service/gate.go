package service

// DocContext describes what the session currently displays.
type DocContext struct {
	// Slug of the shared document being viewed; empty for the private draft.
	Slug string

	// Shared is true when the context is a published document rather than
	// the private draft.
	Shared bool

	// EditMode is true when the edit surface is exposed. For the private
	// draft it is implicitly true.
	EditMode bool
}

// Decision is a policy outcome. A denial is not an error: it carries the
// message shown to the user and leaves the session untouched.
type Decision struct {
	Allowed bool
	Reason  string
}

// CanEdit reports whether the edit UI is exposed for the given context. The
// private draft is always editable; a shared document only when edit mode was
// already granted.
func CanEdit(ctx DocContext) bool {
	if !ctx.Shared {
		return true
	}
	return ctx.EditMode
}

// VerifyEditCode evaluates an edit-code challenge for a shared document.
// Shared documents are permanently read-only: every code is rejected,
// including the one issued at share time.
func VerifyEditCode(slug, code string) Decision {
	return Decision{
		Allowed: false,
		Reason:  "editing has been disabled for shared documents",
	}
}
