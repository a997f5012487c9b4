package storage

// DraftKey holds the private working draft. The remaining keys are derived
// per slug. Session view markers live in the session-scoped namespace; every
// other key lives in the durable one.
const (
	DraftKey = "markdown-editor-content"

	sharedPrefix        = "shared_"
	editCodePrefix      = "editcode_"
	viewsPrefix         = "views_"
	sessionViewedPrefix = "session_viewed_"
)

func SharedKey(slug string) string { return sharedPrefix + slug }

func EditCodeKey(slug string) string { return editCodePrefix + slug }

func ViewsKey(slug string) string { return viewsPrefix + slug }

func SessionViewedKey(slug string) string { return sessionViewedPrefix + slug }
