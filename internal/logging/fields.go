package logging

// Field names for structured log entries.
const (
	FieldError    = "error"
	FieldPath     = "path"
	FieldSlug     = "slug"
	FieldKind     = "kind"
	FieldOutput   = "output"
	FieldPosts    = "posts"
	FieldWorkers  = "workers"
	FieldDuration = "duration"
	FieldFailed   = "failed"
	FieldVersion  = "version"
)
