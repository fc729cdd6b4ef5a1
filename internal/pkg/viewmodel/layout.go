package viewmodel

// Layout carries the data every page template needs from the shared layout.
type Layout struct {
	Title  string
	Active string
	IsDEV  bool
}

// HomePage is the template data for the home view.
type HomePage struct {
	Layout
	Groups []GuideGroup
}

// StartLearningPage is the template data for the start-learning view.
type StartLearningPage struct {
	Layout
}

// NotFoundPage is the template data for the unmatched-path fallback.
type NotFoundPage struct {
	Layout
	Path string
}
