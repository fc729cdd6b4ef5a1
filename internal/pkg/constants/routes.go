package constants

// Static route constants
const (
	// BasePath is the fixed prefix all site routes are mounted under.
	BasePath = "/learning"

	HomeRoute          = BasePath + "/"
	StartLearningRoute = BasePath + "/start-learning"

	// GuidesRoute is where the raw markdown guide documents are served from.
	GuidesRoute = BasePath + "/guides"

	APIRoute = "/api"
)
