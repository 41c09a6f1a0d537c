package evaluation

import "golang.org/x/text/language"

// Config controls the behavior of the evaluation Service.
type Config struct {
	// RecordEvents appends every classification and render to the event
	// repo, when one is configured.
	RecordEvents bool

	// Language is used for render requests that do not name one.
	Language language.Tag
}

// DefaultConfig returns a Config with recording on and English output.
func DefaultConfig() Config {
	return Config{
		RecordEvents: true,
		Language:     language.English,
	}
}
