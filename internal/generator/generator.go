package generator

import "context"

// Generator produces a post caption and hashtag string from the user's
// free-text description
type Generator interface {
	Generate(ctx context.Context, description string) (content, hashtags string, err error)
}

const (
	templateTail     = "Our expert team is here to help you look and feel your best!"
	templateFallback = "Check out our latest work! " + templateTail
	templateHashtags = "#beauty #selfcare #professional #transformation #confidence"
)

// Template is the canned generator used when no AI backend is configured.
// It never fails, which also makes it the fallback when one is.
type Template struct{}

// Generate returns the description with a marketing tail and a fixed
// hashtag set
func (Template) Generate(_ context.Context, description string) (string, string, error) {
	if description == "" {
		return templateFallback, templateHashtags, nil
	}
	return description + "\n\n" + templateTail, templateHashtags, nil
}
