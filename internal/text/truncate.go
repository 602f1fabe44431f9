package text

// smallOverflowChars is the hashtag overflow tolerated without a
// "show more" toggle. Revealing this little is not worth the tap.
const smallOverflowChars = 35

// Truncation is the display decision for one rendered post
type Truncation struct {
	Content        string `json:"content"`
	Hashtags       string `json:"hashtags,omitempty"`
	ShouldShowMore bool   `json:"shouldShowMore"`
	RemainingChars int    `json:"remainingChars,omitempty"`
}

// ProcessForDisplay decides how much of a post's content and hashtag string
// to show given a character budget and the caller's expansion state. An empty
// hashtags string means the post has none. Limits count characters, not
// bytes. Pure; call fresh on every render.
func ProcessForDisplay(content, hashtags string, limit int, expanded bool) Truncation {
	contentRunes := []rune(content)
	hashtagRunes := []rune(hashtags)

	fullLen := len(contentRunes)
	if hashtags != "" {
		fullLen += 1 + len(hashtagRunes) // joining space
	}

	shouldShowMore := fullLen > limit

	if expanded || !shouldShowMore {
		return Truncation{
			Content:        content,
			Hashtags:       hashtags,
			ShouldShowMore: shouldShowMore,
		}
	}

	remaining := fullLen - limit

	// Truncation lands inside the content itself: cut there, drop hashtags
	if limit <= len(contentRunes) {
		return Truncation{
			Content:        string(contentRunes[:limit]),
			ShouldShowMore: true,
			RemainingChars: remaining,
		}
	}

	// Only hashtags overflow. A small overflow is shown in full instead of
	// toggling.
	if hashtags != "" && remaining <= smallOverflowChars {
		return Truncation{
			Content:  content,
			Hashtags: hashtags,
		}
	}

	hashtagBudget := limit - len(contentRunes) - 1 // -1 for the joining space
	visible := ""
	if hashtagBudget > 0 {
		visible = string(hashtagRunes[:hashtagBudget])
	}

	return Truncation{
		Content:        content,
		Hashtags:       visible,
		ShouldShowMore: true,
		RemainingChars: remaining,
	}
}
