package api

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/postpilot/postpilot/internal/text"
)

// PreviewAPI exposes the display truncation contract directly, for clients
// that re-render per-item with their own expansion state
type PreviewAPI struct {
	defaultLimit int
}

// NewPreviewAPI creates the preview method group
func NewPreviewAPI(defaultLimit int) *PreviewAPI {
	return &PreviewAPI{defaultLimit: defaultLimit}
}

type previewParams struct {
	Content  string `json:"content"`
	Hashtags string `json:"hashtags"`
	Limit    *int   `json:"limit"`
	Expanded bool   `json:"expanded"`
}

// Process returns the truncation decision for one caption
func (a *PreviewAPI) Process(_ *gin.Context, params json.RawMessage) (interface{}, error) {
	var p previewParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, InvalidParamsError("malformed params")
		}
	}

	limit := a.defaultLimit
	if p.Limit != nil {
		if *p.Limit <= 0 {
			return nil, InvalidParamsError("limit must be positive")
		}
		limit = *p.Limit
	}

	return text.ProcessForDisplay(p.Content, p.Hashtags, limit, p.Expanded), nil
}
