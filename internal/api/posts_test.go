package api

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/postpilot/postpilot/internal/models"
	"github.com/postpilot/postpilot/internal/store"
)

func seededPosts() []models.Post {
	now := time.Now().UTC()
	return []models.Post{
		{
			ID:           "2001",
			ImageURL:     "https://example.com/balayage.jpg",
			Content:      "Fresh balayage for the weekend",
			Hashtags:     "#balayage #hair",
			Status:       models.StatusPublished,
			ReviewStatus: models.ReviewApproved,
			CreatedAt:    now.Add(-48 * time.Hour),
		},
		{
			ID:           "2002",
			ImageURL:     "https://example.com/nails.jpg",
			Content:      "Gel set ready for review",
			Hashtags:     "#nails",
			Status:       models.StatusDraft,
			ReviewStatus: models.ReviewPending,
			CreatedAt:    now.Add(-2 * time.Hour),
		},
	}
}

func newPostsEngine(t *testing.T) (*gin.Engine, *store.PostStore) {
	t.Helper()

	postStore := store.New(seededPosts())
	router := NewRouter(postStore, nil, nil, SeedData{}, 150)

	engine := gin.New()
	router.SetupRoutes(engine)
	return engine, postStore
}

func resultMap(t *testing.T, resp JSONRPCResponse) map[string]interface{} {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	return result
}

func TestPostsListDefaultsToDraftTab(t *testing.T) {
	engine, _ := newPostsEngine(t)

	result := resultMap(t, call(t, engine, rpcBody(t, "posts.list", nil)))
	if result["activeFilter"] != string(models.StatusDraft) {
		t.Errorf("expected draft tab, got %v", result["activeFilter"])
	}
	posts, ok := result["posts"].([]interface{})
	if !ok || len(posts) != 1 {
		t.Fatalf("expected 1 draft post, got %v", result["posts"])
	}
}

func TestPostsListSwitchesFilter(t *testing.T) {
	engine, postStore := newPostsEngine(t)

	result := resultMap(t, call(t, engine, rpcBody(t, "posts.list", gin.H{"status": "published"})))
	if result["activeFilter"] != string(models.StatusPublished) {
		t.Errorf("expected published tab, got %v", result["activeFilter"])
	}
	if postStore.ActiveFilter() != models.StatusPublished {
		t.Errorf("filter switch did not reach the store")
	}
}

func TestPostsListRejectsUnknownStatus(t *testing.T) {
	engine, _ := newPostsEngine(t)

	resp := call(t, engine, rpcBody(t, "posts.list", gin.H{"status": "trending"}))
	if resp.Error == nil || resp.Error.Code != ErrInvalidParams {
		t.Fatalf("expected invalid params, got %+v", resp.Error)
	}
}

func TestCreateDraftFlow(t *testing.T) {
	engine, postStore := newPostsEngine(t)

	result := resultMap(t, call(t, engine, rpcBody(t, "posts.create_draft", gin.H{
		"images":      []string{"https://example.com/new.jpg"},
		"description": "New lash extension set",
	})))

	id, ok := result["id"].(string)
	if !ok || id == "" {
		t.Fatalf("expected generated id, got %v", result["id"])
	}

	post, found := postStore.Get(id)
	if !found {
		t.Fatal("draft not found in store")
	}
	if !post.IsGenerating {
		t.Error("new draft should be generating")
	}
	if post.Status != models.StatusDraft {
		t.Errorf("expected draft status, got %q", post.Status)
	}

	// The new draft must surface at the top of the draft tab
	list := resultMap(t, call(t, engine, rpcBody(t, "posts.list", nil)))
	posts := list["posts"].([]interface{})
	first := posts[0].(map[string]interface{})
	if first["id"] != id {
		t.Errorf("expected new draft first, got %v", first["id"])
	}
}

func TestCreateDraftSanitizesDescription(t *testing.T) {
	engine, postStore := newPostsEngine(t)

	result := resultMap(t, call(t, engine, rpcBody(t, "posts.create_draft", gin.H{
		"description": `<script>alert(1)</script>Spring facial promo`,
	})))

	post, _ := postStore.Get(result["id"].(string))
	if post.OriginalDescription != "Spring facial promo" {
		t.Errorf("expected sanitized description, got %q", post.OriginalDescription)
	}
}

func TestApproveAndReject(t *testing.T) {
	engine, postStore := newPostsEngine(t)

	result := resultMap(t, call(t, engine, rpcBody(t, "posts.approve", gin.H{"id": "2002"})))
	if result["status"] != string(models.StatusPublished) {
		t.Errorf("expected published after approve, got %v", result["status"])
	}
	if result["reviewStatus"] != string(models.ReviewApproved) {
		t.Errorf("expected approved review status, got %v", result["reviewStatus"])
	}
	post, _ := postStore.Get("2002")
	if post.ScheduledAt == nil {
		t.Error("approve should stamp the publish time")
	}

	result = resultMap(t, call(t, engine, rpcBody(t, "posts.reject", gin.H{"id": "2001"})))
	if result["reviewStatus"] != string(models.ReviewRejected) {
		t.Errorf("expected rejected review status, got %v", result["reviewStatus"])
	}
	if result["status"] != string(models.StatusPublished) {
		t.Errorf("reject must not change publication status, got %v", result["status"])
	}
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	engine, _ := newPostsEngine(t)

	resp := call(t, engine, rpcBody(t, "posts.update", gin.H{
		"id":    "9999",
		"patch": gin.H{"content": "updated"},
	}))
	if resp.Error == nil || resp.Error.Code != ErrNotFound {
		t.Fatalf("expected not-found, got %+v", resp.Error)
	}
}

func TestRemovePost(t *testing.T) {
	engine, postStore := newPostsEngine(t)

	resultMap(t, call(t, engine, rpcBody(t, "posts.remove", gin.H{"id": "2002"})))
	if _, found := postStore.Get("2002"); found {
		t.Error("post should be gone after remove")
	}

	resp := call(t, engine, rpcBody(t, "posts.remove", gin.H{"id": "2002"}))
	if resp.Error == nil || resp.Error.Code != ErrNotFound {
		t.Fatalf("expected not-found on second remove, got %+v", resp.Error)
	}
}

func TestPostsCounts(t *testing.T) {
	engine, _ := newPostsEngine(t)

	result := resultMap(t, call(t, engine, rpcBody(t, "posts.counts", nil)))
	counts := result["counts"].(map[string]interface{})
	if counts["published"] != float64(1) || counts["draft"] != float64(1) {
		t.Errorf("unexpected counts: %v", counts)
	}
	if result["isGenerating"] != false {
		t.Errorf("expected no generating draft, got %v", result["isGenerating"])
	}
}

func TestPreviewMethod(t *testing.T) {
	engine, _ := newPostsEngine(t)

	result := resultMap(t, call(t, engine, rpcBody(t, "posts.preview", gin.H{
		"content":  "Hello world",
		"hashtags": "#beauty #selfcare #professional #transformation #confidence",
		"limit":    20,
	})))
	if result["content"] != "Hello world" {
		t.Errorf("short content must stay intact, got %v", result["content"])
	}
	if result["hashtags"] != "#beauty " {
		t.Errorf("expected hashtags cut to the remaining budget, got %q", result["hashtags"])
	}
	if result["shouldShowMore"] != true {
		t.Error("expected shouldShowMore for truncated hashtags")
	}
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := newPostsEngine(t)

	for _, path := range []string{"/health", "/.well-known/healthcheck.json"} {
		w := performGET(engine, path)
		if w.Code != 200 {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}
