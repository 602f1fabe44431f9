package seed

import (
	"testing"

	"github.com/postpilot/postpilot/internal/models"
)

func TestPosts(t *testing.T) {
	posts, err := Posts()
	if err != nil {
		t.Fatalf("Posts() error = %v", err)
	}
	if len(posts) == 0 {
		t.Fatal("seed posts are empty")
	}

	seen := make(map[string]bool)
	hasDraft := false
	for _, p := range posts {
		if p.ID == "" {
			t.Error("seed post with empty id")
		}
		if seen[p.ID] {
			t.Errorf("duplicate seed post id %q", p.ID)
		}
		seen[p.ID] = true

		if !models.ValidStatus(p.Status) {
			t.Errorf("seed post %s has invalid status %q", p.ID, p.Status)
		}
		if p.CreatedAt.IsZero() {
			t.Errorf("seed post %s has no createdAt", p.ID)
		}
		if p.Status == models.StatusDraft {
			hasDraft = true
		}
		if p.Status == models.StatusPublished && p.Likes == nil {
			t.Errorf("published seed post %s should carry engagement counters", p.ID)
		}
	}

	// The demo deliberately ships drafts so the app opens on the draft tab
	if !hasDraft {
		t.Error("seed data should include at least one draft")
	}
}

func TestComments(t *testing.T) {
	comments, err := Comments()
	if err != nil {
		t.Fatalf("Comments() error = %v", err)
	}
	if len(comments) == 0 {
		t.Fatal("seed comments are empty")
	}

	booking := 0
	for _, c := range comments {
		if c.AIResponse == "" {
			t.Errorf("seed comment %s has no AI response", c.ID)
		}
		if c.IsBookingInterest {
			booking++
		}
	}
	if booking == 0 {
		t.Error("seed comments should include booking interest examples")
	}
}

func TestIntegrations(t *testing.T) {
	integrations, err := Integrations()
	if err != nil {
		t.Fatalf("Integrations() error = %v", err)
	}
	if len(integrations) == 0 {
		t.Fatal("seed integrations are empty")
	}

	for _, i := range integrations {
		if i.Platform != models.PlatformInstagram && i.Platform != models.PlatformFacebook {
			t.Errorf("integration %s has unknown platform %q", i.ID, i.Platform)
		}
		if i.IsConnected && i.ConnectedAt == nil {
			t.Errorf("connected integration %s has no connectedAt", i.ID)
		}
	}
}

func TestDashboard(t *testing.T) {
	stats, engagement, err := Dashboard()
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if stats.PostsPublished == 0 {
		t.Error("seed dashboard stats look empty")
	}
	if len(engagement) != 7 {
		t.Errorf("expected a full week of engagement, got %d days", len(engagement))
	}
}

func TestServices(t *testing.T) {
	services, err := Services()
	if err != nil {
		t.Fatalf("Services() error = %v", err)
	}
	if len(services) == 0 {
		t.Fatal("seed services are empty")
	}
	for _, s := range services {
		if s.Name == "" || s.Price == "" {
			t.Errorf("seed service %s is missing name or price", s.ID)
		}
	}
}
