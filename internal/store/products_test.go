package store

import (
	"testing"
	"time"

	"github.com/frdeange/apitoolsnetworking/internal/models"
)

func TestProductCatalogFind(t *testing.T) {
	catalog := NewProductCatalog(Seed(time.Now().UTC()).Products)

	all := catalog.Find("")
	if len(all) != catalog.Len() {
		t.Fatalf("Find(\"\") returned %d products, want %d", len(all), catalog.Len())
	}

	agents := catalog.Find(models.CategoryAIAgents)
	if len(agents) == 0 {
		t.Fatalf("expected at least one AI Agents product in the seed catalog")
	}
	for _, p := range agents {
		if p.Category != models.CategoryAIAgents {
			t.Fatalf("Find(AI Agents) returned product %q in category %q", p.ProductName, p.Category)
		}
	}

	// Category match is exact, not substring.
	if got := catalog.Find(models.ProductCategory("AI")); len(got) != 0 {
		t.Fatalf("Find(\"AI\") = %d products, want 0", len(got))
	}
}
