package wiki

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Phylogenetics", "Category:Phylogenetics"},
		{"Category:Phylogenetics", "Category:Phylogenetics"},
		{"", "Category:"},
	}
	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoryMembersPagination(t *testing.T) {
	var requests []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		requests = append(requests, q.Get("cmcontinue"))

		if q.Get("cmcontinue") == "" {
			fmt.Fprint(w, `{
				"continue": {"cmcontinue": "page|TOKEN", "continue": "-||"},
				"query": {"categorymembers": [
					{"pageid": 1, "ns": 14, "title": "Category:Trees"},
					{"pageid": 2, "ns": 14, "title": "Category:Networks"}
				]}
			}`)
			return
		}
		fmt.Fprint(w, `{
			"query": {"categorymembers": [
				{"pageid": 3, "ns": 14, "title": "Category:Distances"}
			]}
		}`)
	})

	members, err := client.CategoryMembers(context.Background(), "Phylogenetics", NamespaceCategory)
	if err != nil {
		t.Fatalf("CategoryMembers: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("got %d members, want 3", len(members))
	}
	if members[2].Title != "Category:Distances" {
		t.Errorf("members[2].Title = %q", members[2].Title)
	}
	if len(requests) != 2 || requests[1] != "page|TOKEN" {
		t.Errorf("continuation requests = %v", requests)
	}
}

func TestCategoryMembersParams(t *testing.T) {
	tests := []struct {
		name       string
		ns         Namespace
		wantType   string
		wantNS     string
	}{
		{"subcategories", NamespaceCategory, "subcat", "14"},
		{"pages", NamespaceMain, "page", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotType, gotNS, gotTitle string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				gotType = q.Get("cmtype")
				gotNS = q.Get("cmnamespace")
				gotTitle = q.Get("cmtitle")
				fmt.Fprint(w, `{"query":{"categorymembers":[]}}`)
			})

			if _, err := client.CategoryMembers(context.Background(), "Trees", tt.ns); err != nil {
				t.Fatalf("CategoryMembers: %v", err)
			}
			if gotType != tt.wantType {
				t.Errorf("cmtype = %q, want %q", gotType, tt.wantType)
			}
			if gotNS != tt.wantNS {
				t.Errorf("cmnamespace = %q, want %q", gotNS, tt.wantNS)
			}
			if gotTitle != "Category:Trees" {
				t.Errorf("cmtitle = %q, want %q", gotTitle, "Category:Trees")
			}
		})
	}
}

func TestCategoryMembersUnsupportedNamespace(t *testing.T) {
	client := NewClient()
	if _, err := client.CategoryMembers(context.Background(), "Trees", NamespaceTemplate); err == nil {
		t.Fatal("expected error for unsupported namespace")
	}
}

func TestPageCategories(t *testing.T) {
	var clshow string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		clshow = r.URL.Query().Get("clshow")
		fmt.Fprint(w, `{"query":{"pages":{"10":{"pageid":10,"ns":0,"title":"Phylogenetics","categories":[
			{"ns":14,"title":"Category:Evolutionary biology"},
			{"ns":14,"title":"Category:Phylogenetics"}
		]}}}}`)
	})

	categories, err := client.PageCategories(context.Background(), "Phylogenetics", false)
	if err != nil {
		t.Fatalf("PageCategories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	if clshow != "!hidden" {
		t.Errorf("clshow = %q, want %q", clshow, "!hidden")
	}
}

func TestPageCategoriesIncludeHidden(t *testing.T) {
	var clshow string
	seen := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		clshow = r.URL.Query().Get("clshow")
		seen = r.URL.Query().Has("clshow")
		fmt.Fprint(w, `{"query":{"pages":{"10":{"pageid":10,"ns":0,"title":"P","categories":[]}}}}`)
	})

	if _, err := client.PageCategories(context.Background(), "P", true); err != nil {
		t.Fatalf("PageCategories: %v", err)
	}
	if seen && clshow != "" {
		t.Errorf("clshow should be unset when including hidden, got %q", clshow)
	}
}
