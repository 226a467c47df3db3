package wiki

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

// articleHandler serves plaintext extracts for a fixed set of pages and a
// missing-page response for everything else.
func articleHandler(pages map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("titles")
		text, ok := pages[title]
		if !ok {
			fmt.Fprintf(w, `{"query":{"pages":{"-1":{"ns":0,"title":%q,"missing":""}}}}`, title)
			return
		}
		fmt.Fprintf(w, `{"query":{"pages":{"10":{"pageid":10,"ns":0,"title":%q,"extract":%q}}}}`, title, text)
	}
}

func TestArticle(t *testing.T) {
	client := newTestClient(t, articleHandler(map[string]string{
		"Phylogenetics": "The study of evolutionary history.",
	}))

	article, err := client.Article(context.Background(), "Phylogenetics")
	if err != nil {
		t.Fatalf("Article: %v", err)
	}
	if article.Title != "Phylogenetics" {
		t.Errorf("Title = %q, want %q", article.Title, "Phylogenetics")
	}
	if article.Text != "The study of evolutionary history." {
		t.Errorf("unexpected text: %q", article.Text)
	}
	if article.PageID != 10 {
		t.Errorf("PageID = %d, want 10", article.PageID)
	}
	if article.Lang != "en" {
		t.Errorf("Lang = %q, want %q", article.Lang, "en")
	}
}

func TestArticleNotFound(t *testing.T) {
	client := newTestClient(t, articleHandler(nil))

	_, err := client.Article(context.Background(), "No such page")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestArticlesPreservesOrder(t *testing.T) {
	client := newTestClient(t, articleHandler(map[string]string{
		"A": "text a",
		"B": "text b",
		"C": "text c",
	}), WithMaxConcurrency(2))

	articles, err := client.Articles(context.Background(), []string{"C", "A", "B"})
	if err != nil {
		t.Fatalf("Articles: %v", err)
	}
	want := []string{"C", "A", "B"}
	if len(articles) != len(want) {
		t.Fatalf("got %d articles, want %d", len(articles), len(want))
	}
	for i, a := range articles {
		if a.Title != want[i] {
			t.Errorf("articles[%d].Title = %q, want %q", i, a.Title, want[i])
		}
	}
}

func TestArticlesSkipsMissing(t *testing.T) {
	client := newTestClient(t, articleHandler(map[string]string{
		"A": "text a",
		"C": "text c",
	}))

	articles, err := client.Articles(context.Background(), []string{"A", "Missing", "C"})
	if err != nil {
		t.Fatalf("Articles: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].Title != "A" || articles[1].Title != "C" {
		t.Errorf("unexpected titles: %q, %q", articles[0].Title, articles[1].Title)
	}
}

func TestArticlesEmptyInput(t *testing.T) {
	client := newTestClient(t, articleHandler(nil))

	articles, err := client.Articles(context.Background(), nil)
	if err != nil {
		t.Fatalf("Articles: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("got %d articles, want 0", len(articles))
	}
}
