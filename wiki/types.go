package wiki

// LinkDirection selects incoming or outgoing page links.
type LinkDirection string

const (
	// Incoming selects pages that link to the queried page.
	Incoming LinkDirection = "incoming"
	// Outgoing selects pages the queried page links to.
	Outgoing LinkDirection = "outgoing"
)

// Namespace is a MediaWiki namespace identifier.
type Namespace int

// Namespaces used by this client.
const (
	NamespaceMain     Namespace = 0
	NamespaceTemplate Namespace = 10
	NamespaceCategory Namespace = 14
)

// Article is the plaintext extract of a Wikipedia article.
type Article struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	PageID int    `json:"pageid"`
	Lang   string `json:"lang"`
}

// CategoryMember is a page or subcategory within a category.
type CategoryMember struct {
	PageID int    `json:"pageid"`
	NS     int    `json:"ns"`
	Title  string `json:"title"`
}

// PageLink is a link to or from a Wikipedia page.
type PageLink struct {
	PageID int    `json:"pageid"`
	NS     int    `json:"ns"`
	Title  string `json:"title"`
}

// apiResponse is the MediaWiki API response envelope.
type apiResponse struct {
	Error    *apiErrorBody     `json:"error"`
	Continue map[string]string `json:"continue"`
	Query    *queryBody        `json:"query"`
}

type apiErrorBody struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// queryBody holds the query result fields used by this client. The API only
// populates the fields relevant to the request; the rest stay zero.
type queryBody struct {
	Pages           map[string]pageBody `json:"pages"`
	CategoryMembers []CategoryMember    `json:"categorymembers"`
	Redirects       []redirectEntry     `json:"redirects"`
	Normalized      []redirectEntry     `json:"normalized"`
}

type redirectEntry struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type pageBody struct {
	PageID     int         `json:"pageid"`
	NS         int         `json:"ns"`
	Title      string      `json:"title"`
	Missing    *string     `json:"missing"`
	Extract    string      `json:"extract"`
	Links      []PageLink  `json:"links"`
	LinksHere  []PageLink  `json:"linkshere"`
	Categories []titleOnly `json:"categories"`
	Templates  []titleOnly `json:"templates"`
	Redirects  []titleOnly `json:"redirects"`
}

type titleOnly struct {
	NS    int    `json:"ns"`
	Title string `json:"title"`
}

// firstPage returns the single page entry of a titles= query. The API keys
// the pages object by page ID, so the one entry has an unknown key.
func firstPage(q *queryBody) (*pageBody, bool) {
	if q == nil {
		return nil, false
	}
	for _, p := range q.Pages {
		return &p, true
	}
	return nil, false
}
