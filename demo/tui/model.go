package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"newsdesk/types"
)

// State represents the browser's view state
type State string

const (
	StateLoading State = "loading"
	StateList    State = "list"
	StateReading State = "reading"
	StateSearch  State = "search"
	StateError   State = "error"
)

// Model is the headline browser state.
type Model struct {
	Client *APIClient

	State    State
	Posts    []types.BlogPost
	Cursor   int
	Current  *types.BlogPost
	Query    string // search input buffer
	Searched bool   // whether Posts holds search results
	Err      error
}

// NewModel creates a browser pointed at the given API base URL.
func NewModel(apiURL string) Model {
	return Model{
		Client: NewAPIClient(apiURL),
		State:  StateLoading,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return fetchArticles(m.Client)
}

// Messages

// ArticlesLoadedMsg carries the fetched feed (or search results).
type ArticlesLoadedMsg struct {
	Posts    []types.BlogPost
	Searched bool
	Err      error
}

// ArticleLoadedMsg carries one expanded article.
type ArticleLoadedMsg struct {
	Post *types.BlogPost
	Err  error
}

// Commands

func fetchArticles(client *APIClient) tea.Cmd {
	return func() tea.Msg {
		posts, err := client.GetArticles(20)
		return ArticlesLoadedMsg{Posts: posts, Err: err}
	}
}

func fetchArticle(client *APIClient, id string) tea.Cmd {
	return func() tea.Msg {
		post, err := client.GetArticle(id)
		return ArticleLoadedMsg{Post: post, Err: err}
	}
}

func runSearch(client *APIClient, query string) tea.Cmd {
	return func() tea.Msg {
		posts, err := client.Search(query)
		return ArticlesLoadedMsg{Posts: posts, Searched: true, Err: err}
	}
}
