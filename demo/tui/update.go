package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case ArticlesLoadedMsg:
		return m.handleArticlesLoaded(msg)
	case ArticleLoadedMsg:
		return m.handleArticleLoaded(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.State == StateSearch {
		return m.handleSearchInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.State == StateList && m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.State == StateList && m.Cursor < len(m.Posts)-1 {
			m.Cursor++
		}
	case "enter":
		if m.State == StateList && len(m.Posts) > 0 {
			m.State = StateLoading
			return m, fetchArticle(m.Client, m.Posts[m.Cursor].ID)
		}
	case "esc":
		if m.State == StateReading {
			m.State = StateList
			m.Current = nil
		}
	case "/":
		if m.State == StateList {
			m.State = StateSearch
			m.Query = ""
		}
	case "r":
		if m.State == StateList {
			m.State = StateLoading
			m.Searched = false
			m.Cursor = 0
			return m, fetchArticles(m.Client)
		}
	}
	return m, nil
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.State = StateList
		m.Query = ""
	case "enter":
		if m.Query != "" {
			m.State = StateLoading
			m.Cursor = 0
			return m, runSearch(m.Client, m.Query)
		}
	case "backspace":
		if len(m.Query) > 0 {
			m.Query = m.Query[:len(m.Query)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.Query += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.Query += " "
		}
	}
	return m, nil
}

func (m Model) handleArticlesLoaded(msg ArticlesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Posts = msg.Posts
	m.Searched = msg.Searched
	m.Cursor = 0
	m.State = StateList
	return m, nil
}

func (m Model) handleArticleLoaded(msg ArticleLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Current = msg.Post
	m.State = StateReading
	return m, nil
}
