package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type kind int

const (
	kindPlanets kind = iota
	kindPeople
)

func (k kind) String() string {
	if k == kindPeople {
		return "people"
	}
	return "planets"
}

// favoritePath is the segment used under /favorite/ for this kind.
func (k kind) favoritePath() string {
	if k == kindPeople {
		return "people"
	}
	return "planet"
}

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type loginSuccessMsg struct{ token string }
type itemsLoadedMsg struct {
	kind  kind
	items []item
}
type favoriteAddedMsg struct{ name string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *apiClient) login(username, password string) tea.Cmd {
	return func() tea.Msg {
		payload, _ := json.Marshal(map[string]string{
			"username": username,
			"password": password,
		})

		resp, err := c.http.Post(c.baseURL+"/login", "application/json", bytes.NewReader(payload))
		if err != nil {
			return errMsg{fmt.Errorf("API not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{readError(resp)}
		}

		var result struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Token == "" {
			return errMsg{fmt.Errorf("login response carried no token")}
		}
		return loginSuccessMsg{token: result.Token}
	}
}

func (c *apiClient) listItems(k kind) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.http.Get(c.baseURL + "/" + k.String())
		if err != nil {
			return errMsg{fmt.Errorf("API not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{readError(resp)}
		}

		var items []item
		if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
			return errMsg{fmt.Errorf("decode %s: %w", k, err)}
		}
		return itemsLoadedMsg{kind: k, items: items}
	}
}

func (c *apiClient) addFavorite(token string, k kind, it item) tea.Cmd {
	return func() tea.Msg {
		url := fmt.Sprintf("%s/favorite/%s/%d", c.baseURL, k.favoritePath(), it.ID)
		req, _ := http.NewRequest(http.MethodPost, url, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := c.http.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("API not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			return errMsg{readError(resp)}
		}
		return favoriteAddedMsg{name: it.Name}
	}
}

// readError turns a {message, status_code} body into an error.
func readError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return fmt.Errorf("API returned %d", resp.StatusCode)
	}
	return fmt.Errorf("%s (%d)", body.Message, resp.StatusCode)
}
