package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	NoSummary       = "No summary available."
	NotFoundLink    = "#"
	NotFoundSummary = "Article details not found."
	UnknownSource   = "Unknown"
)

type Article struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Summary   string     `json:"summary"`
	Published *time.Time `json:"published"`
	Source    string     `json:"source"`
}

// ArticleID derives a stable identifier from link and title so the same
// entry fetched twice gets the same ID.
func ArticleID(link, title string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(link+"\n"+title)).String()
}

// StubArticle stands in for a title the LLM referenced but no fetched article carries.
func StubArticle(title string) Article {
	return Article{
		Title:   title,
		Link:    NotFoundLink,
		Summary: NotFoundSummary,
		Source:  UnknownSource,
	}
}
