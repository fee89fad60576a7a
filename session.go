package readview

import (
	"context"

	"github.com/google/uuid"
)

// SessionState is the caller-visible state of an article request.
type SessionState string

// Session states.
const (
	StateLoading SessionState = "loading"
	StateReady   SessionState = "ready"
	StateError   SessionState = "error"
)

// Session tracks a single article request for presentation.
// Sessions are values; settling a session produces a new one with the same ID
// so a caller can discard completions for requests it has abandoned.
type Session struct {
	ID        string
	URL       string
	TitleHint string
	State     SessionState
	Article   *Article
	Err       error
}

// NewSession returns a loading session for rawURL.
func NewSession(rawURL, titleHint string) Session {
	return Session{
		ID:        uuid.NewString(),
		URL:       rawURL,
		TitleHint: titleHint,
		State:     StateLoading,
	}
}

// Settle returns the session moved to Ready or Error depending on err.
func (s Session) Settle(article *Article, err error) Session {
	if err != nil {
		s.State = StateError
		s.Article = nil
		s.Err = err
		return s
	}
	s.State = StateReady
	s.Article = article
	s.Err = nil
	return s
}

// DisplayTitle returns the best title available for the session.
func (s Session) DisplayTitle() string {
	if s.State == StateReady && s.Article != nil && s.Article.Title != "" {
		return s.Article.Title
	}
	if s.TitleHint != "" {
		return s.TitleHint
	}
	return s.URL
}

// Open starts loading rawURL in the background. It returns the loading
// session immediately and delivers the settled session on the channel.
func Open(ctx context.Context, svc ArticleService, rawURL, titleHint string) (Session, <-chan Session) {
	s := NewSession(rawURL, titleHint)
	ch := make(chan Session, 1)
	go func() {
		defer close(ch)
		article, err := svc.Load(ctx, rawURL, titleHint)
		ch <- s.Settle(article, err)
	}()
	return s, ch
}
