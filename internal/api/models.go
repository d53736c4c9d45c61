package api

import (
	"time"

	"github.com/yundol-dev/board-api/internal/domain"
)

// dateLayout is the fixed-width serialization format for timestamps.
// All date fields render as 26-character strings with microsecond precision
// so that responses are byte-stable across runs.
const dateLayout = "2006-01-02T15:04:05.000000"

// formatDate renders a timestamp in the canonical fixed-width format.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// JoinRequest defines the payload for the member join endpoint.
type JoinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// constraints returns the field constraint table for the payload.
func (r JoinRequest) constraints() []FieldConstraint {
	return []FieldConstraint{
		NotBlank("username", r.Username),
		Length("username", r.Username, 2, 30),
		NotBlank("password", r.Password),
		Length("password", r.Password, 4, 50),
		NotBlank("nickname", r.Nickname),
		Length("nickname", r.Nickname, 2, 30),
	}
}

// LoginRequest defines the payload for the member login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) constraints() []FieldConstraint {
	return []FieldConstraint{
		NotBlank("username", r.Username),
		NotBlank("password", r.Password),
	}
}

// WritePostRequest defines the payload for the post creation endpoint.
type WritePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r WritePostRequest) constraints() []FieldConstraint {
	return []FieldConstraint{
		NotBlank("title", r.Title),
		Length("title", r.Title, 2, 100),
		NotBlank("content", r.Content),
		Length("content", r.Content, 2, 10000000),
	}
}

// MemberView is the client-facing projection of a member.
// It never carries the username, password or API key; the login endpoint
// exposes the API key once, next to the view, not inside it.
type MemberView struct {
	ID         int64  `json:"id"`
	CreateDate string `json:"createDate"`
	ModifyDate string `json:"modifyDate"`
	Nickname   string `json:"nickname"`
}

// NewMemberView builds the client-facing projection of a member.
func NewMemberView(m *domain.Member) MemberView {
	return MemberView{
		ID:         m.ID,
		CreateDate: formatDate(m.CreateDate),
		ModifyDate: formatDate(m.ModifyDate),
		Nickname:   m.Nickname,
	}
}

// LoginData is the data payload of a successful login: the member view plus
// the member's API key, deliberately exposed at login time only.
type LoginData struct {
	Item   MemberView `json:"item"`
	APIKey string     `json:"apiKey"`
}

// PostView is the client-facing projection of a post.
type PostView struct {
	ID         int64  `json:"id"`
	CreateDate string `json:"createDate"`
	ModifyDate string `json:"modifyDate"`
	AuthorID   int64  `json:"authorId"`
	AuthorName string `json:"authorName"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// NewPostView builds the client-facing projection of a post.
func NewPostView(p *domain.Post) PostView {
	return PostView{
		ID:         p.ID,
		CreateDate: formatDate(p.CreateDate),
		ModifyDate: formatDate(p.ModifyDate),
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		Title:      p.Title,
		Content:    p.Content,
	}
}
