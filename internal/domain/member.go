package domain

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a registered member of the board. Entities never reach
// the wire directly (views in the api package are the serialized shapes), but
// Password and APIKey keep json:"-" so an accidental marshal can never leak
// the bcrypt hash or the bearer token.
type Member struct {
	ID         int64
	Username   string
	Password   string `json:"-"`
	Nickname   string
	APIKey     string `json:"-"`
	CreateDate time.Time
	ModifyDate time.Time
}

// NewMember creates a new Member with the given username, hashed password and
// nickname. It assigns a fresh API key and sets the creation/modification
// timestamps. The ID is assigned by the store on creation.
// Returns an error if validation fails.
//
// NOTE: The caller is responsible for hashing the password before calling
// this function; NewMember never sees the plaintext credential.
func NewMember(username, hashedPassword, nickname string) (*Member, error) {
	now := time.Now()
	member := &Member{
		Username:   username,
		Password:   hashedPassword,
		Nickname:   nickname,
		APIKey:     uuid.NewString(),
		CreateDate: now,
		ModifyDate: now,
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}

	return member, nil
}

// Validate checks if the Member has valid data.
// Returns an error if any field fails validation.
func (m *Member) Validate() error {
	if m.Username == "" {
		return ErrEmptyUsername
	}
	if m.Password == "" {
		return ErrEmptyPassword
	}
	if m.Nickname == "" {
		return ErrEmptyNickname
	}
	if m.APIKey == "" {
		return ErrEmptyAPIKey
	}
	return nil
}
