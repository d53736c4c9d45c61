// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyUsername is returned when a member is created without a username.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyPassword is returned when a member has no stored credential.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrEmptyNickname is returned when a member is created without a nickname.
	ErrEmptyNickname = errors.New("nickname cannot be empty")

	// ErrEmptyAPIKey is returned when a member has no API key assigned.
	ErrEmptyAPIKey = errors.New("api key cannot be empty")

	// ErrNoAuthor is returned when a post is created without an author.
	ErrNoAuthor = errors.New("post must have an author")

	// ErrEmptyTitle is returned when a post is created with an empty title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyContent is returned when a post is created with empty content.
	ErrEmptyContent = errors.New("content cannot be empty")
)
