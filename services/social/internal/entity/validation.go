package entity

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 10
	// MaxPasswordBytes is the longest input bcrypt hashes.
	MaxPasswordBytes = 72
	MinStarRating     = 0
	MaxStarRating     = 5
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[a-zA-Z]{2,}$`)

// NormalizeEmail is the form emails are validated, stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// ValidateUser checks email, then password, then username.
func ValidateUser(email, username, password string) error {
	if !emailPattern.MatchString(NormalizeEmail(email)) {
		return invalid("email", "email is not valid")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return invalid("password", "password is too short")
	}
	if len(password) > MaxPasswordBytes {
		return invalid("password", "password is too long")
	}
	if blank(username) {
		return invalid("username", "username cannot be empty")
	}
	return nil
}

func ValidateReview(title, body, albumID string, starRating int) error {
	if blank(title) || blank(body) {
		return invalid("title", "title and body cannot be empty")
	}
	if blank(albumID) {
		return invalid("albumId", "review needs an albumId")
	}
	return ValidateStarRating(starRating)
}

func ValidateStarRating(starRating int) error {
	if starRating < MinStarRating || starRating > MaxStarRating {
		return invalid("starRating", "starRating should be between 0 and 5 inclusively")
	}
	return nil
}

func ValidateList(title, description string, albumIDs []string) error {
	if blank(title) || blank(description) {
		return invalid("title", "title and description cannot be empty")
	}
	if len(albumIDs) == 0 {
		return invalid("albumIds", "list albumIds cannot be empty")
	}
	for _, id := range albumIDs {
		if blank(id) {
			return invalid("albumIds", "list albumIds cannot contain empty values")
		}
	}
	return nil
}

func ValidateComment(body string, reviewID uint) error {
	if blank(body) {
		return invalid("body", "comment cannot be empty")
	}
	if reviewID == 0 {
		return invalid("reviewId", "comment must belong to a review")
	}
	return nil
}
