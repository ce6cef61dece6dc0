// File: internal/auth/model.go
package auth

// GitHubLoginRequest defines the structure for GitHub session requests.
type GitHubLoginRequest struct {
	Code string `json:"code" binding:"required"`
}
