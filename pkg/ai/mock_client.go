package ai

import (
	"context"
	"strings"
)

type mockClient struct{}

// NewMock returns canned advice so the app runs without provider credentials.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	tips := []string{"- Scout each field weekly for pests and record what you find."}
	p := strings.ToLower(prompt)
	if strings.Contains(p, "irrigat") || strings.Contains(p, "dry") {
		tips = append(tips, "- Irrigate early in the morning and check soil moisture at root depth before the next cycle.")
	}
	if strings.Contains(p, "harvest") {
		tips = append(tips, "- Confirm grain moisture before harvest and plan storage ahead of the forecast rain.")
	}
	if strings.Contains(p, "sow") || strings.Contains(p, "plant") {
		tips = append(tips, "- Sow once soil temperature is stable and keep seeding depth consistent.")
	}
	return "**Advisory (offline)**\n\n" + strings.Join(tips, "\n"), nil
}
