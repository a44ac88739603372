package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/handler"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// MockAPIClient is a func-field implementation of API
type MockAPIClient struct {
	PlanPotionsFunc  func(context.Context, int, int, domain.PotionTier) (*domain.PotionPlan, error)
	EstimateFunc     func(context.Context, domain.EquipmentSlot, int, map[domain.CrystalType]int64) (*handler.EstimateResponse, error)
	TransferCostFunc func(context.Context, domain.EquipmentSlot, int) (int, error)
	HealthFunc       func(context.Context) error
}

func (m *MockAPIClient) PlanPotions(ctx context.Context, start, end int, tier domain.PotionTier) (*domain.PotionPlan, error) {
	if m.PlanPotionsFunc != nil {
		return m.PlanPotionsFunc(ctx, start, end, tier)
	}
	return &domain.PotionPlan{StartLevel: start, EndLevel: end, Tier: tier}, nil
}

func (m *MockAPIClient) Estimate(ctx context.Context, slot domain.EquipmentSlot, level int, prices map[domain.CrystalType]int64) (*handler.EstimateResponse, error) {
	if m.EstimateFunc != nil {
		return m.EstimateFunc(ctx, slot, level, prices)
	}
	return &handler.EstimateResponse{UpgradeEstimate: &domain.UpgradeEstimate{Slot: slot, CurrentLevel: level}}, nil
}

func (m *MockAPIClient) TransferCost(ctx context.Context, slot domain.EquipmentSlot, level int) (int, error) {
	if m.TransferCostFunc != nil {
		return m.TransferCostFunc(ctx, slot, level)
	}
	return 0, nil
}

func (m *MockAPIClient) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

// TestContext holds a discordgo session whose REST calls are captured
type TestContext struct {
	Session *discordgo.Session

	mu       sync.Mutex
	Deferred int
	Edits    []discordgo.WebhookEdit
	Replies  []discordgo.InteractionResponse
}

// SetupTestContext returns a session that never reaches Discord
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	ctx := &TestContext{Session: session}
	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			ctx.capture(req)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}}
	return ctx
}

func (c *TestContext) capture(req *http.Request) {
	if req.Body == nil {
		return
	}
	body, _ := io.ReadAll(req.Body)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch req.Method {
	case http.MethodPatch:
		var edit discordgo.WebhookEdit
		if json.Unmarshal(body, &edit) == nil {
			c.Edits = append(c.Edits, edit)
		}
	case http.MethodPost:
		var resp discordgo.InteractionResponse
		if json.Unmarshal(body, &resp) == nil {
			if resp.Type == discordgo.InteractionResponseDeferredChannelMessageWithSource {
				c.Deferred++
			} else {
				c.Replies = append(c.Replies, resp)
			}
		}
	}
}

// LastEmbed returns the embed of the final edit
func (c *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.Edits)
	last := c.Edits[len(c.Edits)-1]
	require.NotNil(t, last.Embeds)
	require.NotEmpty(t, *last.Embeds)
	return (*last.Embeds)[0]
}

// LastContent returns the text of the final edit
func (c *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.Edits)
	last := c.Edits[len(c.Edits)-1]
	require.NotNil(t, last.Content)
	return *last.Content
}

// commandInteraction builds an application command interaction with options
func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-id",
			AppID: "app-id",
			Token: "interaction-token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user", Username: "Tester"},
			},
		},
	}
}

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(v),
	}
}

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: v,
	}
}
