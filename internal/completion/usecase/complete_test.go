package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clainai/internal/completion"
	"clainai/internal/conversation"
	"clainai/internal/shortcut"
	"clainai/pkg/llmprovider"
	"clainai/pkg/log"
)

type stubProvider struct {
	name   string
	result llmprovider.Result
	calls  int
	got    *llmprovider.Request
}

func (p *stubProvider) Complete(_ context.Context, req *llmprovider.Request) llmprovider.Result {
	p.calls++
	p.got = req
	return p.result
}

func (p *stubProvider) Name() string  { return p.name }
func (p *stubProvider) Model() string { return p.name + "-model" }

func ok(name, content string) *stubProvider {
	return &stubProvider{name: name, result: llmprovider.Succeeded(&llmprovider.Response{
		Content: content,
		Usage:   &llmprovider.Usage{TotalTokens: 42},
	})}
}

func failing(name string) *stubProvider {
	return &stubProvider{name: name, result: llmprovider.SoftFail(llmprovider.ReasonStatus, errors.New("503"))}
}

func newManager(t *testing.T, providers ...*stubProvider) *llmprovider.Manager {
	t.Helper()
	entries := make([]llmprovider.Entry, len(providers))
	for i, p := range providers {
		entries[i] = llmprovider.Entry{ID: p.name, Priority: i, Enabled: true, Provider: p}
	}
	reg, err := llmprovider.NewRegistry(entries...)
	require.NoError(t, err)
	return llmprovider.NewManager(reg, &llmprovider.Config{RetryAttempts: 1}, log.NewNop())
}

var testIdentity = shortcut.Identity{
	AssistantName:    "ClainAI",
	DeveloperName:    "Dev",
	DeveloperContact: "dev@example.com",
}

func newTestUseCase(t *testing.T, m *llmprovider.Manager, generic ...string) *implUseCase {
	t.Helper()
	uc, err := New(log.NewNop(), m, Config{
		Identity:       testIdentity,
		HistoryWindow:  6,
		MaxTokens:      4000,
		Temperature:    0.7,
		GenericReplies: generic,
	})
	require.NoError(t, err)
	return uc.(*implUseCase)
}

func history(n int) []conversation.Message {
	msgs := make([]conversation.Message, n)
	for i := range msgs {
		role := conversation.RoleUser
		if i%2 == 1 {
			role = conversation.RoleAssistant
		}
		msgs[i] = conversation.Message{Role: role, Content: fmt.Sprintf("h%d", i)}
	}
	return msgs
}

func TestComplete_FirstSuccessWins(t *testing.T) {
	a, b, c := failing("a"), ok("b", "answer from b"), ok("c", "answer from c")
	uc := newTestUseCase(t, newManager(t, a, b, c))

	out := uc.Complete(context.Background(), completion.CompleteInput{Message: "سؤال"})

	assert.Equal(t, "answer from b", out.Reply)
	assert.Equal(t, "b", out.ProviderUsed)
	assert.Equal(t, "b-model", out.Model)
	assert.Equal(t, 42, out.TokensUsed)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 0, c.calls)

	require.NotNil(t, b.got)
	assert.Equal(t, 4000, b.got.MaxTokens)
	assert.Equal(t, 0.7, b.got.Temperature)
}

func TestComplete_PromptKeepsTrailingWindow(t *testing.T) {
	p := ok("a", "fine")
	uc := newTestUseCase(t, newManager(t, p))

	uc.Complete(context.Background(), completion.CompleteInput{
		Message: "new question",
		History: history(10),
		Options: completion.Options{UserName: "سارة", LoginProvider: "Google"},
	})

	require.NotNil(t, p.got)
	msgs := p.got.Messages
	require.Len(t, msgs, 1+6+1)

	assert.Equal(t, llmprovider.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "ClainAI")
	assert.Contains(t, msgs[0].Content, "Dev (dev@example.com)")
	assert.Contains(t, msgs[0].Content, "سارة (الدخول باستخدام Google)")

	want := []llmprovider.Message{
		{Role: llmprovider.RoleUser, Content: "h4"},
		{Role: llmprovider.RoleAssistant, Content: "h5"},
		{Role: llmprovider.RoleUser, Content: "h6"},
		{Role: llmprovider.RoleAssistant, Content: "h7"},
		{Role: llmprovider.RoleUser, Content: "h8"},
		{Role: llmprovider.RoleAssistant, Content: "h9"},
		{Role: llmprovider.RoleUser, Content: "new question"},
	}
	if diff := cmp.Diff(want, msgs[1:]); diff != "" {
		t.Errorf("prompt mismatch (-want +got):\n%s", diff)
	}
}

func TestComplete_ShortHistoryAndDefaultUser(t *testing.T) {
	uc := newTestUseCase(t, nil, "generic")

	msgs := uc.buildMessages(completion.CompleteInput{Message: "q", History: history(2)})

	require.Len(t, msgs, 4)
	assert.Contains(t, msgs[0].Content, "المستخدم (الدخول باستخدام ضيف)")
	assert.Equal(t, "q", msgs[3].Content)
}

func TestComplete_AllFailUsesFallback(t *testing.T) {
	uc := newTestUseCase(t, newManager(t, failing("a"), failing("b")), "generic one", "generic two")
	uc.fallback.pick = func(int) int { return 1 }

	out := uc.Complete(context.Background(), completion.CompleteInput{Message: "ما عاصمة فرنسا؟"})

	assert.Equal(t, "generic two", out.Reply)
	assert.Equal(t, completion.ProviderFallback, out.ProviderUsed)
}

func TestComplete_EmptyRegistryUsesFallback(t *testing.T) {
	reg, err := llmprovider.NewRegistry()
	require.NoError(t, err)
	m := llmprovider.NewManager(reg, nil, log.NewNop())
	uc := newTestUseCase(t, m, "generic")

	out := uc.Complete(context.Background(), completion.CompleteInput{Message: "anything"})

	assert.NotEmpty(t, out.Reply)
	assert.Equal(t, completion.ProviderFallback, out.ProviderUsed)
}

func TestComplete_FallbackTopicMatch(t *testing.T) {
	uc := newTestUseCase(t, newManager(t, failing("a")), "generic")

	tests := []struct {
		msg  string
		want topic
	}{
		{"مرحباً كيف حالك", topicGreeting},
		{"Thanks a lot", topicThanks},
		{"اكتب كود بايثون", topicProgramming},
		{"I need help", topicHelp},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			spec, matched := matchTopic(tt.msg)
			require.True(t, matched)
			assert.Equal(t, tt.want, spec.topic)

			out := uc.Complete(context.Background(), completion.CompleteInput{Message: tt.msg})
			assert.Equal(t, spec.reply, out.Reply)
		})
	}
}

func TestComplete_CanceledContextStillReplies(t *testing.T) {
	p := ok("a", "late")
	uc := newTestUseCase(t, newManager(t, p), "generic")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := uc.Complete(ctx, completion.CompleteInput{Message: "q"})

	assert.Equal(t, completion.ProviderFallback, out.ProviderUsed)
	assert.Equal(t, "generic", out.Reply)
	assert.Equal(t, 0, p.calls)
}

func TestNew_NoCompletionSource(t *testing.T) {
	reg, err := llmprovider.NewRegistry(llmprovider.Entry{ID: "off", Enabled: false, Provider: ok("off", "x")})
	require.NoError(t, err)

	_, err = New(log.NewNop(), llmprovider.NewManager(reg, nil, log.NewNop()), Config{})
	assert.ErrorIs(t, err, completion.ErrNoCompletionSource)

	_, err = New(log.NewNop(), nil, Config{GenericReplies: []string{"ok"}})
	assert.NoError(t, err)
}
