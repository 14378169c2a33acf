package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clainai/config"
	"clainai/internal/chat"
	"clainai/internal/conversation"
	"clainai/internal/middleware"
	"clainai/pkg/log"
)

type mockUseCase struct {
	out   chat.HandleMessageOutput
	err   error
	input chat.HandleMessageInput
}

func (m *mockUseCase) HandleMessage(_ context.Context, in chat.HandleMessageInput) (chat.HandleMessageOutput, error) {
	m.input = in
	if m.err != nil && m.out.Reply == "" {
		return chat.HandleMessageOutput{}, m.err
	}
	return m.out, m.err
}

func (m *mockUseCase) History(_ context.Context, in chat.HistoryInput) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{Messages: []conversation.Message{
		{Role: conversation.RoleUser, Content: "q"},
		{Role: conversation.RoleAssistant, Content: "a", ModelUsed: "llm"},
	}}, nil
}

func (m *mockUseCase) ClearConversation(_ context.Context, id string) (conversation.Message, error) {
	return conversation.Message{ConversationID: id, Role: conversation.RoleAssistant, Content: "welcome", ModelUsed: conversation.ModelWelcome}, nil
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{}, "test")
	RegisterRoutes(r.Group("/api", mw.Session()), New(log.NewNop(), uc))
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderSessionID, "s1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat_OK(t *testing.T) {
	uc := &mockUseCase{out: chat.HandleMessageOutput{Reply: "hello", Source: chat.SourceProvider, Provenance: "llm", Persisted: true, IsInstruction: true}}
	r := newTestRouter(uc)

	w := post(r, "/api/chat", `{"message":"hi","user_name":"Sara","login_provider":"github"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data chatResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "hello", body.Data.Response)
	assert.Equal(t, "provider", body.Data.Source)
	assert.True(t, body.Data.Persisted)
	assert.True(t, body.Data.IsInstruction)

	assert.Equal(t, "s1", uc.input.ConversationID)
	assert.Equal(t, "Sara", uc.input.Options.UserName)
	assert.Equal(t, "github", uc.input.Options.LoginProvider)
}

func TestChat_StoreErrorStillReplies(t *testing.T) {
	uc := &mockUseCase{
		out: chat.HandleMessageOutput{Reply: "ephemeral", Source: chat.SourceFallback, Provenance: chat.ProvenanceNone},
		err: &chat.StoreError{Op: "append reply", Err: errors.New("disk full")},
	}
	w := post(newTestRouter(uc), "/api/chat", `{"message":"hi"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"persisted":false`)
	assert.Contains(t, w.Body.String(), `"is_instruction":false`)
	assert.Contains(t, w.Body.String(), "ephemeral")
}

func TestChat_Validation(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"empty", chat.ErrEmptyMessage},
		{"too long", chat.ErrMessageTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(newTestRouter(&mockUseCase{err: tt.err}), "/api/chat", `{"message":""}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestConversationAndClear(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/conversation?limit=5", nil)
	req.Header.Set(middleware.HeaderSessionID, "s1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data conversationResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Messages, 2)
	assert.Equal(t, "assistant", body.Data.Messages[1].Role)

	w = post(r, "/api/clear", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "welcome")
}
