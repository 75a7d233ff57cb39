package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mall-backend/internal/chat"
	chathttp "mall-backend/internal/chat/delivery/http"
	"mall-backend/internal/chat/intent"
	"mall-backend/internal/middleware"
	"mall-backend/internal/model"
	"mall-backend/pkg/ark"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	chat.UseCase

	chatOut  chat.ChatOutput
	chatErr  error
	gotInput chat.ChatInput
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	m.gotInput = input
	return m.chatOut, m.chatErr
}

func newChatRouter(uc chat.UseCase, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := chathttp.New(&mockLogger{}, uc)
	r.POST("/api/ai/chat", func(c *gin.Context) {
		if authed {
			middleware.SetScope(c, model.Scope{UserID: 3, Username: "123456"})
		}
	}, h.Chat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatHandler(t *testing.T) {
	const reqBody = `{"model":"m","messages":[{"role":"user","content":"有什么手机"}]}`

	t.Run("Success Returns Unwrapped Choices And Products", func(t *testing.T) {
		uc := &mockUseCase{chatOut: chat.ChatOutput{
			Reply:  model.AIMessage{Role: ark.RoleAssistant, Content: "为您推荐以下商品"},
			Intent: intent.MallSpecific,
			Products: []model.Product{
				{ID: "1", Name: "华为手机", Price: 1999.0, Image: "p.jpg", Description: "旗舰"},
			},
		}}
		w := postChat(t, newChatRouter(uc, true), reqBody)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Status  string `json:"status"`
			Choices []struct {
				Message struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"message"`
			} `json:"choices"`
			Products []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"products"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Status != "" {
			t.Error("chat responses must not carry the status envelope")
		}
		if len(body.Choices) != 1 || body.Choices[0].Message.Content != "为您推荐以下商品" {
			t.Errorf("unexpected choices: %+v", body.Choices)
		}
		if body.Choices[0].Message.Role != ark.RoleAssistant {
			t.Errorf("expected assistant role, got %q", body.Choices[0].Message.Role)
		}
		if len(body.Products) != 1 || body.Products[0].Name != "华为手机" {
			t.Errorf("unexpected products: %+v", body.Products)
		}

		if len(uc.gotInput.Messages) != 1 || uc.gotInput.Messages[0].Content.FlattenText() != "有什么手机" {
			t.Errorf("unexpected input passed through: %+v", uc.gotInput)
		}
	})

	t.Run("Validation Failure Returns Bare Error", func(t *testing.T) {
		uc := &mockUseCase{chatErr: chat.ErrNoMessages}
		w := postChat(t, newChatRouter(uc, true), `{"messages":[]}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if _, ok := body["error"]; !ok {
			t.Errorf("expected an error field, got %v", body)
		}
		if _, ok := body["status"]; ok {
			t.Errorf("chat errors must not carry the status envelope, got %v", body)
		}
	})

	t.Run("Malformed Body Returns Bare Error", func(t *testing.T) {
		w := postChat(t, newChatRouter(&mockUseCase{}, true), `{"messages":`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if _, ok := body["error"]; !ok {
			t.Errorf("expected an error field, got %v", body)
		}
	})

	t.Run("Completion Failure Returns Error And Message", func(t *testing.T) {
		uc := &mockUseCase{chatErr: chat.ErrCompletionFailed}
		w := postChat(t, newChatRouter(uc, true), reqBody)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["error"] != "AI服务调用失败" {
			t.Errorf("unexpected error field: %v", body)
		}
		if body["message"] == "" {
			t.Errorf("expected a message field, got %v", body)
		}
	})

	t.Run("Missing Scope Returns Unauthorized", func(t *testing.T) {
		w := postChat(t, newChatRouter(&mockUseCase{}, false), reqBody)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
