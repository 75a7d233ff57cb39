package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"mall-backend/internal/chat"
	"mall-backend/internal/chat/intent"
	"mall-backend/internal/chat/keyword"
	"mall-backend/internal/chat/repository"
	"mall-backend/internal/chat/usecase"
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

var catalogProducts = []model.Product{
	{ID: "1", Name: "华为手机", Price: 1999.0, Description: "高性能旗舰手机，搭载麒麟芯片"},
	{ID: "4", Name: "花朵卡片", Price: 9.9, Description: "六一电子贺卡，精美花朵设计"},
	{ID: "7", Name: "无线耳机", Price: 299.0, Description: "真无线蓝牙耳机，降噪功能"},
}

type mockCatalog struct {
	listErr       error
	searchResults []model.Product
}

func (m *mockCatalog) ListAll(ctx context.Context) ([]model.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return catalogProducts, nil
}

func (m *mockCatalog) SearchByKeywords(ctx context.Context, keywords []string) ([]model.Product, error) {
	if m.searchResults != nil {
		return m.searchResults, nil
	}
	var out []model.Product
	for _, p := range catalogProducts {
		for _, kw := range keywords {
			if strings.Contains(p.Name, kw) || strings.Contains(p.Description, kw) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

type mockRepo struct {
	repository.Repository

	dedupeCalls []repository.DedupeAndSaveOptions
	dedupeErr   error
}

func (m *mockRepo) DedupeAndSave(ctx context.Context, opt repository.DedupeAndSaveOptions) (bool, error) {
	m.dedupeCalls = append(m.dedupeCalls, opt)
	if m.dedupeErr != nil {
		return false, m.dedupeErr
	}
	return true, nil
}

type mockLLM struct {
	calls []*ark.Request
	reply string
	err   error
}

func (m *mockLLM) ChatCompletion(ctx context.Context, req *ark.Request) (*ark.Response, error) {
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &ark.Response{Choices: []ark.Choice{
		{Message: ark.Message{Role: ark.RoleAssistant, Content: m.reply}},
	}}, nil
}

type fixture struct {
	uc      chat.UseCase
	repo    *mockRepo
	catalog *mockCatalog
	llm     *mockLLM
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalog := &mockCatalog{}
	repo := &mockRepo{}
	llm := &mockLLM{reply: "好的，已为您查询。"}

	vocab := keyword.Default()
	tok, err := keyword.NewTokenizer(vocab)
	if err != nil {
		t.Fatalf("failed to create tokenizer: %v", err)
	}
	idx := keyword.NewIndex(catalog, tok, vocab, &mockLogger{})
	if err := idx.Build(context.Background()); err != nil {
		t.Fatalf("failed to build index: %v", err)
	}
	ext, err := keyword.NewExtractor(tok, vocab, idx, 5)
	if err != nil {
		t.Fatalf("failed to create extractor: %v", err)
	}
	classifier := intent.NewClassifier(vocab, tok, idx.Contains)

	uc := usecase.New(&mockLogger{}, repo, catalog, idx, ext, classifier, llm, usecase.Config{
		DefaultModel:         "test-model",
		UserDedupWindow:      5 * time.Second,
		AssistantDedupWindow: 3 * time.Second,
		MaxCandidates:        10,
	})

	return &fixture{uc: uc, repo: repo, catalog: catalog, llm: llm}
}

func userMsg(text string) chat.IncomingMessage {
	return chat.IncomingMessage{Role: ark.RoleUser, Content: chat.TextContent(text)}
}

func TestChatValidation(t *testing.T) {
	sc := model.Scope{UserID: 1}

	t.Run("Empty Messages", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Chat(context.Background(), sc, chat.ChatInput{})
		if !errors.Is(err, chat.ErrNoMessages) {
			t.Errorf("expected ErrNoMessages, got %v", err)
		}
	})

	t.Run("No User Message", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Chat(context.Background(), sc, chat.ChatInput{
			Messages: []chat.IncomingMessage{
				{Role: ark.RoleAssistant, Content: chat.TextContent("您好")},
			},
		})
		if !errors.Is(err, chat.ErrNoUserMessage) {
			t.Errorf("expected ErrNoUserMessage, got %v", err)
		}
	})

	t.Run("Blank Text Gets Canned Greeting", func(t *testing.T) {
		f := newFixture(t)
		out, err := f.uc.Chat(context.Background(), sc, chat.ChatInput{
			Messages: []chat.IncomingMessage{userMsg("   ")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply.Content != usecase.Greeting {
			t.Errorf("expected canned greeting, got %q", out.Reply.Content)
		}
		if len(f.llm.calls) != 0 {
			t.Error("expected no completion call for blank input")
		}
	})
}

func TestChatMallSpecific(t *testing.T) {
	f := newFixture(t)
	sc := model.Scope{UserID: 1}

	out, err := f.uc.Chat(context.Background(), sc, chat.ChatInput{
		Messages: []chat.IncomingMessage{userMsg("我想买华为手机")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Intent != intent.MallSpecific {
		t.Errorf("expected mall-specific intent, got %v", out.Intent)
	}
	if len(out.Products) == 0 {
		t.Fatal("expected product candidates to be exposed")
	}
	found := false
	for _, p := range out.Products {
		if p.Name == "华为手机" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 华为手机 among candidates, got %+v", out.Products)
	}

	if len(f.llm.calls) != 1 {
		t.Fatalf("expected one completion call, got %d", len(f.llm.calls))
	}
	sent := f.llm.calls[0].Messages
	if sent[0].Role != ark.RoleSystem {
		t.Fatal("expected a system prompt to be prepended")
	}
	if !strings.Contains(sent[0].Content, "华为手机") {
		t.Errorf("expected candidates in system prompt, got %q", sent[0].Content)
	}
	if sent[len(sent)-1].Content != "我想买华为手机" {
		t.Errorf("expected original user text last, got %q", sent[len(sent)-1].Content)
	}
}

func TestChatRanking(t *testing.T) {
	f := newFixture(t)

	// Catalog order deliberately disagrees with the expected ranking. The
	// query extracts the keyword 手机: a name hit scores 2, a description
	// hit scores 1.
	results := []model.Product{
		{ID: "desc-only", Name: "平板电脑", Description: "大屏设备，可当手机用"},
		{ID: "name-desc", Name: "旗舰手机", Description: "本店最新款手机"},
		{ID: "name-only", Name: "折叠手机", Description: "轻薄便携"},
	}
	for i := 0; i < 9; i++ {
		results = append(results, model.Product{
			ID:          fmt.Sprintf("filler-%d", i),
			Name:        fmt.Sprintf("保温杯%d", i),
			Description: "不锈钢材质",
		})
	}
	f.catalog.searchResults = results

	out, err := f.uc.Chat(context.Background(), model.Scope{UserID: 1}, chat.ChatInput{
		Messages: []chat.IncomingMessage{userMsg("我想买手机")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Products) != 10 {
		t.Fatalf("expected candidates capped at 10, got %d", len(out.Products))
	}

	wantHead := []string{"name-desc", "name-only", "desc-only"}
	for i, id := range wantHead {
		if out.Products[i].ID != id {
			t.Errorf("rank %d: expected %s, got %s", i, id, out.Products[i].ID)
		}
	}
	// Zero-score fillers keep their catalog order after the scored entries.
	for i := 3; i < 10; i++ {
		want := fmt.Sprintf("filler-%d", i-3)
		if out.Products[i].ID != want {
			t.Errorf("rank %d: expected %s, got %s", i, want, out.Products[i].ID)
		}
	}
}

func TestChatGeneralMarket(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Chat(context.Background(), model.Scope{UserID: 1}, chat.ChatInput{
		Messages: []chat.IncomingMessage{userMsg("市面上哪个手机品牌好")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Intent != intent.GeneralMarket {
		t.Errorf("expected general-market intent, got %v", out.Intent)
	}
	if len(out.Products) != 0 {
		t.Errorf("general-market answers must not expose products, got %+v", out.Products)
	}

	sent := f.llm.calls[0].Messages
	if sent[0].Role != ark.RoleSystem || !strings.Contains(sent[0].Content, "不代表本商城") {
		t.Errorf("expected the general-market disclaimer prompt, got %q", sent[0].Content)
	}
}

func TestChatNotProductRelated(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Chat(context.Background(), model.Scope{UserID: 1}, chat.ChatInput{
		Messages: []chat.IncomingMessage{userMsg("今天天气真好")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Intent != intent.NotProductRelated {
		t.Errorf("expected not-product-related intent, got %v", out.Intent)
	}
	if len(out.Products) != 0 {
		t.Errorf("expected no products, got %+v", out.Products)
	}

	sent := f.llm.calls[0].Messages
	if sent[0].Role == ark.RoleSystem {
		t.Errorf("expected no system prompt for unrelated chat, got %q", sent[0].Content)
	}
}

func TestChatAllProducts(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Chat(context.Background(), model.Scope{UserID: 1}, chat.ChatInput{
		Messages: []chat.IncomingMessage{userMsg("请问都有什么商品")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Intent != intent.AllProducts {
		t.Errorf("expected all-products intent, got %v", out.Intent)
	}
	if len(out.Products) != len(catalogProducts) {
		t.Errorf("expected the full catalog, got %d products", len(out.Products))
	}
}

func TestChatPersistence(t *testing.T) {
	sc := model.Scope{UserID: 9}

	t.Run("Both Turns Persisted With Windows", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Chat(context.Background(), sc, chat.ChatInput{
			Messages: []chat.IncomingMessage{userMsg("我想买华为手机")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(f.repo.dedupeCalls) != 2 {
			t.Fatalf("expected 2 persisted turns, got %d", len(f.repo.dedupeCalls))
		}
		userTurn, assistantTurn := f.repo.dedupeCalls[0], f.repo.dedupeCalls[1]
		if userTurn.Role != ark.RoleUser || userTurn.Content != "我想买华为手机" {
			t.Errorf("unexpected user turn: %+v", userTurn)
		}
		if userTurn.UserID != 9 || assistantTurn.UserID != 9 {
			t.Error("expected turns scoped to the requesting user")
		}
		if userTurn.Window != 5*time.Second {
			t.Errorf("expected 5s user dedup window, got %v", userTurn.Window)
		}
		if assistantTurn.Role != ark.RoleAssistant || assistantTurn.Window != 3*time.Second {
			t.Errorf("unexpected assistant turn: %+v", assistantTurn)
		}
	})

	t.Run("Persistence Failure Does Not Fail The Chat", func(t *testing.T) {
		f := newFixture(t)
		f.repo.dedupeErr = errors.New("db down")

		out, err := f.uc.Chat(context.Background(), sc, chat.ChatInput{
			Messages: []chat.IncomingMessage{userMsg("我想买华为手机")},
		})
		if err != nil {
			t.Fatalf("expected chat to succeed despite persistence failure, got %v", err)
		}
		if out.Reply.Content == "" {
			t.Error("expected a reply")
		}
	})
}

func TestChatCompletionFailure(t *testing.T) {
	f := newFixture(t)
	f.llm.err = errors.New("provider unavailable")

	_, err := f.uc.Chat(context.Background(), model.Scope{UserID: 1}, chat.ChatInput{
		Messages: []chat.IncomingMessage{userMsg("我想买华为手机")},
	})
	if !errors.Is(err, chat.ErrCompletionFailed) {
		t.Errorf("expected ErrCompletionFailed, got %v", err)
	}
	if len(f.repo.dedupeCalls) != 0 {
		t.Error("expected nothing persisted when the completion fails")
	}
}

func TestChatMultimodalContent(t *testing.T) {
	f := newFixture(t)

	var content chat.MessageContent
	payload := `[{"type":"text","text":"这个手机多少钱"},{"type":"image_url","image_url":{"url":"https://cdn.example.com/p.jpg"}}]`
	if err := content.UnmarshalJSON([]byte(payload)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := f.uc.Chat(context.Background(), model.Scope{UserID: 1}, chat.ChatInput{
		Messages: []chat.IncomingMessage{{Role: ark.RoleUser, Content: content}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Intent.ProductRelated() {
		t.Errorf("expected text parts to drive classification, got %v", out.Intent)
	}

	// Persisted form keeps the structured parts, not the flattened text.
	stored := f.repo.dedupeCalls[0].Content
	if !strings.Contains(stored, "image_url") {
		t.Errorf("expected structured content persisted, got %q", stored)
	}
}
