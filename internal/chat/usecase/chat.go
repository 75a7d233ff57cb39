package usecase

import (
	"context"
	"sort"
	"strings"

	"mall-backend/internal/chat"
	"mall-backend/internal/chat/intent"
	"mall-backend/internal/chat/prompt"
	"mall-backend/internal/chat/repository"
	"mall-backend/internal/model"
	"mall-backend/pkg/ark"
)

// Greeting is returned for empty user messages without calling the
// completion provider.
const Greeting = "您好！请问有什么可以帮您的吗？您可以问我商城里的商品哦～"

// Chat runs the augmentation pipeline: validate → warm index → classify →
// retrieve → build prompt → complete → persist → respond.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	if len(input.Messages) == 0 {
		return chat.ChatOutput{}, chat.ErrNoMessages
	}

	last, ok := latestUserMessage(input.Messages)
	if !ok {
		return chat.ChatOutput{}, chat.ErrNoUserMessage
	}

	text := strings.TrimSpace(last.Content.FlattenText())
	if text == "" {
		// Friendly canned reply instead of an error; no completion call.
		return chat.ChatOutput{
			Reply:  model.AIMessage{Role: ark.RoleAssistant, Content: Greeting},
			Intent: intent.NotProductRelated,
		}, nil
	}

	// Lazy index warm-up. A failed build keeps the previous snapshot and the
	// request proceeds without augmentation rather than failing.
	if uc.index.IsEmpty() {
		if err := uc.index.Build(ctx); err != nil {
			uc.l.Warnf(ctx, "Chat: keyword index build failed: %v", err)
		}
	}

	it := uc.classifier.Classify(text)
	candidates := uc.retrieve(ctx, it, text)

	messages := uc.buildMessages(it, candidates, input.Messages)

	resp, err := uc.llm.ChatCompletion(ctx, &ark.Request{
		Model:    input.Model,
		Messages: messages,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Chat: completion call failed: %v", err)
		return chat.ChatOutput{}, chat.ErrCompletionFailed
	}
	reply := resp.Choices[0].Message.Content

	uc.persistTurns(ctx, sc, last.Content.Storable(), reply)

	out := chat.ChatOutput{
		Reply:  model.AIMessage{UserID: sc.UserID, Role: ark.RoleAssistant, Content: reply},
		Intent: it,
	}
	// Candidates are exposed to the caller only for catalog-backed intents.
	if (it == intent.MallSpecific || it == intent.AllProducts) && len(candidates) > 0 {
		out.Products = candidates
	}
	return out, nil
}

// retrieve fetches candidates per intent. Catalog failures degrade to an
// empty result and are logged; the request continues without augmentation.
func (uc *implUseCase) retrieve(ctx context.Context, it intent.Intent, text string) []model.Product {
	switch {
	case it == intent.AllProducts:
		products, err := uc.catalog.ListAll(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "Chat: catalog list failed: %v", err)
			return nil
		}
		return products

	case it.ProductRelated():
		keywords := uc.extractor.Extract(text)
		return uc.search(ctx, keywords)
	}
	return nil
}

// search queries the catalog by keywords and ranks matches by weighted score:
// a keyword in the name counts double one in the description. Ties keep the
// catalog's natural order; the result is capped.
func (uc *implUseCase) search(ctx context.Context, keywords []string) []model.Product {
	if len(keywords) == 0 {
		return nil
	}

	products, err := uc.catalog.SearchByKeywords(ctx, keywords)
	if err != nil {
		uc.l.Errorf(ctx, "Chat: catalog search failed: %v", err)
		return nil
	}

	scores := make([]int, len(products))
	for i, p := range products {
		scores[i] = matchScore(p, keywords)
	}
	order := make([]int, len(products))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	n := len(products)
	if n > uc.cfg.MaxCandidates {
		n = uc.cfg.MaxCandidates
	}
	ranked := make([]model.Product, 0, n)
	for _, idx := range order[:n] {
		ranked = append(ranked, products[idx])
	}
	return ranked
}

func matchScore(p model.Product, keywords []string) int {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)

	score := 0
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(name, kw) {
			score += 2
		}
		if strings.Contains(desc, kw) {
			score++
		}
	}
	return score
}

// buildMessages prepends the intent-selected system prompt (when any) to the
// full role-preserving history, with multimodal content flattened to text.
func (uc *implUseCase) buildMessages(it intent.Intent, candidates []model.Product, history []chat.IncomingMessage) []ark.Message {
	messages := make([]ark.Message, 0, len(history)+1)

	if sys := prompt.Build(it, candidates); sys != "" {
		messages = append(messages, ark.Message{Role: ark.RoleSystem, Content: sys})
	}
	for _, m := range history {
		messages = append(messages, ark.Message{
			Role:    m.Role,
			Content: m.Content.FlattenText(),
		})
	}
	return messages
}

// persistTurns stores the inbound user message and outbound assistant reply,
// each gated by its dedup window. Persistence is best-effort: failures are
// logged and the chat response is still returned.
func (uc *implUseCase) persistTurns(ctx context.Context, sc model.Scope, userContent, reply string) {
	nowMs := uc.now().UnixMilli()

	if _, err := uc.repo.DedupeAndSave(ctx, repository.DedupeAndSaveOptions{
		UserID:    sc.UserID,
		Role:      ark.RoleUser,
		Content:   userContent,
		Timestamp: nowMs,
		Window:    uc.cfg.UserDedupWindow,
	}); err != nil {
		uc.l.Errorf(ctx, "Chat: persist user message failed: %v", err)
	}

	if _, err := uc.repo.DedupeAndSave(ctx, repository.DedupeAndSaveOptions{
		UserID:    sc.UserID,
		Role:      ark.RoleAssistant,
		Content:   reply,
		Timestamp: uc.now().UnixMilli(),
		Window:    uc.cfg.AssistantDedupWindow,
	}); err != nil {
		uc.l.Errorf(ctx, "Chat: persist assistant message failed: %v", err)
	}
}

func latestUserMessage(messages []chat.IncomingMessage) (chat.IncomingMessage, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == ark.RoleUser {
			return messages[i], true
		}
	}
	return chat.IncomingMessage{}, false
}
