package prompt

import (
	"fmt"
	"strings"

	"mall-backend/internal/chat/intent"
	"mall-backend/internal/model"
)

// maxDescriptionRunes bounds each candidate's description line.
const maxDescriptionRunes = 100

const (
	mallTemplate = "你是商城的智能导购助手。以下是商城在售的相关商品：\n%s\n" +
		"回答时只能使用上述商品信息，绝不要编造不存在的商品。" +
		"回答中要明确说明这些结果来自本商城。" +
		"如果上面没有匹配的商品，请直接如实告诉用户商城中没有相关商品。"

	generalTemplate = "你是购物咨询助手。用户询问的是市面上商品的一般情况，请给出通用的市场建议。" +
		"注意：你的回答不代表本商城的在售商品，不要声称这些信息来自本商城。" +
		"如果用户其实想了解本商城的商品，请提示用户进一步说明。"

	ambiguousTemplate = "你是商城的智能导购助手。用户的问题与商品相关，但不确定是在问本商城的商品还是一般市场情况。%s" +
		"回答时请区分商城在售商品和一般市场信息，拿不准时请向用户确认。"

	noMatchSentence = "（商城中没有匹配的商品）"
)

// Build renders the system prompt for the classified intent. A
// not-product-related intent yields an empty prompt and the caller skips the
// system message entirely.
func Build(it intent.Intent, candidates []model.Product) string {
	switch it {
	case intent.MallSpecific, intent.AllProducts:
		block := noMatchSentence
		if len(candidates) > 0 {
			block = formatCandidates(candidates)
		}
		return fmt.Sprintf(mallTemplate, block)

	case intent.GeneralMarket:
		return generalTemplate

	case intent.AmbiguousProductRelated:
		block := ""
		if len(candidates) > 0 {
			block = "以下是商城中可能相关的商品：\n" + formatCandidates(candidates) + "\n"
		}
		return fmt.Sprintf(ambiguousTemplate, block)

	default:
		return ""
	}
}

// formatCandidates renders a numbered name/price list, each entry
// followed by a truncated description line.
func formatCandidates(candidates []model.Product) string {
	var b strings.Builder
	for i, p := range candidates {
		fmt.Fprintf(&b, "%d. %s — ¥%.2f\n", i+1, p.Name, p.Price)
		if desc := truncate(p.Description, maxDescriptionRunes); desc != "" {
			fmt.Fprintf(&b, "   %s\n", desc)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
