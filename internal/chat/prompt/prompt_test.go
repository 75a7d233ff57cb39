package prompt_test

import (
	"strings"
	"testing"

	"mall-backend/internal/chat/intent"
	"mall-backend/internal/chat/prompt"
	"mall-backend/internal/model"
)

var candidates = []model.Product{
	{ID: "1", Name: "华为手机", Price: 1999.0, Description: "高性能旗舰手机"},
	{ID: "7", Name: "无线耳机", Price: 299.0, Description: "真无线蓝牙耳机"},
}

func TestBuild(t *testing.T) {
	t.Run("Not Product Related Yields No Prompt", func(t *testing.T) {
		if got := prompt.Build(intent.NotProductRelated, candidates); got != "" {
			t.Errorf("expected empty prompt, got %q", got)
		}
	})

	t.Run("Mall Prompt Lists Candidates", func(t *testing.T) {
		got := prompt.Build(intent.MallSpecific, candidates)
		if !strings.Contains(got, "1. 华为手机 — ¥1999.00") {
			t.Errorf("expected first numbered candidate, got %q", got)
		}
		if !strings.Contains(got, "2. 无线耳机 — ¥299.00") {
			t.Errorf("expected second numbered candidate, got %q", got)
		}
		if !strings.Contains(got, "绝不要编造不存在的商品") {
			t.Errorf("expected anti-hallucination instruction, got %q", got)
		}
	})

	t.Run("Mall Prompt Without Matches", func(t *testing.T) {
		got := prompt.Build(intent.MallSpecific, nil)
		if !strings.Contains(got, "（商城中没有匹配的商品）") {
			t.Errorf("expected no-match sentence, got %q", got)
		}
	})

	t.Run("All Products Uses Mall Prompt", func(t *testing.T) {
		got := prompt.Build(intent.AllProducts, candidates)
		if !strings.Contains(got, "华为手机") {
			t.Errorf("expected candidates in all-products prompt, got %q", got)
		}
	})

	t.Run("General Prompt Disclaims The Mall", func(t *testing.T) {
		got := prompt.Build(intent.GeneralMarket, candidates)
		if !strings.Contains(got, "不代表本商城") {
			t.Errorf("expected mall disclaimer, got %q", got)
		}
		if strings.Contains(got, "华为手机") {
			t.Errorf("general prompt must not leak candidates, got %q", got)
		}
	})

	t.Run("Ambiguous Prompt With And Without Candidates", func(t *testing.T) {
		with := prompt.Build(intent.AmbiguousProductRelated, candidates)
		if !strings.Contains(with, "华为手机") {
			t.Errorf("expected candidates in ambiguous prompt, got %q", with)
		}

		without := prompt.Build(intent.AmbiguousProductRelated, nil)
		if strings.Contains(without, "可能相关的商品") {
			t.Errorf("expected no candidate block, got %q", without)
		}
	})

	t.Run("Long Description Truncated", func(t *testing.T) {
		long := strings.Repeat("很", 150)
		got := prompt.Build(intent.MallSpecific, []model.Product{
			{ID: "9", Name: "测试商品", Price: 1.0, Description: long},
		})
		if strings.Contains(got, long) {
			t.Error("expected description to be truncated")
		}
		if !strings.Contains(got, strings.Repeat("很", 100)+"...") {
			t.Error("expected ellipsis after 100 runes")
		}
	})
}
