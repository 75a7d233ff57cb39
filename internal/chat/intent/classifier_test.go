package intent_test

import (
	"testing"

	"mall-backend/internal/chat/intent"
	"mall-backend/internal/chat/keyword"
)

func newTestClassifier(t *testing.T, known func(string) bool) *intent.Classifier {
	t.Helper()
	vocab := keyword.Default()
	tok, err := keyword.NewTokenizer(vocab)
	if err != nil {
		t.Fatalf("failed to create tokenizer: %v", err)
	}
	return intent.NewClassifier(vocab, tok, known)
}

func TestClassify(t *testing.T) {
	c := newTestClassifier(t, func(string) bool { return false })

	cases := []struct {
		name string
		text string
		want intent.Intent
	}{
		{"All Products Listing", "请列出所有商品", intent.AllProducts},
		{"All Products Variant", "你们都卖什么", intent.AllProducts},
		{"Mall Phrase", "你们商城有什么手机", intent.MallSpecific},
		{"Purchase Verb Is Mall Intent", "我想买华为手机", intent.MallSpecific},
		{"General Market", "市面上哪个手机品牌好", intent.GeneralMarket},
		{"Category Only Is Ambiguous", "手机怎么样", intent.AmbiguousProductRelated},
		{"Shopping Term Is Ambiguous", "性价比高的有啥", intent.AmbiguousProductRelated},
		{"Unrelated Chat", "今天天气真好", intent.NotProductRelated},
		{"Empty Text", "", intent.NotProductRelated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Classify(tc.text); got != tc.want {
				t.Errorf("Classify(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	c := newTestClassifier(t, func(string) bool { return false })

	t.Run("All Products Beats Mall", func(t *testing.T) {
		// Contains both an all-products phrase and the mall phrase 商城.
		if got := c.Classify("商城的所有商品给我看看"); got != intent.AllProducts {
			t.Errorf("expected AllProducts, got %v", got)
		}
	})

	t.Run("Mall Beats General", func(t *testing.T) {
		// 买 (mall) and 市面上 (general) both present.
		if got := c.Classify("市面上流行的我想买"); got != intent.MallSpecific {
			t.Errorf("expected MallSpecific, got %v", got)
		}
	})
}

func TestClassifyKnownKeywords(t *testing.T) {
	// A token that is neither category nor shopping term but is known to the
	// index still makes the message product-related.
	known := map[string]bool{"麒麟": true}
	c := newTestClassifier(t, func(tok string) bool { return known[tok] })

	if got := c.Classify("麒麟的表现如何"); got != intent.AmbiguousProductRelated {
		t.Errorf("expected AmbiguousProductRelated via known keyword, got %v", got)
	}
}
