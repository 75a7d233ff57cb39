package keyword

// Vocabulary is the curated domain term configuration consumed by the
// tokenizer, the keyword index and the intent classifier. It is built once at
// startup and never mutated afterwards.
type Vocabulary struct {
	// Categories are product category terms registered with the tokenizer so
	// generic segmentation does not fragment them.
	Categories []string

	// StopWords are tokens excluded from keyword derivation.
	StopWords []string

	// MallPhrases mark a message as asking about this mall's own inventory.
	MallPhrases []string

	// GeneralPhrases mark a message as asking about the market in general.
	GeneralPhrases []string

	// AllProductsPhrases mark a message as asking for the full catalog.
	AllProductsPhrases []string

	// ShoppingTerms are generic shopping-intent words used by the
	// product-relatedness test.
	ShoppingTerms []string

	// LowPriceTags / PremiumTags are price-tier keywords attached to items
	// below / above the configured thresholds.
	LowPriceTags []string
	PremiumTags  []string

	stopSet     map[string]struct{}
	categorySet map[string]struct{}
}

// Default returns the stock vocabulary for the mall domain.
func Default() *Vocabulary {
	v := &Vocabulary{
		Categories: []string{
			"手机", "耳机", "手表", "贺卡", "卡片", "电池", "相机", "芯片",
			"蓝牙", "智能", "数码", "电子", "旗舰机", "全面屏",
		},
		StopWords: []string{
			"的", "了", "在", "是", "我", "有", "和", "就", "不", "人",
			"都", "一", "一个", "上", "也", "很", "到", "说", "要", "去",
			"你", "会", "着", "没有", "看", "好", "自己", "这", "那", "里",
			"就是", "还", "把", "比", "他", "什么", "哪些", "怎么", "可以",
			"请问", "一下", "这个", "那个",
		},
		MallPhrases: []string{
			"商城", "本店", "店里", "店内", "你们有", "你们卖", "有没有卖",
			"在售", "上架", "买", "购买", "下单",
		},
		GeneralPhrases: []string{
			"市面上", "市场上", "一般来说", "行情", "业内", "主流",
			"大家都用", "哪个品牌", "什么牌子",
		},
		AllProductsPhrases: []string{
			"所有商品", "全部商品", "都有什么商品", "有哪些商品", "商品列表",
			"所有东西", "全部产品", "都卖什么",
		},
		ShoppingTerms: []string{
			"买", "购买", "价格", "多少钱", "推荐", "哪个好", "性价比",
			"优惠", "折扣", "购物",
		},
		LowPriceTags: []string{"低价", "便宜", "实惠"},
		PremiumTags:  []string{"高端", "旗舰", "贵"},
	}

	v.buildSets()
	return v
}

// buildSets precomputes membership sets for the hot lookups.
func (v *Vocabulary) buildSets() {
	v.stopSet = make(map[string]struct{}, len(v.StopWords))
	for _, w := range v.StopWords {
		v.stopSet[w] = struct{}{}
	}
	v.categorySet = make(map[string]struct{}, len(v.Categories))
	for _, w := range v.Categories {
		v.categorySet[w] = struct{}{}
	}
}

// IsStopWord reports whether the token is a stop word.
func (v *Vocabulary) IsStopWord(token string) bool {
	_, ok := v.stopSet[token]
	return ok
}

// IsCategory reports whether the token is a registered category term.
func (v *Vocabulary) IsCategory(token string) bool {
	_, ok := v.categorySet[token]
	return ok
}

// DomainTerms returns every multi-character term that must survive
// segmentation intact: categories plus all phrase sets and tier tags.
func (v *Vocabulary) DomainTerms() []string {
	terms := make([]string, 0,
		len(v.Categories)+len(v.MallPhrases)+len(v.GeneralPhrases)+
			len(v.AllProductsPhrases)+len(v.ShoppingTerms)+
			len(v.LowPriceTags)+len(v.PremiumTags))
	terms = append(terms, v.Categories...)
	terms = append(terms, v.MallPhrases...)
	terms = append(terms, v.GeneralPhrases...)
	terms = append(terms, v.AllProductsPhrases...)
	terms = append(terms, v.ShoppingTerms...)
	terms = append(terms, v.LowPriceTags...)
	terms = append(terms, v.PremiumTags...)
	return terms
}
