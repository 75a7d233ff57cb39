package intent

// Intent is the classified purpose of a user's chat message with respect to
// product inquiry.
type Intent string

const (
	// NotProductRelated means the message has nothing to do with products.
	NotProductRelated Intent = "not_product_related"

	// MallSpecific means the message asks about this mall's own inventory.
	MallSpecific Intent = "mall_specific"

	// GeneralMarket means the message asks about products on the market in
	// general, not this mall's catalog.
	GeneralMarket Intent = "general_market"

	// AllProducts means the message asks for the full catalog listing.
	AllProducts Intent = "all_products"

	// AmbiguousProductRelated means the message is product-related but its
	// framing does not match any of the phrase sets.
	AmbiguousProductRelated Intent = "ambiguous_product_related"
)

// ProductRelated reports whether candidate retrieval applies to the intent.
func (i Intent) ProductRelated() bool {
	return i != NotProductRelated
}
