package catalog

// Sort keys accepted by the category product listing.
const (
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortDiscount  = "discount"
	SortDefault   = "default"
)

// Price sorts order by the discounted price, not the list price.
const discountedPriceExpr = "price_cents - (price_cents * discount_percent / 100)"

// OrderClause maps a sort key to its ORDER BY clause. The "default" key sorts
// by last update; anything unrecognized, including the empty string, falls
// back to newest-first. The two produce different orderings on purpose.
func OrderClause(sortBy string) string {
	switch sortBy {
	case SortNameAsc:
		return "title ASC"
	case SortNameDesc:
		return "title DESC"
	case SortPriceAsc:
		return discountedPriceExpr + " ASC"
	case SortPriceDesc:
		return discountedPriceExpr + " DESC"
	case SortDiscount:
		return "discount_percent DESC"
	case SortDefault:
		return "updated_at DESC"
	default:
		return "created_at DESC"
	}
}
