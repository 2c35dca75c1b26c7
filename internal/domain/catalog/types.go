package catalog

// Product is one storefront catalog entry as the backend lists it. Price is
// kept as the raw display string the backend serves (it may carry a currency
// symbol); callers parse it with util.ParsePrice before any cart math.
type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}
