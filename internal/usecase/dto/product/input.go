package productdto

type CreateProductInput struct {
	StoreID     string
	Name        string
	Description string
	Price       string
	Currency    string
	ImageURLs   []string
	Source      string
	SourceURL   string
}

type UpdateProductInput struct {
	ProductID   string
	Name        string
	Description string
	Price       string
	ImageURLs   []string
	Active      *bool
}
