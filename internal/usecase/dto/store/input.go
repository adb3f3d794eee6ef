package storedto

type CreateStoreInput struct {
	Name        string
	Description string
	Category    string
	Currency    string
	LogoURL     string
}

type UpdateStoreInput struct {
	StoreID     string
	Name        string
	Description string
	Category    string
	LogoURL     string
}
