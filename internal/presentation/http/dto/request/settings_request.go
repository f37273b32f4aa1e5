package request

// FooterRequest replaces the storefront footer
type FooterRequest struct {
	BrandName   string `json:"brand_name" binding:"max=255"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Hours       string `json:"hours"`
	Copyright   string `json:"copyright" binding:"max=255"`
}
