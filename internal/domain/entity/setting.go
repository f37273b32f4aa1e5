package entity

import "time"

// SettingKeyFooter holds the storefront footer blob.
const SettingKeyFooter = "footer_data"

// StoreSetting is an opaque key/value pair; last write wins.
type StoreSetting struct {
	Key       string    `gorm:"column:setting_key;size:100;primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the StoreSetting model
func (StoreSetting) TableName() string {
	return "settings"
}

// FooterData is shown at the bottom of the menu and on printed receipts.
type FooterData struct {
	BrandName   string `json:"brand_name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Hours       string `json:"hours"`
	Copyright   string `json:"copyright"`
}

// DefaultFooter is seeded on first start.
func DefaultFooter() FooterData {
	return FooterData{
		BrandName:   "Sertão Gourmet",
		Description: "A alta gastronomia nordestina, do sertão à sua mesa.",
		Location:    "Rua das Rendeiras, 404 - Polo Gastronômico\nRecife, PE",
		Hours:       "Terça a Domingo\n18:00 às 23:30",
		Copyright:   "© 2024 Sertão Gourmet. Excelência no Sertão.",
	}
}
