package models

// ItemInfo holds per-dessert metadata shared by all of its flavors.
// Small/Large/Customizable are the search filter flags.
type ItemInfo struct {
	Name         string `gorm:"primaryKey;size:64" json:"name"`
	Img          string `gorm:"size:255" json:"img"`
	Max          int    `gorm:"not null" json:"max"`
	Small        bool   `gorm:"not null" json:"small"`
	Large        bool   `gorm:"not null" json:"large"`
	Customizable bool   `gorm:"not null" json:"customizable"`
}

func (ItemInfo) TableName() string { return "iteminfo" }

// ItemFlavor is one purchasable flavor of a dessert type. Stock is the
// remaining purchasable count and must never go negative.
type ItemFlavor struct {
	ID     int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string  `gorm:"size:64;index;not null" json:"name"`
	Flavor string  `gorm:"size:64;not null" json:"flavor"`
	Price  float64 `gorm:"not null" json:"price"`
	Stock  int     `gorm:"not null" json:"stock"`
}

func (ItemFlavor) TableName() string { return "itemflavors" }

// DessertCard is the list entry shown on the ordering page.
type DessertCard struct {
	Name string `json:"name"`
	Img  string `json:"img"`
}

// FlavorOption is one flavor choice on the item detail view.
type FlavorOption struct {
	Flavor string  `json:"flavor"`
	Price  float64 `json:"price"`
}

// DessertDetail is the nested item-with-flavors response for a single dessert.
type DessertDetail struct {
	Name    string         `json:"name"`
	Img     string         `json:"img"`
	Flavors []FlavorOption `json:"flavors"`
	Max     int            `json:"max"`
}
