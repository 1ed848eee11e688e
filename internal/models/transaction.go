package models

// Transaction is one checkout event owned by a user.
type Transaction struct {
	TransactionID int64  `gorm:"column:transaction_id;primaryKey;autoIncrement" json:"transaction_id"`
	Username      string `gorm:"size:64;index;not null" json:"username"`
}

func (Transaction) TableName() string { return "history" }

// TransactionItem is a single line item inside a transaction.
type TransactionItem struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	TransactionID int64  `gorm:"column:transaction_id;index;not null" json:"transaction_id"`
	ItemID        int64  `gorm:"column:item_id;not null" json:"item_id"`
	Quantity      int    `gorm:"not null" json:"quantity"`
	Modifications string `gorm:"size:255" json:"modifications"`
}

func (TransactionItem) TableName() string { return "itemhistory" }

// CartItem is one client-submitted cart entry. The wire key for the
// flavor id is "item", matching the frontend payload.
type CartItem struct {
	Item          int64  `json:"item"`
	Quantity      int    `json:"quantity"`
	Modifications string `json:"modifications"`
}

// PurchaseSummary is the response body for a completed checkout.
type PurchaseSummary struct {
	Username      string     `json:"username"`
	TransactionID int64      `json:"transaction_id"`
	Items         []CartItem `json:"items"`
	TotalCost     float64    `json:"total_cost"`
}

// PurchasedItem is a line item joined with its current flavor price,
// as returned by the order history endpoint.
type PurchasedItem struct {
	TransactionID int64   `json:"transaction_id"`
	ItemID        int64   `json:"item_id"`
	Quantity      int     `json:"quantity"`
	Modifications string  `json:"modifications"`
	Price         float64 `json:"price"`
}

// TransactionSummary groups the line items of one past transaction.
type TransactionSummary struct {
	TransactionID int64           `json:"transaction_id"`
	Items         []PurchasedItem `json:"items"`
	TotalCost     float64         `json:"total_cost"`
}

// ReportRow is one line of the admin sales report.
type ReportRow struct {
	TransactionID int64   `json:"transaction_id"`
	Username      string  `json:"username"`
	Name          string  `json:"name"`
	Flavor        string  `json:"flavor"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	Modifications string  `json:"modifications"`
}
