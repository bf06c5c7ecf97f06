package entity

// KVRecord is one row of the key-value storage substrate. The three logical
// records (menu, cart, sales) each live under a single key as a JSON blob.
type KVRecord struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}
