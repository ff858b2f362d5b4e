package model

// InsertResult acknowledges a single document insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges an upsert. UpsertedID is empty when an existing
// record matched.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int     `json:"matchedCount"`
	ModifiedCount int     `json:"modifiedCount"`
	UpsertedCount int     `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}
