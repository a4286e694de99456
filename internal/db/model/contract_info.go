package model

// ContractInfoDocument records which ledger build instantiated the pool.
type ContractInfoDocument struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	Version   string `bson:"version"`
	CreatedAt int64  `bson:"created_at"`
}
