// Package histsync coordinates per-account history synchronization: it
// selects the source adapters for an account's paradigm, merges fetched
// records with the stored log, reconciles confirmation evidence, and commits
// the updated log together with the advanced sync cursors as one logical
// write.
package histsync

// Paradigm identifies how an account's transactions are retrieved: through a
// public-ledger explorer query or through a custodial/managed backend API.
type Paradigm string

const (
	// ParadigmExplorer marks accounts whose history comes from an
	// explorer-style polling API, optionally layered with the notification
	// feed for low-latency incremental updates.
	ParadigmExplorer Paradigm = "explorer"

	// ParadigmCustodial marks accounts managed by the custodial execution
	// backend.
	ParadigmCustodial Paradigm = "custodial"
)

// Account carries the identity an adapter needs to fetch activity: the
// stable account id used as the history log key, the paradigm selecting the
// adapter set, the on-chain address, and the provider-side wallet id used by
// the notification feed.
type Account struct {
	ID       string   `validate:"required"`
	Paradigm Paradigm `validate:"required,oneof=explorer custodial"`
	Address  string
	WalletID string
}
