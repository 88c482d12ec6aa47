package ports

import "go.trai.ch/toysetup/internal/core/domain"

// ReceiptStore defines the interface for storing and retrieving installation receipts.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReceiptStore interface {
	// Get retrieves the receipt for a given target triple.
	// Returns nil, nil if not found.
	Get(triple domain.TargetTriple) (*domain.Receipt, error)

	// Put stores the receipt.
	Put(receipt domain.Receipt) error
}

// ReceiptStoreOpener opens the receipt store persisted at path.
type ReceiptStoreOpener func(path string) (ReceiptStore, error)
