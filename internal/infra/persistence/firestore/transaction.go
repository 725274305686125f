package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	domainerrors "glowdesk/internal/domain/errors"
	"glowdesk/internal/domain/repository"
	"glowdesk/internal/errors"
)

// firestoreTransactionManager implements the domain's TransactionManager
// interface on top of Firestore transactions. Firestore requires every read
// inside a transaction to happen before the first write; the use case layer
// orders its operations accordingly.
type firestoreTransactionManager struct {
	client *Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory
// interface. It holds one *firestore.Transaction and hands out repository
// instances bound to it.
type firestoreRepositoryFactory struct {
	client *Client
	tx     *firestore.Transaction
}

// ProfileRepo creates a profile repository instance bound to the transaction.
func (f *firestoreRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{client: f.client, tx: f.tx}
}

// SalonRepo creates a salon repository instance bound to the transaction.
func (f *firestoreRepositoryFactory) SalonRepo() repository.SalonRepository {
	return &salonRepository{client: f.client, tx: f.tx}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(client *Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs the given function within a single Firestore transaction.
// The callback may be retried on contention, so it must stay idempotent.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.fs.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&firestoreRepositoryFactory{client: tm.client, tx: tx})
	})
	if err == nil {
		return nil
	}

	// Business errors from the callback pass through untouched; anything else
	// is a commit-level store failure and keeps its original message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) ||
		errors.Is(err, repository.ErrProfileNotFound) ||
		errors.Is(err, repository.ErrSalonNotFound) {
		return err
	}

	return domainerrors.NewStoreExecuteError(err, err.Error())
}
