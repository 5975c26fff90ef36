package repository

import "context"

// RepositoryFactory hands out repository instances bound to a single
// transaction. Use cases receive it inside TransactionManager.Execute.
type RepositoryFactory interface {
	UserRepo() UserRepository
}

// TransactionManager runs a unit of work atomically. The identity upsert in
// the Google callback must execute inside one transaction so two concurrent
// callbacks for the same new email cannot both pass the find-by-email check.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
