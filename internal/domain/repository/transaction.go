package repository

import "context"

// RepositoryFactory creates repository instances bound to a single transaction.
// Only the repositories that participate in multi-step writes are exposed here.
type RepositoryFactory interface {
	NewJobRepository() JobRepository
	NewTimeLogRepository() TimeLogRepository
	NewAttachmentRepository() AttachmentRepository
}

// TransactionManager runs a unit of work inside one database transaction.
// The callback receives a factory whose repositories all share that
// transaction; returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
