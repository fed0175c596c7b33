package user

import "context"

// Repository is the user data access contract.
//
// Create runs its duplicate checks and the insert inside one transaction: on
// any failure no partial user row remains, and a concurrent duplicate loses
// to the store's uniqueness constraints rather than application locking.
type Repository interface {
	Create(ctx context.Context, u *User) (int64, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
