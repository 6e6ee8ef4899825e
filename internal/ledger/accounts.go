package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/mmynk/sheetledger/internal/auth"
	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

// Accounts maps verified external identities onto ledger users.
type Accounts struct {
	base
	claimDemo bool
}

// SignIn finds the user for a verified identity, by provider subject first
// and then by email, creating one if neither matches. Profile fields are
// refreshed on every sign-in.
func (a *Accounts) SignIn(ctx context.Context, identity auth.Identity) (*models.User, error) {
	if identity.Subject == "" || identity.Email == "" {
		return nil, newError(KindUnauthenticated, "identity has no subject or email")
	}

	var (
		user    *models.User
		created bool
		claimed storage.Reassigned
	)
	err := a.store.InTx(ctx, func(q storage.Queries) error {
		var err error
		user, err = q.GetUserBySubject(ctx, identity.Subject)
		if isStoreNotFound(err) {
			user, err = q.GetUserByEmail(ctx, identity.Email)
		}

		switch {
		case err == nil:
			user.Email = identity.Email
			user.Name = identity.Name
			user.Picture = identity.Picture
			user.Subject = identity.Subject
			if err := q.UpdateUser(ctx, user); err != nil {
				return fromStore(err, "user %s", identity.Email)
			}
		case isStoreNotFound(err):
			user = models.NewUser(identity.Email, identity.Name, identity.Picture, identity.Subject, a.now().Unix())
			if err := q.CreateUser(ctx, user); err != nil {
				return fromStore(err, "user %s", identity.Email)
			}
			created = true
		default:
			return fromStore(err, "look up user")
		}

		if created && a.claimDemo {
			n, err := q.CountUsers(ctx)
			if err != nil {
				return fromStore(err, "count users")
			}
			if n == 1 {
				claimed, err = q.ReassignOwner(ctx, models.DemoUserID, user.ID)
				if err != nil {
					return fromStore(err, "claim demo data")
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		a.logger.Info("User created", "user_id", user.ID, "email", user.Email)
	}
	if claimed.Sheets+claimed.Expenses+claimed.Annotations > 0 {
		a.logger.Info("Demo data claimed",
			"user_id", user.ID,
			"sheets", claimed.Sheets,
			"expenses", claimed.Expenses,
			"annotations", claimed.Annotations,
		)
	}
	return user, nil
}

// Get returns a user by ID.
func (a *Accounts) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	user, err := a.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fromStore(err, "user %s", userID)
	}
	return user, nil
}

// ClaimDemoData moves everything owned by the demo user to userID. It is
// idempotent: once the demo rows are gone it changes nothing.
func (a *Accounts) ClaimDemoData(ctx context.Context, userID uuid.UUID) (storage.Reassigned, error) {
	if err := requireUser(userID); err != nil {
		return storage.Reassigned{}, err
	}

	var moved storage.Reassigned
	err := a.store.InTx(ctx, func(q storage.Queries) error {
		if _, err := q.GetUserByID(ctx, userID); err != nil {
			return fromStore(err, "user %s", userID)
		}
		var err error
		moved, err = q.ReassignOwner(ctx, models.DemoUserID, userID)
		return fromStore(err, "claim demo data")
	})
	if err != nil {
		return storage.Reassigned{}, err
	}

	a.logger.Info("Demo data claimed",
		"user_id", userID,
		"sheets", moved.Sheets,
		"expenses", moved.Expenses,
		"annotations", moved.Annotations,
	)
	return moved, nil
}
