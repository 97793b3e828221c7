package usecase

import (
	"fmt"

	"worship-backend/internal/apperr"
	"worship-backend/internal/notify/domain"
	userdomain "worship-backend/internal/user/domain"
	userrepo "worship-backend/internal/user/repository"
)

// maxQueryValues is the store's limit on multi-value "in" filters. Lookups
// over larger id sets are partitioned into chunks of this size.
const maxQueryValues = 10

// Resolver expands a targeting spec into a deduplicated set of user ids.
type Resolver struct {
	userRepo    userrepo.UserRepository
	defaultRole userdomain.Role
}

// NewResolver creates a new Resolver
func NewResolver(userRepo userrepo.UserRepository, defaultRole userdomain.Role) *Resolver {
	return &Resolver{
		userRepo:    userRepo,
		defaultRole: defaultRole,
	}
}

// Resolve is total over the known target modes; unknown modes fail with
// ErrUnsupportedTarget. Output order carries no meaning.
func (r *Resolver) Resolve(target domain.Target) ([]string, error) {
	switch target.Mode {
	case domain.TargetAll:
		users, err := r.userRepo.FindActive()
		if err != nil {
			return nil, err
		}
		return userIDs(users), nil

	case domain.TargetRole:
		role := userdomain.Role(target.Role)
		if role == "" {
			role = r.defaultRole
		}
		users, err := r.userRepo.FindActiveByRole(role)
		if err != nil {
			return nil, err
		}
		return userIDs(users), nil

	case domain.TargetUsers:
		// Used verbatim; the caller's authorization check is the trust boundary.
		return dedup(target.UserIDs), nil

	case domain.TargetLinkedPersons:
		return r.resolveLinkedPersons(target.PersonIDs)

	default:
		return nil, fmt.Errorf("%w: %q", apperr.ErrUnsupportedTarget, target.Mode)
	}
}

// resolveLinkedPersons unions the chunked lookups; the merge is a set union,
// so chunk order does not matter.
func (r *Resolver) resolveLinkedPersons(personIDs []string) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, chunk := range chunkIDs(dedup(personIDs), maxQueryValues) {
		users, err := r.userRepo.FindActiveByLinkedPersonIDs(chunk)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			if !seen[u.ID] {
				seen[u.ID] = true
				ids = append(ids, u.ID)
			}
		}
	}
	return ids, nil
}

func userIDs(users []userdomain.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func dedup(ids []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
