package memory

import (
	"context"
	"sort"
	"strings"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"
)

type UserRepository struct {
	db *db
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user.Email = models.NormalizeEmail(user.Email)
	if _, exists := r.db.emailIndex[user.Email]; exists {
		return repositories.ErrUserAlreadyExists
	}

	r.db.stamp(&user.BaseModel)
	stored := cloneUser(user)
	r.db.users[user.ID] = &stored
	r.db.emailIndex[user.Email] = user.ID
	r.db.seq++
	r.db.userSeq[user.ID] = r.db.seq
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := cloneUser(u)
	return &cp, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	id, ok := r.db.emailIndex[models.NormalizeEmail(email)]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := cloneUser(r.db.users[id])
	return &cp, nil
}

func (r *UserRepository) FindByIDs(_ context.Context, ids []string) ([]models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var users []models.User
	for _, id := range ids {
		if u, ok := r.db.users[id]; ok {
			users = append(users, cloneUser(u))
		}
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, email string, upd models.ProfileUpdate) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	id, ok := r.db.emailIndex[models.NormalizeEmail(email)]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	u := r.db.users[id]
	if !upd.Empty() {
		upd.Apply(u)
		u.UpdatedAt = r.db.now()
	}
	cp := cloneUser(u)
	return &cp, nil
}

func (r *UserRepository) Discover(_ context.Context, filter repositories.UserFilter) ([]models.User, int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	exclude := models.NormalizeEmail(filter.ExcludeEmail)
	matched := make([]*models.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if exclude != "" && u.Email == exclude {
			continue
		}
		matched = append(matched, u)
	}
	r.sortByCreated(matched)

	total := int64(len(matched))
	start := filter.Offset
	if start < 0 {
		start = 0
	}
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	page := make([]models.User, 0, end-start)
	for _, u := range matched[start:end] {
		page = append(page, cloneUser(u))
	}
	return page, total, nil
}

func (r *UserRepository) List(_ context.Context) ([]models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	all := make([]*models.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		all = append(all, u)
	}
	r.sortByCreated(all)

	users := make([]models.User, 0, len(all))
	for _, u := range all {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

func (r *UserRepository) Delete(_ context.Context, email string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	email = models.NormalizeEmail(email)
	id, ok := r.db.emailIndex[email]
	if !ok {
		return false, nil
	}
	delete(r.db.users, id)
	delete(r.db.emailIndex, email)
	delete(r.db.userSeq, id)
	return true, nil
}

func (r *UserRepository) DeleteWithoutLocation(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var n int64
	for id, u := range r.db.users {
		if strings.TrimSpace(u.Location) == "" {
			delete(r.db.users, id)
			delete(r.db.emailIndex, u.Email)
			delete(r.db.userSeq, id)
			n++
		}
	}
	return n, nil
}

func (r *UserRepository) DeleteAll(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	n := int64(len(r.db.users))
	r.db.users = make(map[string]*models.User)
	r.db.emailIndex = make(map[string]string)
	r.db.userSeq = make(map[string]int64)
	return n, nil
}

// sortByCreated - порядок регистрации, как created_at в postgres-репозитории
func (r *UserRepository) sortByCreated(users []*models.User) {
	sort.SliceStable(users, func(i, j int) bool {
		return r.db.userSeq[users[i].ID] < r.db.userSeq[users[j].ID]
	})
}
