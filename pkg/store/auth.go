package store

import (
	"context"
	"encoding/json"
	"sync"

	"burgerhouse/pkg/apiclient"
)

type AuthResource interface {
	Login(ctx context.Context, cred apiclient.Credentials) (*apiclient.AuthResult, error)
	Register(ctx context.Context, in apiclient.UserInput) (apiclient.User, error)
	Me(ctx context.Context) (apiclient.User, error)
}

type AuthState struct {
	Token   string
	User    *apiclient.User
	Loading Loading
	Err     error
}

// AuthSlice holds the signed-in session. It doubles as the client's TokenSource.
type AuthSlice struct {
	mu      sync.RWMutex
	api     AuthResource
	persist Persister
	token   string
	user    *apiclient.User
	loading Loading
	err     error
}

func NewAuthSlice(api AuthResource, p Persister) *AuthSlice {
	return &AuthSlice{api: api, persist: p}
}

func (a *AuthSlice) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *AuthSlice) State() AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	st := AuthState{Token: a.token, Loading: a.loading, Err: a.err}
	if a.user != nil {
		u := *a.user
		st.User = &u
	}
	return st
}

func (a *AuthSlice) IsAuthenticated() bool { return a.Token() != "" }

func (a *AuthSlice) IsAdmin() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user != nil && a.user.Role == "admin"
}

// Restore loads a previously persisted session. A corrupt user record drops
// the whole session.
func (a *AuthSlice) Restore() {
	tok, ok := a.persist.Get("token")
	if !ok || tok == "" {
		return
	}
	raw, ok := a.persist.Get("user")
	if !ok {
		return
	}
	var u apiclient.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		_ = a.Logout()
		return
	}
	a.mu.Lock()
	a.token, a.user = tok, &u
	a.mu.Unlock()
}

func (a *AuthSlice) Login(ctx context.Context, cred apiclient.Credentials) error {
	a.pending()
	res, err := a.api.Login(ctx, cred)
	if err == nil {
		err = a.save(res)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading.Fetch = false
	if err != nil {
		a.err = err
		return err
	}
	a.token, a.user = res.Token, &res.User
	return nil
}

// Register creates the account and signs straight in with the same credentials.
func (a *AuthSlice) Register(ctx context.Context, in apiclient.UserInput) error {
	if err := in.Validate(true); err != nil {
		a.mu.Lock()
		a.err = err
		a.mu.Unlock()
		return err
	}

	a.mu.Lock()
	a.loading.Create, a.err = true, nil
	a.mu.Unlock()
	_, err := a.api.Register(ctx, in)
	a.mu.Lock()
	a.loading.Create = false
	if err != nil {
		a.err = err
	}
	a.mu.Unlock()
	if err != nil {
		return err
	}
	return a.Login(ctx, apiclient.Credentials{Email: in.Email, Password: in.Password})
}

// Refresh re-reads the profile of the signed-in user.
func (a *AuthSlice) Refresh(ctx context.Context) error {
	a.pending()
	u, err := a.api.Me(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading.Fetch = false
	if err != nil {
		a.err = err
		return err
	}
	a.user = &u
	if b, err := json.Marshal(u); err == nil {
		_ = a.persist.Set("user", string(b))
	}
	return nil
}

func (a *AuthSlice) Logout() error {
	a.mu.Lock()
	a.token, a.user, a.err = "", nil, nil
	a.mu.Unlock()
	if err := a.persist.Remove("token"); err != nil {
		return err
	}
	return a.persist.Remove("user")
}

func (a *AuthSlice) save(res *apiclient.AuthResult) error {
	b, err := json.Marshal(res.User)
	if err != nil {
		return err
	}
	if err := a.persist.Set("token", res.Token); err != nil {
		return err
	}
	return a.persist.Set("user", string(b))
}

func (a *AuthSlice) pending() {
	a.mu.Lock()
	a.loading.Fetch, a.err = true, nil
	a.mu.Unlock()
}
