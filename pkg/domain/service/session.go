package service

import (
	"fmt"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

// Login replaces the current identity with one synthesized from username and role.
// Credentials are checked by the caller.
func (s *store) Login(username string, role model.Role) model.Identity {
	identity := &model.Identity{
		ID:       s.opts.UserIDs(),
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Role:     role,
	}
	s.identity = identity
	s.dispatch(model.UserLoggedIn{UserID: identity.ID, Username: username, Role: role})

	if role == model.RoleAdmin {
		s.SetView(model.ViewAdmin)
	} else {
		s.SetView(model.ViewStore)
	}
	return *identity
}

func (s *store) Logout() {
	if s.identity != nil {
		s.dispatch(model.UserLoggedOut{UserID: s.identity.ID})
	}
	s.identity = nil
	s.SetView(model.ViewStore)
}

// Identity returns a copy of the current identity, or nil when nobody is logged in.
func (s *store) Identity() *model.Identity {
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

func (s *store) View() model.View {
	return s.view
}

func (s *store) SetView(view model.View) {
	if s.view == view {
		return
	}
	old := s.view
	s.view = view
	s.dispatch(model.ViewChanged{OldView: old, NewView: view})
}
